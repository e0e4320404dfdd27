package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qrforge/qrforge-backend/auth/middleware"
	"github.com/qrforge/qrforge-backend/initializers"
	"github.com/qrforge/qrforge-backend/routes"
)

const defaultPort = "8080"

func main() {
	initializers.ConnectToDatabase()
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	router := gin.Default()
	// Add CORS middleware before other middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// Global middleware
	router.Use(
		middleware.RateLimitMiddleware(),
	)

	routes.RegisterAuthRoutes(router)
	routes.RegisterQRCodeRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "qrforge", "status": "ok"})
	})

	log.Printf("listening on http://localhost:%s/", port)
	log.Fatal(router.Run(":" + port))
}
