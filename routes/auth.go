package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/qrforge/qrforge-backend/auth/middleware"
	"github.com/qrforge/qrforge-backend/handlers"
)

func RegisterAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/auth")
	authGroup.POST("/signup", handlers.SignUp)
	authGroup.POST("/signin", handlers.SignIn)
	authGroup.POST("/signout", handlers.SignOut)
	authGroup.POST("/refresh", handlers.RefreshToken)
	authGroup.GET("/me", middleware.AuthRequired(), handlers.CurrentUser)
}
