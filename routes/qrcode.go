package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/qrforge/qrforge-backend/auth/middleware"
	"github.com/qrforge/qrforge-backend/handlers"
)

func RegisterQRCodeRoutes(r *gin.Engine) {
	r.GET("/s/:slug", handlers.ScanRedirect) // public scan tracking

	qrGroup := r.Group("/api/qrcodes")
	qrGroup.POST("/preview", handlers.PreviewQRCode)
	qrGroup.POST("/download", handlers.DownloadQRCode)
	qrGroup.POST("/logo", handlers.UploadLogo)
	qrGroup.Use(middleware.AuthRequired()) // protect the saved-code endpoints

	qrGroup.POST("", handlers.SaveQRCode)
	qrGroup.GET("", handlers.ListQRCodes)
	qrGroup.GET("/:id", handlers.GetQRCode)
	qrGroup.DELETE("/:id", handlers.DeleteQRCode)
}
