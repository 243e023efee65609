package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterUploadRoutes(r gin.IRouter) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/avatar", handlers.UploadAvatar)
		uploads.POST("/journal", handlers.UploadJournalImage)
	}
}
