package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		// Protected (specific paths first)
		protected := users.Group("/profile")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/stats", handlers.GetStats)
			protected.PUT("", handlers.UpdateProfile)
		}

		// Public (wildcard last)
		users.GET("/:username", handlers.GetPublicProfile)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", handlers.GetNotifications)
		notifications.GET("/unread-count", handlers.GetUnreadCount)
		notifications.PUT("/read-all", handlers.MarkAllNotificationsRead)
		notifications.PUT("/:id/read", handlers.MarkNotificationRead)
		notifications.DELETE("/:id", handlers.DeleteNotification)
	}
}
