package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterBillingRoutes(r gin.IRouter) {
	billing := r.Group("/billing")
	{
		billing.GET("/plans", handlers.ListPlans)
		billing.POST("/webhook", handlers.HandleRazorpayWebhook)

		authed := billing.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/orders", handlers.CreateOrder)
			authed.POST("/verify", handlers.VerifyPayment)
			authed.GET("/subscription", handlers.GetMySubscription)
		}
	}
}
