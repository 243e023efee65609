package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterShopRoutes(r gin.IRouter) {
	shop := r.Group("/shop")
	{
		shop.GET("/items", handlers.ListShopItems)

		authed := shop.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/inventory", handlers.GetInventory)
			authed.POST("/items/:slug/purchase", handlers.PurchaseItem)
			authed.POST("/items/:slug/equip", handlers.EquipItem)
		}
	}
}
