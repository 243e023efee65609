package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterReadingRoutes(r gin.IRouter) {
	readings := r.Group("/readings")
	readings.Use(middleware.AuthMiddleware())
	{
		readings.POST("", middleware.ReadingRateLimit(), handlers.CreateReading)
		readings.GET("", handlers.ListReadings)
	}

	challenges := r.Group("/challenges")
	challenges.Use(middleware.AuthMiddleware())
	{
		challenges.GET("/today", handlers.GetTodayChallenge)
		challenges.POST("/:id/complete", handlers.CompleteChallenge)
	}
}
