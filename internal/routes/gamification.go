package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterGamificationRoutes(r gin.IRouter) {
	badges := r.Group("/badges")
	badges.Use(middleware.AuthMiddleware())
	{
		badges.GET("", handlers.GetBadges)
		badges.GET("/:slug/progress", handlers.GetBadgeProgress)
	}

	missions := r.Group("/missions")
	missions.Use(middleware.AuthMiddleware())
	{
		missions.GET("", handlers.GetMissions)
	}

	r.GET("/leaderboard", middleware.OptionalAuthMiddleware(), handlers.GetLeaderboard)
	r.GET("/leaderboard/me", middleware.AuthMiddleware(), handlers.GetMyPosition)
}
