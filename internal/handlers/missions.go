package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/services"
)

// GetMissions GET /missions
// Active missions with live progress, bucketed daily/weekly/achievement.
func GetMissions(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	board, err := services.MissionBoard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute mission progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily":       board[models.MissionDaily],
		"weekly":      board[models.MissionWeekly],
		"achievement": board[models.MissionAchievement],
	})
}
