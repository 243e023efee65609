package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/services"
)

// GetLeaderboard GET /leaderboard?type=&category=&limit=&offset=
func GetLeaderboard(c *gin.Context) {
	lbType, err := services.ParseLeaderboardType(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	category, err := services.ParseLeaderboardCategory(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := services.Leaderboard(lbType, category, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":     lbType,
		"category": category,
		"entries":  entries,
	})
}

// GetMyPosition GET /leaderboard/me?type=&category=
func GetMyPosition(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	lbType, err := services.ParseLeaderboardType(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	category, err := services.ParseLeaderboardCategory(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := services.MyPosition(userID, lbType, category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
