package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/services"
	"github.com/portal-cosmico/backend/pkg/logger"
	"github.com/portal-cosmico/backend/pkg/utils"
	"gorm.io/gorm"
)

const readingXP = 15

type CreateReadingInput struct {
	SpreadType string   `json:"spreadType" binding:"required"`
	Question   string   `json:"question"`
	Cards      []string `json:"cards" binding:"required,min=1"`
	Notes      string   `json:"notes"`
}

// CreateReading POST /readings
// Saves the reading, advances the daily streak, credits XP and runs a badge
// scan so spread/reading badges land immediately.
func CreateReading(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var input CreateReadingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading := models.Reading{
		ID:         utils.GenerateID(),
		UserID:     userID,
		SpreadType: models.SpreadType(input.SpreadType),
		Question:   utils.SanitizeHTML(input.Question),
		Cards:      input.Cards,
		Notes:      utils.SanitizeHTML(input.Notes),
		CreatedAt:  time.Now(),
	}

	var grant services.XPGrant
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reading).Error; err != nil {
			return err
		}
		if err := services.TouchStreak(tx, userID); err != nil {
			return err
		}
		var err error
		grant, err = services.AwardXP(tx, userID, readingXP, "reading", reading.ID)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reading"})
		return
	}

	newBadges, err := services.CheckAndUnlockBadges(userID)
	if err != nil {
		logger.Warn().Err(err).Str("user", userID).Msg("Post-reading badge scan failed")
		newBadges = []string{}
	}

	if grant.LeveledUp {
		services.Notify(userID, models.NotificationLevelUp, "You reached a new level!")
	}

	c.JSON(http.StatusCreated, gin.H{
		"reading":       reading,
		"xpEarned":      grant.XPEarned,
		"newXp":         grant.NewXP,
		"newLevel":      grant.NewLevel,
		"leveledUp":     grant.LeveledUp,
		"newlyUnlocked": newBadges,
	})
}

// ListReadings GET /readings
func ListReadings(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var readings []models.Reading
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&readings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch readings"})
		return
	}

	var total int64
	database.DB.Model(&models.Reading{}).Where("user_id = ?", userID).Count(&total)

	c.JSON(http.StatusOK, gin.H{"readings": readings, "total": total})
}
