package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/services"
	"github.com/portal-cosmico/backend/pkg/logger"
	"github.com/portal-cosmico/backend/pkg/utils"
	"gorm.io/gorm"
)

const dailyChallengeXP = 20

// GetTodayChallenge GET /challenges/today
func GetTodayChallenge(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var challenge models.DailyChallenge
	if err := database.DB.First(&challenge, "date = ?", today).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No challenge scheduled for today"})
		return
	}

	var completion models.UserDailyChallenge
	completed := database.DB.
		First(&completion, "user_id = ? AND challenge_id = ? AND completed = ?", userID, challenge.ID, true).
		Error == nil

	c.JSON(http.StatusOK, gin.H{"challenge": challenge, "completed": completed})
}

type CompleteChallengeInput struct {
	Answer string `json:"answer" binding:"required"`
}

// CompleteChallenge POST /challenges/:id/complete
// Records the free-text answer, advances the streak and credits XP. Answers
// long enough also count toward reflection requirements.
func CompleteChallenge(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	challengeID := c.Param("id")

	var input CompleteChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var challenge models.DailyChallenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}

	var existing models.UserDailyChallenge
	if err := database.DB.First(&existing, "user_id = ? AND challenge_id = ?", userID, challengeID).Error; err == nil && existing.Completed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Challenge already completed"})
		return
	}

	var grant services.XPGrant
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		row := models.UserDailyChallenge{
			UserID:      userID,
			ChallengeID: challengeID,
			Answer:      utils.SanitizeHTML(input.Answer),
			Completed:   true,
			CompletedAt: &now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := services.TouchStreak(tx, userID); err != nil {
			return err
		}
		var err error
		grant, err = services.AwardXP(tx, userID, dailyChallengeXP, "daily_challenge", challengeID)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	newBadges, err := services.CheckAndUnlockBadges(userID)
	if err != nil {
		logger.Warn().Err(err).Str("user", userID).Msg("Post-challenge badge scan failed")
		newBadges = []string{}
	}

	if grant.LeveledUp {
		services.Notify(userID, models.NotificationLevelUp, "You reached a new level!")
	}

	c.JSON(http.StatusOK, gin.H{
		"xpEarned":      grant.XPEarned,
		"newXp":         grant.NewXP,
		"newLevel":      grant.NewLevel,
		"leveledUp":     grant.LeveledUp,
		"newlyUnlocked": newBadges,
	})
}
