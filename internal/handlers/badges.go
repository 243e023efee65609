package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/services"
	"github.com/portal-cosmico/backend/pkg/logger"
)

type BadgeWithStatus struct {
	models.Badge
	Unlocked bool       `json:"unlocked"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

// GetBadges GET /badges
// Runs the unlock scan first, then returns every badge definition annotated
// with the caller's unlock state, grouped by category.
func GetBadges(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	newlyUnlocked, err := services.CheckAndUnlockBadges(userID)
	if err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("Badge unlock scan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check badges"})
		return
	}

	var badges []models.Badge
	if err := database.DB.Order("category, slug").Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	var userBadges []models.UserBadge
	if err := database.DB.Where("user_id = ?", userID).Find(&userBadges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch unlocks"})
		return
	}

	earnedAt := make(map[string]time.Time, len(userBadges))
	for _, ub := range userBadges {
		earnedAt[ub.BadgeID] = ub.EarnedAt
	}

	categories := make(map[models.BadgeCategory][]BadgeWithStatus)
	unlockedCount := 0
	for _, badge := range badges {
		entry := BadgeWithStatus{Badge: badge}
		if at, ok := earnedAt[badge.ID]; ok {
			entry.Unlocked = true
			t := at
			entry.EarnedAt = &t
			unlockedCount++
		}
		categories[badge.Category] = append(categories[badge.Category], entry)
	}

	percentage := 0
	if len(badges) > 0 {
		percentage = unlockedCount * 100 / len(badges)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":    categories,
		"newlyUnlocked": newlyUnlocked,
		"stats": gin.H{
			"total":      len(badges),
			"unlocked":   unlockedCount,
			"percentage": percentage,
		},
	})
}

// GetBadgeProgress GET /badges/:slug/progress
func GetBadgeProgress(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	slug := c.Param("slug")

	progress, err := services.GetBadgeProgress(userID, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
