package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/services"
	"github.com/portal-cosmico/backend/pkg/utils"
)

// GetStats GET /users/profile/stats
// Progression snapshot for the profile screen.
func GetStats(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var readings int64
	database.DB.Model(&models.Reading{}).Where("user_id = ?", userID).Count(&readings)

	var lessons int64
	database.DB.Model(&models.LessonProgress{}).Where("user_id = ? AND completed = ?", userID, true).Count(&lessons)

	var badges int64
	database.DB.Model(&models.UserBadge{}).Where("user_id = ?", userID).Count(&badges)

	var challenges int64
	database.DB.Model(&models.UserDailyChallenge{}).Where("user_id = ? AND completed = ?", userID, true).Count(&challenges)

	level, intoLevel, nextCost := services.LevelProgress(user.XP)

	c.JSON(http.StatusOK, gin.H{
		"xp":       user.XP,
		"level":    level,
		"crystals": user.Crystals,
		"streak":   user.Streak,
		"levelProgress": gin.H{
			"current": intoLevel,
			"needed":  nextCost,
		},
		"counts": gin.H{
			"readings":         readings,
			"lessonsCompleted": lessons,
			"badges":           badges,
			"dailyChallenges":  challenges,
		},
	})
}

type UpdateProfileInput struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateProfile PUT /users/profile
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Name != "" {
		user.Name = utils.SanitizeHTML(utils.TruncateString(input.Name, 60))
	}
	if input.Bio != "" {
		user.Bio = utils.SanitizeHTML(utils.TruncateString(input.Bio, 300))
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetPublicProfile GET /users/:username
func GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := database.DB.First(&user, "username = ?", username).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var userBadges []models.UserBadge
	database.DB.Preload("Badge").Where("user_id = ?", user.ID).Order("earned_at desc").Find(&userBadges)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"username":  user.Username,
			"name":      user.Name,
			"bio":       user.Bio,
			"avatarUrl": user.AvatarURL,
			"level":     user.Level,
			"xp":        user.XP,
			"streak":    user.Streak,
		},
		"badges": userBadges,
	})
}
