package services

import (
	"time"

	"github.com/portal-cosmico/backend/internal/models"
	"gorm.io/gorm"
)

// TouchStreak advances the consecutive-day counter after a qualifying
// activity (reading or daily challenge). Same-day repeats are no-ops; a
// missed day resets the streak to 1.
func TouchStreak(tx *gorm.DB, userID string) error {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	streak := 1
	if user.LastActiveAt != nil {
		last := user.LastActiveAt.UTC().Truncate(24 * time.Hour)
		switch {
		case last.Equal(today):
			return nil
		case today.Sub(last) == 24*time.Hour:
			streak = user.Streak + 1
		}
	}

	return tx.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"streak": streak, "last_active_at": now}).Error
}
