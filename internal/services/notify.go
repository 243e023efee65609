package services

import (
	"time"

	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/pkg/logger"
	"github.com/portal-cosmico/backend/pkg/utils"
)

// Notify persists a notification row and fans it out to the push-gateway
// worker over redis. Fire-and-forget: delivery is best-effort and failures
// never affect the caller.
func Notify(userID string, trigger models.NotificationType, message string) {
	notification := models.Notification{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Type:      trigger,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("Failed to persist notification")
		return
	}

	if database.Redis == nil {
		return
	}
	if err := database.Publish("push:"+userID, notification); err != nil {
		logger.Debug().Err(err).Str("user", userID).Msg("Push fan-out skipped")
	}
}
