package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/models"
	apperrors "github.com/portal-cosmico/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestBadge(t *testing.T, db *gorm.DB, slug string, req models.Requirement, xp, crystals int) models.Badge {
	t.Helper()
	badge := models.Badge{
		ID:            uuid.New().String(),
		Slug:          slug,
		Name:          slug,
		Category:      models.BadgeCategoryReadings,
		Rarity:        models.RarityCommon,
		Requirement:   req,
		XPReward:      xp,
		CrystalReward: crystals,
	}
	assert.NoError(t, db.Create(&badge).Error)
	return badge
}

func TestCheckAndUnlockBadges_UnlocksAndRewards(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	createTestBadge(t, db, "first-reading", models.Requirement{Type: models.ReqReadingsCount, Target: 1}, 25, 10)

	createTestReading(t, db, user.ID, models.SpreadSingleCard)

	unlocked, err := CheckAndUnlockBadges(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"first-reading"}, unlocked)

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 25, fresh.XP)
	assert.Equal(t, 10, fresh.Crystals)

	var events int64
	assert.NoError(t, db.Model(&models.XPEvent{}).Where("user_id = ? AND source = ?", user.ID, "badge").Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

func TestCheckAndUnlockBadges_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	createTestBadge(t, db, "first-reading", models.Requirement{Type: models.ReqReadingsCount, Target: 1}, 25, 10)
	createTestReading(t, db, user.ID, models.SpreadSingleCard)

	first, err := CheckAndUnlockBadges(user.ID)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// A second scan finds nothing new and credits nothing.
	second, err := CheckAndUnlockBadges(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, second)

	var rows int64
	assert.NoError(t, db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 25, fresh.XP)
	assert.Equal(t, 10, fresh.Crystals)
}

func TestCheckAndUnlockBadges_UnmetStaysLocked(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	createTestBadge(t, db, "ten-readings", models.Requirement{Type: models.ReqReadingsCount, Target: 10}, 100, 50)
	createTestReading(t, db, user.ID, models.SpreadSingleCard)

	unlocked, err := CheckAndUnlockBadges(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestGetBadgeProgress_ClampsPastTarget(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	createTestBadge(t, db, "ten-readings", models.Requirement{Type: models.ReqReadingsCount, Target: 10}, 100, 50)

	for i := 0; i < 12; i++ {
		createTestReading(t, db, user.ID, models.SpreadSingleCard)
	}

	progress, err := GetBadgeProgress(user.ID, "ten-readings")
	assert.NoError(t, err)
	assert.Equal(t, int64(12), progress.Current)
	assert.Equal(t, 10, progress.Target)
	assert.Equal(t, 100, progress.Percentage)
}

func TestGetBadgeProgress_UnknownSlug(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	_, err := GetBadgeProgress(user.ID, "no-such-badge")
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestGetBadgeProgress_UntrackedKind(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	createTestBadge(t, db, "moon-watcher", models.Requirement{Type: models.ReqMoonPhasesReadings, Target: 3}, 50, 0)

	_, err := GetBadgeProgress(user.ID, "moon-watcher")
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}
