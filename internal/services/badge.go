package services

import (
	"time"

	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	apperrors "github.com/portal-cosmico/backend/pkg/errors"
	"github.com/portal-cosmico/backend/pkg/logger"
	"gorm.io/gorm"
)

// CheckAndUnlockBadges scans every badge the user doesn't hold yet and
// unlocks the ones whose requirement is now satisfied. Safe to call on every
// badge-list fetch: held badges are skipped up front, and the composite key
// on user_badges keeps a concurrent scan from double-unlocking.
//
// Returns the slugs unlocked by this invocation. A failing badge is logged
// and skipped without aborting the rest of the scan; its unlock row and
// rewards roll back together.
func CheckAndUnlockBadges(userID string) ([]string, error) {
	var held []string
	if err := database.DB.Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &held).Error; err != nil {
		return nil, err
	}

	heldSet := make(map[string]bool, len(held))
	for _, id := range held {
		heldSet[id] = true
	}

	var badges []models.Badge
	if err := database.DB.Find(&badges).Error; err != nil {
		return nil, err
	}

	unlocked := []string{}
	for _, badge := range badges {
		if heldSet[badge.ID] {
			continue
		}

		ok, err := EvaluateRequirement(database.DB, userID, badge.Requirement)
		if err != nil {
			logger.Error().Err(err).Str("badge", badge.Slug).Str("user", userID).
				Msg("Badge evaluation failed, skipping")
			continue
		}
		if !ok {
			continue
		}

		badge := badge
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.UserBadge{
				UserID:   userID,
				BadgeID:  badge.ID,
				EarnedAt: time.Now(),
			}).Error; err != nil {
				return err
			}
			_, err := GrantReward(tx, userID, badge.XPReward, badge.CrystalReward, "badge", badge.Slug)
			return err
		})
		if err != nil {
			// Lost a race or storage failed; nothing was applied.
			logger.Warn().Err(err).Str("badge", badge.Slug).Str("user", userID).
				Msg("Badge unlock not applied")
			continue
		}

		unlocked = append(unlocked, badge.Slug)
		Notify(userID, models.NotificationBadgeUnlocked, "Unlocked badge: "+badge.Name)
	}

	return unlocked, nil
}

// BadgeProgress holds the current/target pair for a single badge.
type BadgeProgress struct {
	Current    int64 `json:"current"`
	Target     int   `json:"target"`
	Percentage int   `json:"percentage"`
}

// GetBadgeProgress reports progress toward one badge by slug. Unknown slugs
// and requirement kinds without a numeric counter both read as not found.
func GetBadgeProgress(userID, slug string) (*BadgeProgress, error) {
	var badge models.Badge
	if err := database.DB.First(&badge, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Badge not found")
		}
		return nil, err
	}

	current, supported, err := RequirementProgress(database.DB, userID, badge.Requirement)
	if err != nil {
		return nil, err
	}
	if !supported {
		return nil, apperrors.NotFound("Progress not tracked for this badge")
	}

	target := badge.Requirement.TargetOrDefault()
	return &BadgeProgress{
		Current:    current,
		Target:     target,
		Percentage: ClampPercentage(current, target),
	}, nil
}

// ClampPercentage converts current/target into a 0-100 display percentage.
// Progress past the target still reads 100.
func ClampPercentage(current int64, target int) int {
	if target <= 0 {
		return 0
	}
	pct := int(current * 100 / int64(target))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
