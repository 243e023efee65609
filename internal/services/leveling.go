package services

import (
	"math"
	"time"

	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/pkg/utils"
	"gorm.io/gorm"
)

const (
	baseLevelCost = 100
	levelGrowth   = 1.5
)

// XPCostForLevel returns the XP needed to advance from level to level+1.
// Level 1 -> 2 costs 100, then each step grows geometrically, rounded down.
func XPCostForLevel(level int) int {
	return int(float64(baseLevelCost) * math.Pow(levelGrowth, float64(level-1)))
}

// LevelForXP converts cumulative XP into a level. Deterministic and
// monotonic: more XP never yields a lower level.
func LevelForXP(xp int) int {
	level := 1
	remaining := xp
	for remaining >= XPCostForLevel(level) {
		remaining -= XPCostForLevel(level)
		level++
	}
	return level
}

// LevelProgress breaks cumulative XP into the derived level, the XP earned
// inside that level, and the cost of the next one (for progress bars).
func LevelProgress(xp int) (level, intoLevel, nextCost int) {
	level = 1
	remaining := xp
	for remaining >= XPCostForLevel(level) {
		remaining -= XPCostForLevel(level)
		level++
	}
	return level, remaining, XPCostForLevel(level)
}

// XPGrant reports the outcome of crediting XP to a user.
type XPGrant struct {
	XPEarned  int  `json:"xpEarned"`
	NewXP     int  `json:"newXp"`
	NewLevel  int  `json:"newLevel"`
	LeveledUp bool `json:"leveledUp"`
}

// AwardXP credits XP inside the caller's transaction, recomputes the level
// and appends a ledger entry. The user's XP column only ever grows.
func AwardXP(tx *gorm.DB, userID string, amount int, source, reference string) (XPGrant, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return XPGrant{}, err
	}

	newXP := user.XP + amount
	newLevel := LevelForXP(newXP)

	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"xp": newXP, "level": newLevel}).Error; err != nil {
		return XPGrant{}, err
	}

	event := models.XPEvent{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Amount:    amount,
		Source:    source,
		Reference: reference,
		CreatedAt: time.Now(),
	}
	if err := tx.Create(&event).Error; err != nil {
		return XPGrant{}, err
	}

	return XPGrant{
		XPEarned:  amount,
		NewXP:     newXP,
		NewLevel:  newLevel,
		LeveledUp: newLevel > user.Level,
	}, nil
}

// GrantReward credits XP and crystals in one go (badge and mission payouts).
func GrantReward(tx *gorm.DB, userID string, xpReward, crystalReward int, source, reference string) (XPGrant, error) {
	grant, err := AwardXP(tx, userID, xpReward, source, reference)
	if err != nil {
		return XPGrant{}, err
	}

	if crystalReward > 0 {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("crystals", gorm.Expr("crystals + ?", crystalReward)).Error; err != nil {
			return XPGrant{}, err
		}
	}
	return grant, nil
}
