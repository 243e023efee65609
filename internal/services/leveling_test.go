package services

import (
	"testing"

	"github.com/portal-cosmico/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestXPCostForLevel(t *testing.T) {
	assert.Equal(t, 100, XPCostForLevel(1))
	assert.Equal(t, 150, XPCostForLevel(2))
	assert.Equal(t, 225, XPCostForLevel(3))
	assert.Equal(t, 337, XPCostForLevel(4)) // floor(100 * 1.5^3)
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},  // cost to reach level 2 is exactly 100
		{249, 2},
		{250, 3},  // 100 + 150
		{474, 3},
		{475, 4},  // 100 + 150 + 225
	}

	for _, c := range cases {
		assert.Equal(t, c.level, LevelForXP(c.xp), "xp=%d", c.xp)
	}
}

func TestLevelForXP_Monotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 0; xp <= 10000; xp += 17 {
		level := LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prev, "level dropped at xp=%d", xp)
		prev = level
	}
}

func TestLevelProgress(t *testing.T) {
	level, intoLevel, nextCost := LevelProgress(120)
	assert.Equal(t, 2, level)
	assert.Equal(t, 20, intoLevel)
	assert.Equal(t, 150, nextCost)
}

func TestAwardXP_LevelUpAndLedger(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	grant, err := AwardXP(db, user.ID, 120, "lesson", "the-fool")
	assert.NoError(t, err)
	assert.Equal(t, 120, grant.XPEarned)
	assert.Equal(t, 120, grant.NewXP)
	assert.Equal(t, 2, grant.NewLevel)
	assert.True(t, grant.LeveledUp)

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 120, fresh.XP)
	assert.Equal(t, 2, fresh.Level)

	var event models.XPEvent
	assert.NoError(t, db.First(&event, "user_id = ?", user.ID).Error)
	assert.Equal(t, 120, event.Amount)
	assert.Equal(t, "lesson", event.Source)
	assert.Equal(t, "the-fool", event.Reference)

	// A small follow-up grant inside the same level does not level up.
	grant, err = AwardXP(db, user.ID, 10, "reading", "r1")
	assert.NoError(t, err)
	assert.Equal(t, 2, grant.NewLevel)
	assert.False(t, grant.LeveledUp)
}

func TestGrantReward_CreditsCrystals(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	_, err := GrantReward(db, user.ID, 25, 10, "badge", "first-reading")
	assert.NoError(t, err)

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 25, fresh.XP)
	assert.Equal(t, 10, fresh.Crystals)
}

func TestClampPercentage(t *testing.T) {
	assert.Equal(t, 100, ClampPercentage(12, 10)) // past target still reads 100
	assert.Equal(t, 50, ClampPercentage(5, 10))
	assert.Equal(t, 0, ClampPercentage(0, 10))
	assert.Equal(t, 0, ClampPercentage(5, 0))
}
