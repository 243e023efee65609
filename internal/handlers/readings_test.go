package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateReading(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	c, w := authedContext(t, user.ID)
	withJSONBody(t, c, gin.H{
		"spreadType": "three_card",
		"question":   "What does the week hold?",
		"cards":      []string{"The Fool", "The Tower", "The Star"},
	})
	CreateReading(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(15), body["xpEarned"])

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 15, fresh.XP)
	assert.Equal(t, 1, fresh.Streak)

	var count int64
	assert.NoError(t, db.Model(&models.Reading{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateReading_UnlocksBadge(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	assert.NoError(t, db.Create(&models.Badge{
		ID:            uuid.New().String(),
		Slug:          "first-reading",
		Name:          "First Reading",
		Category:      models.BadgeCategoryReadings,
		Requirement:   models.Requirement{Type: models.ReqReadingsCount, Target: 1},
		XPReward:      25,
		CrystalReward: 10,
	}).Error)

	c, w := authedContext(t, user.ID)
	withJSONBody(t, c, gin.H{
		"spreadType": "single_card",
		"cards":      []string{"The Sun"},
	})
	CreateReading(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	unlocked := body["newlyUnlocked"].([]interface{})
	assert.Len(t, unlocked, 1)
	assert.Equal(t, "first-reading", unlocked[0])

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 40, fresh.XP, "reading XP plus badge reward")
	assert.Equal(t, 10, fresh.Crystals)
}

func TestCreateReading_RequiresCards(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	c, w := authedContext(t, user.ID)
	withJSONBody(t, c, gin.H{"spreadType": "single_card", "cards": []string{}})
	CreateReading(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReadings_Paginated(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	for i := 0; i < 3; i++ {
		c, w := authedContext(t, user.ID)
		withJSONBody(t, c, gin.H{"spreadType": "single_card", "cards": []string{"The Moon"}})
		CreateReading(c)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	c, w := authedContext(t, user.ID)
	c.Request = newGetRequest("/readings?limit=2&offset=0")
	ListReadings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])
	assert.Len(t, body["readings"].([]interface{}), 2)
}
