package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTodayChallenge(t *testing.T, db *gorm.DB) models.DailyChallenge {
	t.Helper()
	challenge := models.DailyChallenge{
		ID:       uuid.New().String(),
		Date:     time.Now().UTC().Truncate(24 * time.Hour),
		CardName: "The Star",
		Prompt:   "What gives you hope today?",
	}
	assert.NoError(t, db.Create(&challenge).Error)
	return challenge
}

func TestGetTodayChallenge(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)
	createTodayChallenge(t, db)

	c, w := authedContext(t, user.ID)
	GetTodayChallenge(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["completed"])

	challenge := body["challenge"].(map[string]interface{})
	assert.Equal(t, "The Star", challenge["cardName"])
}

func TestGetTodayChallenge_NotSeeded(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	c, w := authedContext(t, user.ID)
	GetTodayChallenge(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompleteChallenge(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)
	challenge := createTodayChallenge(t, db)

	c, w := authedContext(t, user.ID, gin.Param{Key: "id", Value: challenge.ID})
	withJSONBody(t, c, gin.H{"answer": "The cards speak of patience."})
	CompleteChallenge(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(20), body["xpEarned"])

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 20, fresh.XP)
	assert.Equal(t, 1, fresh.Streak, "challenge completion advances the streak")
}

func TestCompleteChallenge_AlreadyDone(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)
	challenge := createTodayChallenge(t, db)

	c, w := authedContext(t, user.ID, gin.Param{Key: "id", Value: challenge.ID})
	withJSONBody(t, c, gin.H{"answer": "First answer."})
	CompleteChallenge(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = authedContext(t, user.ID, gin.Param{Key: "id", Value: challenge.ID})
	withJSONBody(t, c, gin.H{"answer": "Second answer."})
	CompleteChallenge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Challenge already completed", decodeBody(t, w)["error"])

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 20, fresh.XP, "no double credit")
}

func TestCompleteChallenge_MissingAnswer(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)
	challenge := createTodayChallenge(t, db)

	c, w := authedContext(t, user.ID, gin.Param{Key: "id", Value: challenge.ID})
	withJSONBody(t, c, gin.H{})
	CompleteChallenge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
