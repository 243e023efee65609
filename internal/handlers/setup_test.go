package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/config"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB gives each test a private in-memory SQLite DB shared across
// the pool's connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("development")
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.XPEvent{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Mission{},
		&models.UserMission{},
		&models.Course{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.LessonProgress{},
		&models.Reading{},
		&models.DailyChallenge{},
		&models.UserDailyChallenge{},
		&models.ShopItem{},
		&models.UserItem{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	database.DB = db
	database.Redis = nil
	return db
}

// authedContext builds a gin test context carrying the authenticated user,
// mirroring what the auth middleware sets.
func authedContext(t *testing.T, userID string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userId", userID)
	c.Params = params
	c.Request = httptest.NewRequest("POST", "/", nil)
	return c, w
}

func withJSONBody(t *testing.T, c *gin.Context, body interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
}

func newGetRequest(target string) *http.Request {
	return httptest.NewRequest("GET", target, nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createTestUser(t *testing.T, db *gorm.DB, crystals int) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New().String(),
		Name:     "Luna",
		Email:    uuid.New().String() + "@example.com",
		Username: "luna_" + uuid.New().String()[:8],
		Level:    1,
		Crystals: crystals,
	}
	assert.NoError(t, db.Create(&user).Error)
	return user
}
