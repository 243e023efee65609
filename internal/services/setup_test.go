package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB gives each test a private in-memory SQLite DB.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Init("development")

	// A unique named in-memory DB per test: shared across the pool's
	// connections, invisible to other tests.
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
