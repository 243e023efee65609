package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestMission(t *testing.T, db *gorm.DB, title string, mType models.MissionType, req models.Requirement) models.Mission {
	t.Helper()
	mission := models.Mission{
		ID:          uuid.New().String(),
		Title:       title,
		Type:        mType,
		Requirement: req,
		XPReward:    20,
		Active:      true,
	}
	assert.NoError(t, db.Create(&mission).Error)
	return mission
}

func TestMissionBoard_Buckets(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	createTestMission(t, db, "Draw a card", models.MissionDaily,
		models.Requirement{Type: models.ReqCreateReading, Target: 1})
	createTestMission(t, db, "Seven readings", models.MissionWeekly,
		models.Requirement{Type: models.ReqReadingsCount, Target: 7})
	createTestMission(t, db, "Arcana scholar", models.MissionAchievement,
		models.Requirement{Type: models.ReqLessonsCompleted, Target: 10})

	createTestReading(t, db, user.ID, models.SpreadSingleCard)

	board, err := MissionBoard(user.ID)
	assert.NoError(t, err)

	daily := board[models.MissionDaily]
	assert.Equal(t, 1, daily.Total)
	assert.Equal(t, 1, daily.Completed)
	assert.True(t, daily.Missions[0].Progress.Completed)
	assert.Equal(t, 100, daily.Missions[0].Progress.Percentage)

	weekly := board[models.MissionWeekly]
	assert.Equal(t, 1, weekly.Total)
	assert.Equal(t, 0, weekly.Completed)
	assert.Equal(t, int64(1), weekly.Missions[0].Progress.Current)
	assert.Equal(t, 14, weekly.Missions[0].Progress.Percentage)

	achievement := board[models.MissionAchievement]
	assert.Equal(t, 1, achievement.Total)
	assert.Equal(t, 0, achievement.Completed)
}

func TestMissionBoard_PercentageClamped(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	createTestMission(t, db, "Ten readings", models.MissionWeekly,
		models.Requirement{Type: models.ReqReadingsCount, Target: 10})

	for i := 0; i < 12; i++ {
		createTestReading(t, db, user.ID, models.SpreadThreeCard)
	}

	board, err := MissionBoard(user.ID)
	assert.NoError(t, err)

	progress := board[models.MissionWeekly].Missions[0].Progress
	assert.Equal(t, int64(12), progress.Current, "raw counter keeps running")
	assert.Equal(t, 100, progress.Percentage, "display percentage stops at 100")
	assert.True(t, progress.Completed)
}

func TestMissionBoard_RefreshesCache(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	mission := createTestMission(t, db, "Draw a card", models.MissionDaily,
		models.Requirement{Type: models.ReqCreateReading, Target: 3})
	createTestReading(t, db, user.ID, models.SpreadSingleCard)

	_, err := MissionBoard(user.ID)
	assert.NoError(t, err)

	var cached models.UserMission
	assert.NoError(t, db.First(&cached, "user_id = ? AND mission_id = ?", user.ID, mission.ID).Error)
	assert.Equal(t, 1, cached.Progress)

	createTestReading(t, db, user.ID, models.SpreadSingleCard)
	_, err = MissionBoard(user.ID)
	assert.NoError(t, err)

	assert.NoError(t, db.First(&cached, "user_id = ? AND mission_id = ?", user.ID, mission.ID).Error)
	assert.Equal(t, 2, cached.Progress)
}

func TestMissionBoard_InactiveHidden(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	mission := createTestMission(t, db, "Retired mission", models.MissionDaily,
		models.Requirement{Type: models.ReqCreateReading})
	assert.NoError(t, db.Model(&models.Mission{}).Where("id = ?", mission.ID).Update("active", false).Error)

	board, err := MissionBoard(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, board[models.MissionDaily].Total)
}
