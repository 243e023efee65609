package services

import (
	"time"

	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/pkg/logger"
	"gorm.io/gorm/clause"
)

// MissionProgress is the live progress triple for one mission. Current is
// the raw counter (it can run past the target); Percentage is clamped.
type MissionProgress struct {
	Current    int64 `json:"current"`
	Target     int   `json:"target"`
	Percentage int   `json:"percentage"`
	Completed  bool  `json:"completed"`
}

type MissionWithProgress struct {
	models.Mission
	Progress MissionProgress `json:"progress"`
}

// MissionBucket groups missions of one type for presentation.
type MissionBucket struct {
	Missions  []MissionWithProgress `json:"missions"`
	Total     int                   `json:"total"`
	Completed int                   `json:"completed"`
}

// MissionBoard recomputes progress for every active mission from live
// activity counters, grouped daily/weekly/achievement. The stored
// UserMission.progress is refreshed as a cache on the way out; reads never
// trust it.
func MissionBoard(userID string) (map[models.MissionType]*MissionBucket, error) {
	var missions []models.Mission
	if err := database.DB.Where("active = ?", true).Find(&missions).Error; err != nil {
		return nil, err
	}

	board := map[models.MissionType]*MissionBucket{
		models.MissionDaily:       {Missions: []MissionWithProgress{}},
		models.MissionWeekly:      {Missions: []MissionWithProgress{}},
		models.MissionAchievement: {Missions: []MissionWithProgress{}},
	}

	for _, mission := range missions {
		current, supported, err := RequirementProgress(database.DB, userID, mission.Requirement)
		if err != nil {
			logger.Error().Err(err).Str("mission", mission.ID).Msg("Mission progress computation failed")
			continue
		}
		if !supported {
			current = 0
		}

		target := mission.Requirement.TargetOrDefault()
		progress := MissionProgress{
			Current:    current,
			Target:     target,
			Percentage: ClampPercentage(current, target),
			Completed:  current >= int64(target),
		}

		bucket, ok := board[mission.Type]
		if !ok {
			bucket = &MissionBucket{Missions: []MissionWithProgress{}}
			board[mission.Type] = bucket
		}
		bucket.Missions = append(bucket.Missions, MissionWithProgress{Mission: mission, Progress: progress})
		bucket.Total++
		if progress.Completed {
			bucket.Completed++
		}

		cacheMissionProgress(userID, mission.ID, int(current))
	}

	return board, nil
}

func cacheMissionProgress(userID, missionID string, progress int) {
	row := models.UserMission{
		UserID:    userID,
		MissionID: missionID,
		Progress:  progress,
		UpdatedAt: time.Now(),
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "mission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		logger.Debug().Err(err).Str("mission", missionID).Msg("Mission progress cache write failed")
	}
}
