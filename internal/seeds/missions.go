package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

func SeedMissions() {
	log.Println("🌙 Seeding Missions...")

	missions := []models.Mission{
		{
			Title:         "Tirada del día",
			Description:   "Complete a tarot reading today.",
			Type:          models.MissionDaily,
			Requirement:   models.Requirement{Type: models.ReqCreateReading},
			XPReward:      10,
			CrystalReward: 5,
		},
		{
			Title:         "Reto diario",
			Description:   "Answer today's card challenge.",
			Type:          models.MissionDaily,
			Requirement:   models.Requirement{Type: models.ReqDailyChallenge},
			XPReward:      10,
			CrystalReward: 5,
		},
		{
			Title:         "Semana de estudio",
			Description:   "Complete 5 lessons.",
			Type:          models.MissionWeekly,
			Requirement:   models.Requirement{Type: models.ReqLessonsCompleted, Target: 5},
			XPReward:      50,
			CrystalReward: 20,
		},
		{
			Title:         "Semana de práctica",
			Description:   "Complete 7 readings.",
			Type:          models.MissionWeekly,
			Requirement:   models.Requirement{Type: models.ReqReadingsCount, Target: 7},
			XPReward:      50,
			CrystalReward: 20,
		},
		{
			Title:         "Maestría de tiradas",
			Description:   "Use every spread type at least once.",
			Type:          models.MissionAchievement,
			Requirement:   models.Requirement{Type: models.ReqUseSpreadTypes, Target: 5},
			XPReward:      200,
			CrystalReward: 75,
		},
		{
			Title:         "Racha encendida",
			Description:   "Reach a 14-day streak.",
			Type:          models.MissionAchievement,
			Requirement:   models.Requirement{Type: models.ReqStreakDays, Target: 14},
			XPReward:      150,
			CrystalReward: 60,
		},
	}

	for _, m := range missions {
		var existing models.Mission
		if err := database.DB.Where("title = ?", m.Title).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Mission already exists: %s", m.Title)
			continue
		}

		m.ID = uuid.New().String()
		m.Active = true
		if err := database.DB.Create(&m).Error; err != nil {
			log.Printf("   ❌ Failed to create mission %s: %v", m.Title, err)
		} else {
			log.Printf("   🌙 Mission Defined: %s", m.Title)
		}
	}
}
