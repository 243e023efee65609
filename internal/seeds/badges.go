package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

func SeedBadges() {
	log.Println("🎖️ Seeding Badges...")

	badges := []models.Badge{
		{
			Slug:          "first-reading",
			Name:          "Primera Tirada",
			Description:   "Completed your first tarot reading.",
			Icon:          "sparkles",
			Category:      models.BadgeCategoryReadings,
			Rarity:        models.RarityCommon,
			Requirement:   models.Requirement{Type: models.ReqReadingsCount},
			XPReward:      25,
			CrystalReward: 10,
		},
		{
			Slug:          "ten-readings",
			Name:          "Lectora Dedicada",
			Description:   "Completed 10 tarot readings.",
			Icon:          "moon",
			Category:      models.BadgeCategoryReadings,
			Rarity:        models.RarityRare,
			Requirement:   models.Requirement{Type: models.ReqReadingsCount, Target: 10},
			XPReward:      75,
			CrystalReward: 30,
		},
		{
			Slug:          "spread-explorer",
			Name:          "Exploradora de Tiradas",
			Description:   "Used 3 different spread types.",
			Icon:          "layout-grid",
			Category:      models.BadgeCategoryExplorer,
			Rarity:        models.RarityRare,
			Requirement:   models.Requirement{Type: models.ReqUseSpreadTypes, Target: 3},
			XPReward:      50,
			CrystalReward: 20,
		},
		{
			Slug:          "first-lesson",
			Name:          "Aprendiz",
			Description:   "Completed your first lesson.",
			Icon:          "book-open",
			Category:      models.BadgeCategoryLearning,
			Rarity:        models.RarityCommon,
			Requirement:   models.Requirement{Type: models.ReqLessonsCompleted},
			XPReward:      25,
			CrystalReward: 10,
		},
		{
			Slug:          "scholar",
			Name:          "Estudiosa del Arcano",
			Description:   "Completed 20 lessons.",
			Icon:          "graduation-cap",
			Category:      models.BadgeCategoryLearning,
			Rarity:        models.RarityEpic,
			Requirement:   models.Requirement{Type: models.ReqLessonsCompleted, Target: 20},
			XPReward:      150,
			CrystalReward: 50,
		},
		{
			Slug:          "week-streak",
			Name:          "Llama Constante",
			Description:   "Kept a 7-day activity streak.",
			Icon:          "flame",
			Category:      models.BadgeCategoryStreak,
			Rarity:        models.RarityRare,
			Requirement:   models.Requirement{Type: models.ReqStreakDays, Target: 7},
			XPReward:      100,
			CrystalReward: 40,
		},
		{
			Slug:          "month-streak",
			Name:          "Devoción Lunar",
			Description:   "Kept a 30-day activity streak.",
			Icon:          "crown",
			Category:      models.BadgeCategoryStreak,
			Rarity:        models.RarityLegendary,
			Requirement:   models.Requirement{Type: models.ReqStreakDays, Target: 30},
			XPReward:      500,
			CrystalReward: 200,
		},
		{
			Slug:          "first-reflection",
			Name:          "Voz Interior",
			Description:   "Wrote your first reflection.",
			Icon:          "feather",
			Category:      models.BadgeCategoryJournal,
			Rarity:        models.RarityCommon,
			Requirement:   models.Requirement{Type: models.ReqReflectionsCount},
			XPReward:      25,
			CrystalReward: 10,
		},
		{
			Slug:          "deep-journal",
			Name:          "Diario Profundo",
			Description:   "Wrote 10 reflections of at least 50 characters.",
			Icon:          "notebook-pen",
			Category:      models.BadgeCategoryJournal,
			Rarity:        models.RarityEpic,
			Requirement:   models.Requirement{Type: models.ReqReflectionsCount, Target: 10, MinWords: 50},
			XPReward:      150,
			CrystalReward: 60,
		},
		{
			Slug:          "challenge-devotee",
			Name:          "Ritual Diario",
			Description:   "Completed 15 daily challenges.",
			Icon:          "calendar-check",
			Category:      models.BadgeCategoryStreak,
			Rarity:        models.RarityRare,
			Requirement:   models.Requirement{Type: models.ReqDailyChallengeCount, Target: 15},
			XPReward:      100,
			CrystalReward: 40,
		},
	}

	for _, b := range badges {
		var existing models.Badge
		if err := database.DB.Where("slug = ?", b.Slug).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Badge already exists: %s", b.Slug)
			continue
		}

		b.ID = uuid.New().String()
		if err := database.DB.Create(&b).Error; err != nil {
			log.Printf("   ❌ Failed to create badge %s: %v", b.Slug, err)
		} else {
			log.Printf("   🎖️ Badge Defined: %s", b.Slug)
		}
	}
}
