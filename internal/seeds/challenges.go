package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

// SeedDailyChallenges schedules card prompts for the next two weeks.
func SeedDailyChallenges() {
	log.Println("🃏 Seeding Daily Challenges...")

	prompts := []struct {
		card   string
		prompt string
	}{
		{"El Sol", "Where did you feel most alive today?"},
		{"La Luna", "What is something you are avoiding looking at?"},
		{"La Estrella", "Write about a hope you are nurturing."},
		{"El Ermitaño", "When did you last enjoy being alone?"},
		{"La Rueda", "What cycle is repeating in your life right now?"},
		{"La Fuerza", "Describe a moment you chose patience over force."},
		{"El Carro", "What goal is pulling you forward this week?"},
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	for i := 0; i < 14; i++ {
		date := today.AddDate(0, 0, i)

		var existing models.DailyChallenge
		if err := database.DB.Where("date = ?", date).First(&existing).Error; err == nil {
			continue
		}

		p := prompts[i%len(prompts)]
		challenge := models.DailyChallenge{
			ID:       uuid.New().String(),
			Date:     date,
			CardName: p.card,
			Prompt:   p.prompt,
		}
		if err := database.DB.Create(&challenge).Error; err != nil {
			log.Printf("   ❌ Failed to create challenge for %s: %v", date.Format("2006-01-02"), err)
		}
	}

	log.Println("   🃏 Daily challenges scheduled")
}
