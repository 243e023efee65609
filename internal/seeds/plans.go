package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

func SeedPlans() {
	log.Println("✨ Seeding Subscription Plans...")

	plans := []models.Plan{
		{
			Slug:     "luna-monthly",
			Name:     "Luna",
			Price:    199,
			Interval: "monthly",
			Perks:    []string{"unlimited readings", "all spread types", "ad free"},
		},
		{
			Slug:     "sol-yearly",
			Name:     "Sol",
			Price:    1499,
			Interval: "yearly",
			Perks:    []string{"unlimited readings", "all spread types", "ad free", "exclusive card backs"},
		},
	}

	for _, p := range plans {
		var existing models.Plan
		if err := database.DB.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Plan already exists: %s", p.Slug)
			continue
		}

		p.ID = uuid.New().String()
		p.Active = true
		if err := database.DB.Create(&p).Error; err != nil {
			log.Printf("   ❌ Failed to create plan %s: %v", p.Slug, err)
		} else {
			log.Printf("   ✨ Plan Defined: %s", p.Slug)
		}
	}
}
