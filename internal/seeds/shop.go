package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

func SeedShopItems() {
	log.Println("💎 Seeding Shop Items...")

	items := []models.ShopItem{
		{Slug: "card-back-celestial", Name: "Dorso Celestial", Description: "Star-field card back.", Type: models.ItemCardBack, Price: 50},
		{Slug: "card-back-botanical", Name: "Dorso Botánico", Description: "Pressed-flower card back.", Type: models.ItemCardBack, Price: 80},
		{Slug: "frame-gold", Name: "Marco Dorado", Description: "Gold avatar frame.", Type: models.ItemFrame, Price: 100},
		{Slug: "frame-lunar", Name: "Marco Lunar", Description: "Moon-phase avatar frame.", Type: models.ItemFrame, Price: 150},
		{Slug: "theme-midnight", Name: "Tema Medianoche", Description: "Deep indigo app theme.", Type: models.ItemTheme, Price: 120},
		{Slug: "theme-dawn", Name: "Tema Amanecer", Description: "Rose-gold app theme.", Type: models.ItemTheme, Price: 120},
	}

	for _, item := range items {
		var existing models.ShopItem
		if err := database.DB.Where("slug = ?", item.Slug).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Item already exists: %s", item.Slug)
			continue
		}

		item.ID = uuid.New().String()
		item.Available = true
		if err := database.DB.Create(&item).Error; err != nil {
			log.Printf("   ❌ Failed to create item %s: %v", item.Slug, err)
		} else {
			log.Printf("   💎 Item Defined: %s", item.Slug)
		}
	}
}
