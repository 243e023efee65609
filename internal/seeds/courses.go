package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

func SeedCourses() {
	log.Println("📚 Seeding Starter Course...")

	var existing models.Course
	if err := database.DB.Where("slug = ?", "fundamentos-del-tarot").First(&existing).Error; err == nil {
		log.Println("   ℹ️ Starter course already exists")
		return
	}

	course := models.Course{
		ID:          uuid.New().String(),
		Slug:        "fundamentos-del-tarot",
		Title:       "Fundamentos del Tarot",
		Description: "From the major arcana to your first full spread.",
	}
	if err := database.DB.Create(&course).Error; err != nil {
		log.Printf("   ❌ Failed to create course: %v", err)
		return
	}

	modules := []struct {
		title   string
		lessons []string
	}{
		{"Los Arcanos Mayores", []string{"El Loco y El Mago", "La Sacerdotisa y La Emperatriz", "Arquetipos del viaje"}},
		{"Los Arcanos Menores", []string{"Copas y emociones", "Espadas y mente", "Bastos, Oros y lo material"}},
		{"Tu Primera Tirada", []string{"La tirada de una carta", "La tirada de tres cartas", "Leyendo en contexto"}},
	}

	for mi, m := range modules {
		module := models.CourseModule{
			ID:       uuid.New().String(),
			CourseID: course.ID,
			Title:    m.title,
			Position: mi + 1,
		}
		if err := database.DB.Create(&module).Error; err != nil {
			log.Printf("   ❌ Failed to create module %s: %v", m.title, err)
			continue
		}

		for li, title := range m.lessons {
			lesson := models.Lesson{
				ID:       uuid.New().String(),
				ModuleID: module.ID,
				Title:    title,
				Position: li + 1,
				XPReward: 25,
			}
			if err := database.DB.Create(&lesson).Error; err != nil {
				log.Printf("   ❌ Failed to create lesson %s: %v", title, err)
			}
		}
	}

	log.Println("   📚 Starter course seeded")
}
