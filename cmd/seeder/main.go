package main

import (
	"log"

	"github.com/portal-cosmico/backend/internal/config"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/seeds"
)

func main() {
	log.Println("🌱 Portal Cósmico Seeder")

	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(
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
		&models.Plan{},
		&models.Subscription{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeds.SeedBadges()
	seeds.SeedMissions()
	seeds.SeedShopItems()
	seeds.SeedCourses()
	seeds.SeedDailyChallenges()
	seeds.SeedPlans()

	log.Println("✅ Seeding complete")
}
