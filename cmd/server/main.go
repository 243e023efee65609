package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/config"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/middleware"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/routes"
	"github.com/portal-cosmico/backend/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Portal Cósmico Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect Database
	database.Connect()
	database.InitRedis()

	logger.Info().Msg("🔄 Running Database Migrations...")

	tableModels := []interface{}{
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
	}

	if err := database.DB.AutoMigrate(tableModels...); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("✅ Database Migrations Complete")

	// 2. Setup Router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// 3. Register Routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterUserRoutes(api)
		routes.RegisterGamificationRoutes(api)
		routes.RegisterCourseRoutes(api)
		routes.RegisterReadingRoutes(api)
		routes.RegisterShopRoutes(api)
		routes.RegisterBillingRoutes(api)
		routes.RegisterUploadRoutes(api)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "Portal Cósmico Backend is running 🔮",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	// 4. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
