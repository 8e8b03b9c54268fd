package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/router"
	"github.com/platewise/backend/internal/server"
	"github.com/platewise/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if _, err := os.Stat(migrationsDir); err == nil {
		if err := database.RunMigrations(db, migrationsDir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	foodService := service.NewFoodService(db)
	metricsService := service.NewMetricsService(db)
	planService := service.NewMealPlanService(db, foodService, metricsService)

	var imageService *service.ImageService
	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 storage unavailable, food image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	var limiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:mealplans",
		})
	}

	srv := server.NewServer(router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Foods:    api.NewFoodHandler(foodService, imageService),
		Metrics:  api.NewMetricsHandler(metricsService),
		Plans:    api.NewMealPlanHandler(planService),
		Validate: authService,
		Limiter:  limiter,
		DB:       pool,
	})

	log.Println("Starting server...")
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
