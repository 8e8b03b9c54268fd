package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platewise/backend/internal/models"
)

// setupServiceDB opens a fresh in-memory SQLite database with the full
// schema. SQLite keeps these tests self-contained; the containerized
// Postgres coverage lives in the integration tests.
func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserMetrics{},
		&models.Food{},
		&models.MealPlan{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
