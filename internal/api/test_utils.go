package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/service"
)

// testEnv wires the handlers against an in-memory SQLite database. The auth
// middleware is replaced by a stub that injects a fixed user id.
type testEnv struct {
	router *gin.Engine
	foods  *service.FoodService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	foods := service.NewFoodService(db)
	metrics := service.NewMetricsService(db)
	plans := service.NewMealPlanService(db, foods, metrics)
	auth := service.NewAuthService(db, "test-secret")

	userID := uuid.New()

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(auth).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", "tester")
		c.Next()
	})

	NewFoodHandler(foods, nil).RegisterRoutes(v1, protected)
	NewMetricsHandler(metrics).RegisterRoutes(protected)
	NewMealPlanHandler(plans).RegisterRoutes(protected)

	return &testEnv{
		router: router,
		foods:  foods,
	}
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
