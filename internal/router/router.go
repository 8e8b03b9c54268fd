package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/middleware"
)

// Handlers bundles the API handlers the router wires up.
type Handlers struct {
	Auth     *api.AuthHandler
	Foods    *api.FoodHandler
	Metrics  *api.MetricsHandler
	Plans    *api.MealPlanHandler
	Validate middleware.TokenValidator
	// Limiter guards the plan endpoints. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
	// DB backs the health endpoint. Nil reports ok without a ping.
	DB *database.DB
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if h.DB != nil {
			if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(h.Validate))

	h.Foods.RegisterRoutes(v1, protected)
	h.Metrics.RegisterRoutes(protected)

	plans := protected.Group("")
	if h.Limiter != nil {
		plans.Use(h.Limiter.RateLimitMiddleware())
	}
	h.Plans.RegisterRoutes(plans)

	return router
}
