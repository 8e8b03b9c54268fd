package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// MetricsHandler serves the body-metrics endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler instance
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// RegisterRoutes wires the metrics endpoints. All require auth.
func (h *MetricsHandler) RegisterRoutes(router *gin.RouterGroup) {
	metrics := router.Group("/metrics")
	{
		metrics.POST("", h.RecordMetrics)
		metrics.GET("/current", h.CurrentMetrics)
		metrics.GET("/history", h.History)
	}
}

func (h *MetricsHandler) RecordMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.RecordMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics, err := h.metrics.RecordMetrics(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record metrics"})
		return
	}

	c.JSON(http.StatusCreated, metrics)
}

func (h *MetricsHandler) CurrentMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metrics, err := h.metrics.CurrentMetrics(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoUserMetrics) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get metrics"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *MetricsHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	history, err := h.metrics.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get metrics history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": history})
}
