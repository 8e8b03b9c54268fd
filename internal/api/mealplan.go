package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/mealplan"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// MealPlanHandler serves plan generation and the stored-plan CRUD.
type MealPlanHandler struct {
	plans *service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler instance
func NewMealPlanHandler(plans *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

// RegisterRoutes wires the meal-plan endpoints. All require auth.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/mealplans")
	{
		plans.POST("/suggest", h.SuggestPlan)
		plans.POST("", h.CreatePlan)
		plans.GET("", h.GetPlan)
		plans.PUT("", h.UpdatePlan)
		plans.DELETE("", h.DeletePlan)
	}
}

func (h *MealPlanHandler) SuggestPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SuggestPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.plans.SuggestPlan(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBodyGoal),
			errors.Is(err, service.ErrCalorieTargetRequired),
			errors.Is(err, service.ErrCalorieTargetTooLow),
			errors.Is(err, service.ErrCalorieTargetTooHigh),
			errors.Is(err, service.ErrNoUserMetrics):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyCatalogue):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate meal plan"})
		}
		return
	}

	if result.NoEligibleFoods {
		c.JSON(http.StatusOK, gin.H{
			"meal_plan":       mealplan.WeekPlan{},
			"target_calories": result.TargetCalories,
			"warning":         "no foods match the given dietary preferences",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MealPlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, valid := mealplan.ParseBodyGoal(req.BodyGoal); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidBodyGoal.Error()})
		return
	}

	record, err := h.plans.CreatePlan(c.Request.Context(), userID, req.Plan, req.TargetCalories, req.BodyGoal)
	if err != nil {
		if errors.Is(err, service.ErrPlanExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save meal plan"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := h.plans.GetPlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get meal plan"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *MealPlanHandler) UpdatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, valid := mealplan.ParseBodyGoal(req.BodyGoal); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidBodyGoal.Error()})
		return
	}

	record, err := h.plans.UpdatePlan(c.Request.Context(), userID, req.Plan, req.TargetCalories, req.BodyGoal)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal plan"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *MealPlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.plans.DeletePlan(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}
