package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/mealplan"
	"github.com/platewise/backend/internal/types"
)

func seedSuggestCatalogue(t *testing.T, env *testEnv) {
	t.Helper()
	createTestFood(t, env, types.CreateFoodRequest{
		Name: "Millet porridge", MacroNutrient: "Carbohydrate", MealType: "breakfast", Calories: 200,
	})
	createTestFood(t, env, types.CreateFoodRequest{
		Name: "Chicken stew", MacroNutrient: "Protein", MealType: "lunch or supper", Calories: 300,
	})
}

func TestSuggestPlanEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	seedSuggestCatalogue(t, env)

	target := 2000.0
	w := env.doJSON(t, http.MethodPost, "/api/v1/mealplans/suggest", types.SuggestPlanRequest{
		BodyGoal:           "MAINTENANCE",
		DailyCalorieTarget: &target,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plan           mealplan.WeekPlan `json:"meal_plan"`
		TargetCalories float64           `json:"target_calories"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, 2000.0, resp.TargetCalories)
	require.Len(t, resp.Plan, 7)
	assert.Equal(t, "Monday", resp.Plan[0].Day)
}

func TestSuggestPlanEndpointErrors(t *testing.T) {
	env := setupTestEnv(t)
	seedSuggestCatalogue(t, env)

	low := 500.0
	w := env.doJSON(t, http.MethodPost, "/api/v1/mealplans/suggest", types.SuggestPlanRequest{
		BodyGoal:           "MAINTENANCE",
		DailyCalorieTarget: &low,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	target := 2000.0
	w = env.doJSON(t, http.MethodPost, "/api/v1/mealplans/suggest", types.SuggestPlanRequest{
		BodyGoal:           "SHREDDED",
		DailyCalorieTarget: &target,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/mealplans/suggest", types.SuggestPlanRequest{
		BodyGoal:          "MAINTENANCE",
		UseCalculatedTDEE: true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestPlanEndpointEmptyCatalogue(t *testing.T) {
	env := setupTestEnv(t)

	target := 2000.0
	w := env.doJSON(t, http.MethodPost, "/api/v1/mealplans/suggest", types.SuggestPlanRequest{
		BodyGoal:           "MAINTENANCE",
		DailyCalorieTarget: &target,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestPlanEndpointNoEligibleFoods(t *testing.T) {
	env := setupTestEnv(t)
	seedSuggestCatalogue(t, env)

	target := 2000.0
	w := env.doJSON(t, http.MethodPost, "/api/v1/mealplans/suggest", types.SuggestPlanRequest{
		BodyGoal:            "MAINTENANCE",
		DailyCalorieTarget:  &target,
		DietaryRestrictions: []string{"halal"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plan    mealplan.WeekPlan `json:"meal_plan"`
		Warning string            `json:"warning"`
	}
	decodeJSON(t, w, &resp)
	assert.Empty(t, resp.Plan)
	assert.NotEmpty(t, resp.Warning)
}

func TestPlanCRUDEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/v1/mealplans", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	save := types.SavePlanRequest{
		Plan:           mealplan.WeekPlan{{Day: "Monday"}},
		TargetCalories: 2000,
		BodyGoal:       "MAINTENANCE",
	}
	w = env.doJSON(t, http.MethodPost, "/api/v1/mealplans", save)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/mealplans", save)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/mealplans", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	save.BodyGoal = "WEIGHT_LOSS"
	save.TargetCalories = 1800
	w = env.doJSON(t, http.MethodPut, "/api/v1/mealplans", save)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TargetCalories float64 `json:"target_calories"`
		BodyGoal       string  `json:"body_goal"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, 1800.0, resp.TargetCalories)
	assert.Equal(t, "WEIGHT_LOSS", resp.BodyGoal)

	w = env.doJSON(t, http.MethodDelete, "/api/v1/mealplans", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodDelete, "/api/v1/mealplans", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavePlanInvalidGoal(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/mealplans", types.SavePlanRequest{
		Plan:           mealplan.WeekPlan{{Day: "Monday"}},
		TargetCalories: 2000,
		BodyGoal:       "SHREDDED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
