package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/types"
)

func createTestFood(t *testing.T, env *testEnv, req types.CreateFoodRequest) uuid.UUID {
	t.Helper()
	food, err := env.foods.CreateFood(context.Background(), &req)
	require.NoError(t, err)
	return food.ID
}

func TestCreateFoodEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/foods", types.CreateFoodRequest{
		Name:          "Ugali",
		MacroNutrient: "Carbohydrate",
		MealType:      "lunch or supper",
		Calories:      112,
		CarbsG:        24,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID        string              `json:"id"`
		Name      string              `json:"name"`
		Breakdown types.FoodBreakdown `json:"breakdown"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Ugali", resp.Name)
	assert.Equal(t, 24.0, resp.Breakdown.Carbohydrate.Amount)
	assert.Equal(t, 96.0, resp.Breakdown.Carbohydrate.Calories)
}

func TestCreateFoodValidation(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/foods", types.CreateFoodRequest{
		Name: "Ugali",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFoodsEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	createTestFood(t, env, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})
	createTestFood(t, env, types.CreateFoodRequest{
		Name: "Banana", MacroNutrient: "Carbohydrate", MealType: "fruit", Calories: 89,
	})

	w := env.doJSON(t, http.MethodGet, "/api/v1/foods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []struct {
			Name string `json:"name"`
		} `json:"foods"`
	}
	decodeJSON(t, w, &resp)
	assert.Len(t, resp.Foods, 2)

	w = env.doJSON(t, http.MethodGet, "/api/v1/foods?meal_type=fruit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Foods, 1)
	assert.Equal(t, "Banana", resp.Foods[0].Name)
}

func TestGetFoodEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	id := createTestFood(t, env, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/foods/%s", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/foods/%s", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/foods/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimilarFoodsEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	id := createTestFood(t, env, types.CreateFoodRequest{
		Name: "Chicken stew", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 150, ProteinG: 17, FatG: 8,
	})
	createTestFood(t, env, types.CreateFoodRequest{
		Name: "Beef stew", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 180, ProteinG: 18, FatG: 10,
	})

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/foods/%s/similar?limit=1", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []struct {
			Name string `json:"name"`
		} `json:"foods"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Foods, 1)
	assert.Equal(t, "Beef stew", resp.Foods[0].Name)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/foods/%s/similar?limit=0", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteFoodEndpoints(t *testing.T) {
	env := setupTestEnv(t)
	id := createTestFood(t, env, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})

	calories := 120.0
	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/foods/%s", id), types.UpdateFoodRequest{
		Calories: &calories,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Calories float64 `json:"calories"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, 120.0, resp.Calories)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/foods/%s", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/foods/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadImageUnconfigured(t *testing.T) {
	env := setupTestEnv(t)
	id := createTestFood(t, env, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/foods/%s/image", id), nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
