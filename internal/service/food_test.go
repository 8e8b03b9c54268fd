package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/types"
)

func seedFood(t *testing.T, svc *FoodService, req types.CreateFoodRequest) uuid.UUID {
	t.Helper()
	food, err := svc.CreateFood(context.Background(), &req)
	require.NoError(t, err)
	return food.ID
}

func TestCreateFoodDefaultsReferencePortion(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	food, err := svc.CreateFood(context.Background(), &types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, food.ReferencePortionGrams)
	assert.NotEqual(t, uuid.Nil, food.ID)
}

func TestListFoodsFilters(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	seedFood(t, svc, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
		DietaryTags: []string{"vegan"},
	})
	seedFood(t, svc, types.CreateFoodRequest{
		Name: "Chicken stew", MacroNutrient: "Protein", MealType: "lunch or supper", Calories: 150,
	})
	seedFood(t, svc, types.CreateFoodRequest{
		Name: "Banana", MacroNutrient: "Carbohydrate", MealType: "fruit", Calories: 89,
		DietaryTags: []string{"vegan"},
	})

	all, err := svc.ListFoods(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mains, err := svc.ListFoods(context.Background(), "lunch or supper", "", "")
	require.NoError(t, err)
	assert.Len(t, mains, 2)

	carbs, err := svc.ListFoods(context.Background(), "", "Carbohydrate", "")
	require.NoError(t, err)
	assert.Len(t, carbs, 2)

	vegan, err := svc.ListFoods(context.Background(), "lunch or supper", "", "vegan")
	require.NoError(t, err)
	require.Len(t, vegan, 1)
	assert.Equal(t, "Ugali", vegan[0].Name)
}

func TestUpdateFoodPartial(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	id := seedFood(t, svc, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
		CarbsG: 24,
	})

	calories := 120.0
	updated, err := svc.UpdateFood(context.Background(), id, &types.UpdateFoodRequest{
		Calories: &calories,
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.Calories)
	assert.Equal(t, "Ugali", updated.Name)
	assert.Equal(t, 24.0, updated.CarbsG)

	_, err = svc.UpdateFood(context.Background(), uuid.New(), &types.UpdateFoodRequest{})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDeleteFood(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	id := seedFood(t, svc, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})

	require.NoError(t, svc.DeleteFood(context.Background(), id))

	_, err := svc.GetFood(context.Background(), id)
	assert.ErrorIs(t, err, ErrFoodNotFound)

	assert.ErrorIs(t, svc.DeleteFood(context.Background(), id), ErrFoodNotFound)
}

func TestDeleteFoodAllowsNameReuse(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	id := seedFood(t, svc, types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 112,
	})
	require.NoError(t, svc.DeleteFood(context.Background(), id))

	recreated, err := svc.CreateFood(context.Background(), &types.CreateFoodRequest{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper", Calories: 120,
	})
	require.NoError(t, err)
	assert.NotEqual(t, id, recreated.ID)
	assert.Equal(t, 120.0, recreated.Calories)
}

func TestSimilarFoodsOrdersByMacroProfile(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	target := seedFood(t, svc, types.CreateFoodRequest{
		Name: "Chicken stew", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 150, ProteinG: 17, FatG: 8, CarbsG: 3,
	})
	seedFood(t, svc, types.CreateFoodRequest{
		Name: "Beef stew", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 180, ProteinG: 18, FatG: 10, CarbsG: 4,
	})
	seedFood(t, svc, types.CreateFoodRequest{
		Name: "Banana", MacroNutrient: "Carbohydrate", MealType: "fruit",
		Calories: 89, CarbsG: 23, FiberG: 2.6, ProteinG: 1.1,
	})

	similar, err := svc.SimilarFoods(context.Background(), target, 2)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, "Beef stew", similar[0].Name)
	assert.Equal(t, "Banana", similar[1].Name)

	_, err = svc.SimilarFoods(context.Background(), uuid.New(), 2)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestCatalogueConversion(t *testing.T) {
	svc := NewFoodService(setupServiceDB(t))

	seedFood(t, svc, types.CreateFoodRequest{
		Name: "Sukuma wiki", MacroNutrient: "Fiber", MealType: "side dish", Calories: 50,
		FiberG: 3.5, DietaryTags: []string{"vegan"}, Allergens: []string{},
	})

	catalogue, err := svc.Catalogue(context.Background())
	require.NoError(t, err)
	require.Len(t, catalogue, 1)
	assert.Equal(t, "Sukuma wiki", catalogue[0].Name)
	assert.Equal(t, "side dish", catalogue[0].MealType)
	assert.Equal(t, 3.5, catalogue[0].Macros.FiberG)
	assert.Equal(t, []string{"vegan"}, catalogue[0].DietaryTags)
}
