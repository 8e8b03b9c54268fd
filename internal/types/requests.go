package types

import "github.com/platewise/backend/internal/mealplan"

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateFoodRequest is the payload for adding a catalogue entry.
type CreateFoodRequest struct {
	Name                  string   `json:"name" binding:"required"`
	ImageURL              string   `json:"image_url"`
	MacroNutrient         string   `json:"macro_nutrient" binding:"required"`
	MealType              string   `json:"meal_type" binding:"required"`
	Calories              float64  `json:"calories" binding:"required"`
	ReferencePortionGrams float64  `json:"reference_portion_grams"`
	ProteinG              float64  `json:"protein_g"`
	CarbsG                float64  `json:"carbs_g"`
	FatG                  float64  `json:"fat_g"`
	FiberG                float64  `json:"fiber_g"`
	DietaryTags           []string `json:"dietary_tags"`
	Allergens             []string `json:"allergens"`
	SuitableForConditions []string `json:"suitable_for_conditions"`
}

// UpdateFoodRequest carries the editable catalogue fields; nil pointers leave
// the stored value untouched.
type UpdateFoodRequest struct {
	Name                  *string  `json:"name"`
	ImageURL              *string  `json:"image_url"`
	MacroNutrient         *string  `json:"macro_nutrient"`
	MealType              *string  `json:"meal_type"`
	Calories              *float64 `json:"calories"`
	ReferencePortionGrams *float64 `json:"reference_portion_grams"`
	ProteinG              *float64 `json:"protein_g"`
	CarbsG                *float64 `json:"carbs_g"`
	FatG                  *float64 `json:"fat_g"`
	FiberG                *float64 `json:"fiber_g"`
	DietaryTags           []string `json:"dietary_tags"`
	Allergens             []string `json:"allergens"`
	SuitableForConditions []string `json:"suitable_for_conditions"`
}

// RecordMetricsRequest is the payload for a body-measurement snapshot.
type RecordMetricsRequest struct {
	WeightKg          float64 `json:"weight_kg" binding:"required,gt=0"`
	BodyFatPercentage float64 `json:"body_fat_percentage" binding:"required,gte=0,lt=100"`
	ActivityLevel     string  `json:"activity_level" binding:"required"`
}

// SuggestPlanRequest holds the preferences for generated week plans. When
// UseCalculatedTDEE is true the target comes from the user's current metrics;
// otherwise DailyCalorieTarget must be supplied.
type SuggestPlanRequest struct {
	BodyGoal            string   `json:"body_goal" binding:"required"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	MedicalConditions   []string `json:"medical_conditions"`
	DailyCalorieTarget  *float64 `json:"daily_calorie_target"`
	UseCalculatedTDEE   bool     `json:"use_calculated_tdee"`
}

// SavePlanRequest is the payload for persisting a generated week plan.
type SavePlanRequest struct {
	Plan           mealplan.WeekPlan `json:"plan" binding:"required"`
	TargetCalories float64           `json:"target_calories" binding:"required,gt=0"`
	BodyGoal       string            `json:"body_goal" binding:"required"`
}

// NutrientBreakdown is the API view of one nutrient: grams, derived calories
// and unit.
type NutrientBreakdown struct {
	Amount   float64 `json:"amount"`
	Calories float64 `json:"calories"`
	Unit     string  `json:"unit"`
}

// FoodBreakdown groups the per-nutrient views for a food response.
type FoodBreakdown struct {
	Protein      NutrientBreakdown `json:"protein"`
	Carbohydrate NutrientBreakdown `json:"carbohydrate"`
	Fat          NutrientBreakdown `json:"fat"`
	Fiber        NutrientBreakdown `json:"fiber"`
}
