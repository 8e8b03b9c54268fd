package mealplan

import (
	"math"

	"github.com/google/uuid"
)

// BodyGoal governs calorie distribution, portion ranges and selection bias.
type BodyGoal string

const (
	GoalWeightLoss  BodyGoal = "WEIGHT_LOSS"
	GoalMuscleGain  BodyGoal = "MUSCLE_GAIN"
	GoalMaintenance BodyGoal = "MAINTENANCE"
)

// ParseBodyGoal returns the BodyGoal for s, or false if s is not a
// recognized goal.
func ParseBodyGoal(s string) (BodyGoal, bool) {
	switch BodyGoal(s) {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintenance:
		return BodyGoal(s), true
	}
	return "", false
}

// CatalogueFood is the planner's read-only view of a food record. Calorie and
// macro values are per reference portion (100g unless stated otherwise).
type CatalogueFood struct {
	ID                    uuid.UUID      `json:"id"`
	Name                  string         `json:"name"`
	ImageURL              string         `json:"image_url"`
	MacroNutrient         string         `json:"macro_nutrient"`
	MealType              string         `json:"meal_type"`
	Calories              float64        `json:"calories"`
	ReferencePortionGrams float64        `json:"reference_portion_grams"`
	Macros                MacroBreakdown `json:"macros"`
	DietaryTags           []string       `json:"dietary_tags"`
	Allergens             []string       `json:"allergens"`
	SuitableForConditions []string       `json:"suitable_for_conditions"`
}

// MacroBreakdown holds macronutrient grams for a portion.
type MacroBreakdown struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func (m *MacroBreakdown) add(other MacroBreakdown) {
	m.ProteinG += other.ProteinG
	m.CarbsG += other.CarbsG
	m.FatG += other.FatG
	m.FiberG += other.FiberG
}

func (m MacroBreakdown) rounded() MacroBreakdown {
	return MacroBreakdown{
		ProteinG: round1(m.ProteinG),
		CarbsG:   round1(m.CarbsG),
		FatG:     round1(m.FatG),
		FiberG:   round1(m.FiberG),
	}
}

// SelectedFood is one line item in a generated meal. A meal never holds two
// entries with the same food id: repeat selections merge into one line.
type SelectedFood struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	ImageURL        string         `json:"image_url"`
	Grams           float64        `json:"grams"`
	Servings        float64        `json:"servings"`
	CaloriesPer100g float64        `json:"calories_per_100g"`
	TotalCalories   float64        `json:"total_calories"`
	Macros          MacroBreakdown `json:"macros"`
}

// Meals holds the three meal buckets of a single day.
type Meals struct {
	Breakfast []SelectedFood `json:"breakfast"`
	Lunch     []SelectedFood `json:"lunch"`
	Supper    []SelectedFood `json:"supper"`
}

// DayPlan is the generated plan for one day of the week.
type DayPlan struct {
	Day           string         `json:"day"`
	Meals         Meals          `json:"meal_plan"`
	TotalCalories float64        `json:"total_calories"`
	TotalMacros   MacroBreakdown `json:"total_macros"`
}

// WeekPlan is exactly seven DayPlans in Monday..Sunday order.
type WeekPlan []DayPlan

// TotalCalories sums the daily totals across the week.
func (w WeekPlan) TotalCalories() float64 {
	var total float64
	for _, day := range w {
		total += day.TotalCalories
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
