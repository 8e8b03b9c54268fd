package mealplan

import "strings"

// Category-based default portion sizes in grams, used to convert assigned
// grams into a display-friendly serving count.

// Portion sizes by meal type; checked first because it is more specific.
var portionsByMealType = map[string]float64{
	"beverage":           250, // 1 cup
	"fruit":              120, // medium fruit
	"side dish":          100,
	"breakfast or snack": 80,
	"lunch or supper":    150, // main meal portion
}

// Fallback portion sizes by primary macronutrient.
var portionsByMacro = map[string]float64{
	"Protein":      150, // chicken breast, fish, beef
	"Carbohydrate": 200, // rice, ugali, pasta
	"Fat":          15,  // oils, butter, nuts
	"Fiber":        100, // vegetables, salads
}

const defaultPortionGrams = 100

// TypicalPortionGrams returns the reference portion for a food's category.
// Meal type wins over macro category; unknown categories default to 100g.
func TypicalPortionGrams(macroNutrient, mealType string) float64 {
	if grams, ok := portionsByMealType[strings.ToLower(mealType)]; ok {
		return grams
	}
	if grams, ok := portionsByMacro[macroNutrient]; ok {
		return grams
	}
	return defaultPortionGrams
}

// ServingsForGrams converts a gram weight into servings, one decimal.
func ServingsForGrams(grams float64, macroNutrient, mealType string) float64 {
	return round1(grams / TypicalPortionGrams(macroNutrient, mealType))
}

// GramsForServings converts a serving count back into grams, one decimal.
func GramsForServings(servings float64, macroNutrient, mealType string) float64 {
	return round1(servings * TypicalPortionGrams(macroNutrient, mealType))
}
