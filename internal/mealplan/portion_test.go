package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypicalPortionGramsMealTypeWins(t *testing.T) {
	// Meal type is more specific than the macro category.
	assert.Equal(t, 250.0, TypicalPortionGrams("Protein", "beverage"))
	assert.Equal(t, 120.0, TypicalPortionGrams("Carbohydrate", "fruit"))
	assert.Equal(t, 100.0, TypicalPortionGrams("Fat", "side dish"))
	assert.Equal(t, 80.0, TypicalPortionGrams("Fiber", "breakfast or snack"))
	assert.Equal(t, 150.0, TypicalPortionGrams("Carbohydrate", "lunch or supper"))
}

func TestTypicalPortionGramsMacroFallback(t *testing.T) {
	assert.Equal(t, 150.0, TypicalPortionGrams("Protein", "brunch"))
	assert.Equal(t, 200.0, TypicalPortionGrams("Carbohydrate", "brunch"))
	assert.Equal(t, 15.0, TypicalPortionGrams("Fat", "brunch"))
	assert.Equal(t, 100.0, TypicalPortionGrams("Fiber", "brunch"))
}

func TestTypicalPortionGramsDefault(t *testing.T) {
	assert.Equal(t, 100.0, TypicalPortionGrams("Mystery", "brunch"))
}

func TestServingsForGrams(t *testing.T) {
	assert.Equal(t, 2.0, ServingsForGrams(300, "Protein", "lunch or supper"))
	assert.Equal(t, 0.5, ServingsForGrams(125, "Carbohydrate", "beverage"))
	assert.Equal(t, 1.3, ServingsForGrams(100, "Fiber", "breakfast or snack"))
}

func TestGramsServingsRoundTrip(t *testing.T) {
	cases := []struct {
		macro    string
		mealType string
	}{
		{"Protein", "lunch or supper"},
		{"Carbohydrate", "beverage"},
		{"Fat", "brunch"},
		{"Fiber", "side dish"},
		{"Mystery", "unknown"},
	}
	for _, tc := range cases {
		for _, grams := range []float64{15, 80, 100, 150, 250, 420} {
			servings := ServingsForGrams(grams, tc.macro, tc.mealType)
			back := GramsForServings(servings, tc.macro, tc.mealType)
			// One decimal of servings precision bounds the round-trip error
			// by half a portion step.
			tolerance := TypicalPortionGrams(tc.macro, tc.mealType) * 0.05
			assert.InDeltaf(t, grams, back, tolerance,
				"round trip for %s/%s at %vg", tc.macro, tc.mealType, grams)
		}
	}
}
