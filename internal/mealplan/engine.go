package mealplan

import (
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Fraction of the daily target assigned to each meal, per body goal. The
// snacks share completes the distribution but is not consumed by allocation.
type calorieShares struct {
	Breakfast float64
	Lunch     float64
	Supper    float64
	Snacks    float64
}

var calorieDistribution = map[BodyGoal]calorieShares{
	GoalWeightLoss:  {Breakfast: 0.30, Lunch: 0.35, Supper: 0.30, Snacks: 0.05},
	GoalMuscleGain:  {Breakfast: 0.25, Lunch: 0.35, Supper: 0.30, Snacks: 0.10},
	GoalMaintenance: {Breakfast: 0.30, Lunch: 0.35, Supper: 0.30, Snacks: 0.05},
}

// Portion bounds in grams for main and side items, per body goal.
type gramRange struct {
	MainMin float64
	MainMax float64
	SideMin float64
	SideMax float64
}

var gramRanges = map[BodyGoal]gramRange{
	GoalWeightLoss:  {MainMin: 100, MainMax: 200, SideMin: 80, SideMax: 100},
	GoalMuscleGain:  {MainMin: 200, MainMax: 400, SideMin: 100, SideMax: 200},
	GoalMaintenance: {MainMin: 150, MainMax: 300, SideMin: 80, SideMax: 150},
}

var daysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MealBucket classifies foods into the slots the allocator fills.
type MealBucket int

const (
	BucketBreakfast MealBucket = iota
	BucketLunchSupper
	BucketFruit
	BucketBeverage
	BucketSideDish
)

// BucketsForMealType returns every bucket a meal-type string belongs to.
// Classification is deliberately many-to-many: a food tagged for both
// breakfast and sides lands in both buckets.
func BucketsForMealType(mealType string) []MealBucket {
	mealType = strings.ToLower(mealType)
	var buckets []MealBucket
	if strings.Contains(mealType, "breakfast") || strings.Contains(mealType, "snack") {
		buckets = append(buckets, BucketBreakfast)
	}
	if strings.Contains(mealType, "lunch") || strings.Contains(mealType, "supper") {
		buckets = append(buckets, BucketLunchSupper)
	}
	if strings.Contains(mealType, "fruit") {
		buckets = append(buckets, BucketFruit)
	}
	if strings.Contains(mealType, "beverage") {
		buckets = append(buckets, BucketBeverage)
	}
	if strings.Contains(mealType, "side") {
		buckets = append(buckets, BucketSideDish)
	}
	return buckets
}

type bucketedFoods map[MealBucket][]CatalogueFood

func categorize(foods []CatalogueFood) bucketedFoods {
	buckets := bucketedFoods{}
	for _, food := range foods {
		for _, b := range BucketsForMealType(food.MealType) {
			buckets[b] = append(buckets[b], food)
		}
	}
	return buckets
}

// Engine allocates a week of meals against a daily calorie target. It holds
// no state between runs beyond its random source, which is injected so that
// runs can be reproduced.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an allocation engine using the given random source.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// GenerateWeek builds seven DayPlans from the eligible catalogue. Empty meal
// buckets are logged and yield lighter meals; generation never aborts.
func (e *Engine) GenerateWeek(foods []CatalogueFood, dailyTarget float64, goal BodyGoal) WeekPlan {
	shares, ok := calorieDistribution[goal]
	if !ok {
		log.Printf("Unknown body goal %q, using maintenance distribution", goal)
		goal = GoalMaintenance
		shares = calorieDistribution[goal]
	}
	grams := gramRanges[goal]
	sampler := SamplerForGoal(goal)

	breakfastTarget := dailyTarget * shares.Breakfast
	lunchTarget := dailyTarget * shares.Lunch
	supperTarget := dailyTarget * shares.Supper
	log.Printf("Meal targets - breakfast: %.0f, lunch: %.0f, supper: %.0f (goal %s, daily %.0f)",
		breakfastTarget, lunchTarget, supperTarget, goal, dailyTarget)

	buckets := categorize(foods)
	if len(buckets[BucketBreakfast]) == 0 {
		log.Printf("No breakfast foods available")
	}
	if len(buckets[BucketLunchSupper]) == 0 {
		log.Printf("No lunch/supper foods available")
	}

	week := make(WeekPlan, 0, len(daysOfWeek))
	for _, day := range daysOfWeek {
		week = append(week, e.buildDay(day, buckets, sampler, grams, breakfastTarget, lunchTarget, supperTarget))
	}

	weeklyTotal := week.TotalCalories()
	log.Printf("Generated meal plan - weekly total: %.0f, avg daily: %.0f (target %.0f)",
		weeklyTotal, weeklyTotal/7, dailyTarget)
	return week
}

func (e *Engine) buildDay(day string, buckets bucketedFoods, sampler Sampler, grams gramRange,
	breakfastTarget, lunchTarget, supperTarget float64) DayPlan {

	var breakfast, lunch, supper meal

	if candidates := buckets[BucketBreakfast]; len(candidates) > 0 {
		e.addMainCourses(&breakfast, candidates, sampler, breakfastTarget, grams)

		// Beverage with ~80% probability.
		if beverages := buckets[BucketBeverage]; len(beverages) > 0 && e.rng.Float64() > 0.2 {
			beverage := beverages[e.rng.Intn(len(beverages))]
			breakfast.add(e.selectedFood(beverage, float64(e.randBetween(200, 300))))
		}

		// Fruit only if breakfast still runs light.
		if fruits := buckets[BucketFruit]; len(fruits) > 0 && breakfast.calories < breakfastTarget*0.9 {
			fruit := fruits[e.rng.Intn(len(fruits))]
			breakfast.add(e.selectedFood(fruit, float64(e.randBetween(100, 150))))
		}
	}

	if candidates := buckets[BucketLunchSupper]; len(candidates) > 0 {
		e.addMainCourses(&lunch, candidates, sampler, lunchTarget, grams)
		e.maybeAddSide(&lunch, buckets[BucketSideDish], grams)

		// Beverage with ~60% probability, a standard cup.
		if beverages := buckets[BucketBeverage]; len(beverages) > 0 && e.rng.Float64() > 0.4 {
			beverage := beverages[e.rng.Intn(len(beverages))]
			lunch.add(e.selectedFood(beverage, 250))
		}
	}

	if candidates := buckets[BucketLunchSupper]; len(candidates) > 0 {
		// Main dishes should not needlessly repeat meal-to-meal on the same
		// day; fall back to the full bucket if lunch used everything.
		supperCandidates := excludeIDs(candidates, lunch.ids())
		if len(supperCandidates) == 0 {
			supperCandidates = candidates
		}
		e.addMainCourses(&supper, supperCandidates, sampler, supperTarget, grams)
		e.maybeAddSide(&supper, buckets[BucketSideDish], grams)
	}

	dayTotal := breakfast.calories + lunch.calories + supper.calories
	var dayMacros MacroBreakdown
	dayMacros.add(breakfast.macros)
	dayMacros.add(lunch.macros)
	dayMacros.add(supper.macros)

	return DayPlan{
		Day: day,
		Meals: Meals{
			Breakfast: breakfast.items,
			Lunch:     lunch.items,
			Supper:    supper.items,
		},
		TotalCalories: round1(dayTotal),
		TotalMacros:   dayMacros.rounded(),
	}
}

// addMainCourses picks 1-2 main items. The remaining target is split evenly
// across the still-unfilled slots and decremented by the calories actually
// added, so clamping one slot does not skew the next.
func (e *Engine) addMainCourses(m *meal, candidates []CatalogueFood, sampler Sampler, target float64, grams gramRange) {
	numItems := e.rng.Intn(2) + 1
	remaining := target
	for i := 0; i < numItems; i++ {
		food := sampler.Pick(e.rng, candidates)
		itemTarget := remaining / float64(numItems-i)
		portion := gramsForCalories(food.Calories, itemTarget, grams.MainMin, grams.MainMax)
		added := m.add(e.selectedFood(food, portion))
		remaining -= added
	}
}

// maybeAddSide adds one side dish with ~70% probability.
func (e *Engine) maybeAddSide(m *meal, sides []CatalogueFood, grams gramRange) {
	if len(sides) == 0 || e.rng.Float64() <= 0.3 {
		return
	}
	side := sides[e.rng.Intn(len(sides))]
	portion := float64(e.randBetween(int(grams.SideMin), int(grams.SideMax)))
	m.add(e.selectedFood(side, portion))
}

// gramsForCalories computes the portion that would hit targetCalories, then
// clamps it to the goal's range. Zero or negative calorie density resolves to
// the minimum portion.
func gramsForCalories(caloriesPerPortion, targetCalories, minGrams, maxGrams float64) float64 {
	if caloriesPerPortion <= 0 {
		return minGrams
	}
	ideal := targetCalories / caloriesPerPortion * 100
	return round1(clamp(ideal, minGrams, maxGrams))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (e *Engine) selectedFood(food CatalogueFood, portionGrams float64) SelectedFood {
	reference := food.ReferencePortionGrams
	if reference <= 0 {
		reference = 100
	}
	multiplier := portionGrams / reference
	return SelectedFood{
		ID:              food.ID,
		Name:            food.Name,
		ImageURL:        food.ImageURL,
		Grams:           portionGrams,
		Servings:        ServingsForGrams(portionGrams, food.MacroNutrient, food.MealType),
		CaloriesPer100g: food.Calories,
		TotalCalories:   round1(multiplier * food.Calories),
		Macros: MacroBreakdown{
			ProteinG: round1(food.Macros.ProteinG * multiplier),
			CarbsG:   round1(food.Macros.CarbsG * multiplier),
			FatG:     round1(food.Macros.FatG * multiplier),
			FiberG:   round1(food.Macros.FiberG * multiplier),
		},
	}
}

// randBetween returns an int in [lo, hi] inclusive.
func (e *Engine) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo+1)
}

// meal accumulates line items for one meal with the merge invariant: a food
// selected twice folds into a single line with summed grams, calories and
// macros.
type meal struct {
	items    []SelectedFood
	calories float64
	macros   MacroBreakdown
}

// add merges the selection into the meal and returns the calories it
// contributed.
func (m *meal) add(food SelectedFood) float64 {
	m.calories += food.TotalCalories
	m.macros.add(food.Macros)

	for i := range m.items {
		if m.items[i].ID == food.ID {
			m.items[i].Grams += food.Grams
			m.items[i].Servings += food.Servings
			m.items[i].TotalCalories += food.TotalCalories
			m.items[i].Macros.add(food.Macros)
			return food.TotalCalories
		}
	}
	m.items = append(m.items, food)
	return food.TotalCalories
}

func (m *meal) ids() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(m.items))
	for _, item := range m.items {
		set[item.ID] = struct{}{}
	}
	return set
}

func excludeIDs(foods []CatalogueFood, exclude map[uuid.UUID]struct{}) []CatalogueFood {
	kept := make([]CatalogueFood, 0, len(foods))
	for _, food := range foods {
		if _, used := exclude[food.ID]; !used {
			kept = append(kept, food)
		}
	}
	return kept
}
