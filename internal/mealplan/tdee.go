package mealplan

// Total daily energy expenditure math, Katch-McArdle formula.
// Reference: https://tdeecalculator.net

// Activity level multipliers applied to BMR.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,   // little to no exercise
	"lightly_active":    1.375, // light exercise 1-3 days/week
	"moderately_active": 1.55,  // moderate exercise 3-5 days/week
	"very_active":       1.725, // hard exercise 6-7 days/week
	"extra_active":      1.9,   // very hard exercise & physical job
}

// Flat calorie offsets per body goal.
var goalAdjustments = map[BodyGoal]float64{
	GoalWeightLoss:  -500, // approximately 0.5kg loss per week
	GoalMuscleGain:  400,  // lean bulking surplus
	GoalMaintenance: 0,
}

// LeanBodyMass returns lean mass in kg: weight x (1 - bodyFat%/100).
func LeanBodyMass(weightKg, bodyFatPct float64) float64 {
	return round2(weightKg * (1 - bodyFatPct/100))
}

// BasalMetabolicRate returns BMR in kcal/day from lean mass using
// Katch-McArdle: 370 + 21.6 x LBM. The most accurate BMR formula when body
// fat percentage is known.
func BasalMetabolicRate(leanMassKg float64) float64 {
	return round2(370 + 21.6*leanMassKg)
}

// TotalDailyExpenditure returns TDEE in kcal/day. Unrecognized activity
// levels fall back to the sedentary multiplier.
func TotalDailyExpenditure(weightKg, bodyFatPct float64, activityLevel string) float64 {
	bmr := BasalMetabolicRate(LeanBodyMass(weightKg, bodyFatPct))
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.2
	}
	return round2(bmr * multiplier)
}

// AdjustForGoal applies the flat goal offset to a TDEE. Unrecognized goals
// leave the value unchanged.
func AdjustForGoal(tdee float64, goal BodyGoal) float64 {
	return round2(tdee + goalAdjustments[goal])
}
