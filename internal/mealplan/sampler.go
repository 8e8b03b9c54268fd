package mealplan

import (
	"math/rand"
	"sort"
)

// Sampler picks a main item from a non-empty candidate bucket. The strategy
// encodes the body goal's calorie-density bias.
type Sampler interface {
	Pick(rng *rand.Rand, foods []CatalogueFood) CatalogueFood
}

// SamplerForGoal returns the selection strategy for a body goal: muscle gain
// draws from the highest-calorie third, weight loss from the lowest-calorie
// third, anything else uniformly from the whole bucket.
func SamplerForGoal(goal BodyGoal) Sampler {
	switch goal {
	case GoalMuscleGain:
		return highCalorieSampler{}
	case GoalWeightLoss:
		return lowCalorieSampler{}
	default:
		return uniformSampler{}
	}
}

type highCalorieSampler struct{}

func (highCalorieSampler) Pick(rng *rand.Rand, foods []CatalogueFood) CatalogueFood {
	sorted := sortedByCalories(foods, true)
	top := thirdOf(len(sorted))
	return sorted[rng.Intn(top)]
}

type lowCalorieSampler struct{}

func (lowCalorieSampler) Pick(rng *rand.Rand, foods []CatalogueFood) CatalogueFood {
	sorted := sortedByCalories(foods, false)
	bottom := thirdOf(len(sorted))
	return sorted[rng.Intn(bottom)]
}

type uniformSampler struct{}

func (uniformSampler) Pick(rng *rand.Rand, foods []CatalogueFood) CatalogueFood {
	return foods[rng.Intn(len(foods))]
}

func sortedByCalories(foods []CatalogueFood, descending bool) []CatalogueFood {
	sorted := make([]CatalogueFood, len(foods))
	copy(sorted, foods)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Calories > sorted[j].Calories
		}
		return sorted[i].Calories < sorted[j].Calories
	})
	return sorted
}

func thirdOf(n int) int {
	if third := n / 3; third > 1 {
		return third
	}
	return 1
}
