package mealplan

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func calorieBucket(calories ...float64) []CatalogueFood {
	foods := make([]CatalogueFood, 0, len(calories))
	for _, c := range calories {
		foods = append(foods, CatalogueFood{ID: uuid.New(), Calories: c})
	}
	return foods
}

func TestMuscleGainSamplesTopThird(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bucket := calorieBucket(100, 200, 300, 400, 500, 600, 700, 800, 900)
	sampler := SamplerForGoal(GoalMuscleGain)

	// Nine foods: the eligible slice is the three highest-calorie entries.
	for i := 0; i < 200; i++ {
		picked := sampler.Pick(rng, bucket)
		assert.GreaterOrEqual(t, picked.Calories, 700.0)
	}
}

func TestWeightLossSamplesBottomThird(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bucket := calorieBucket(100, 200, 300, 400, 500, 600, 700, 800, 900)
	sampler := SamplerForGoal(GoalWeightLoss)

	for i := 0; i < 200; i++ {
		picked := sampler.Pick(rng, bucket)
		assert.LessOrEqual(t, picked.Calories, 300.0)
	}
}

func TestMaintenanceSamplesWholeBucket(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bucket := calorieBucket(100, 500, 900)
	sampler := SamplerForGoal(GoalMaintenance)

	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		seen[sampler.Pick(rng, bucket).Calories] = true
	}
	assert.Len(t, seen, 3)
}

func TestUnknownGoalSamplesWholeBucket(t *testing.T) {
	assert.IsType(t, uniformSampler{}, SamplerForGoal(BodyGoal("KETO")))
}

func TestSamplerSingleItemBucket(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bucket := calorieBucket(250)
	for _, goal := range []BodyGoal{GoalWeightLoss, GoalMuscleGain, GoalMaintenance} {
		picked := SamplerForGoal(goal).Pick(rng, bucket)
		assert.Equal(t, 250.0, picked.Calories)
	}
}

func TestThirdOf(t *testing.T) {
	assert.Equal(t, 1, thirdOf(1))
	assert.Equal(t, 1, thirdOf(2))
	assert.Equal(t, 1, thirdOf(3))
	assert.Equal(t, 1, thirdOf(5))
	assert.Equal(t, 2, thirdOf(6))
	assert.Equal(t, 3, thirdOf(9))
}
