package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// Calories per gram of each macronutrient (Atwater factors; fiber per FDA
// labeling convention).
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
	kcalPerGramFiber   = 2
)

// foodResponse is the API view of a catalogue entry, with the per-nutrient
// breakdown expanded into amounts, derived calories and units.
type foodResponse struct {
	*models.Food
	Breakdown types.FoodBreakdown `json:"breakdown"`
}

func newFoodResponse(food *models.Food) foodResponse {
	return foodResponse{
		Food: food,
		Breakdown: types.FoodBreakdown{
			Protein:      types.NutrientBreakdown{Amount: food.ProteinG, Calories: food.ProteinG * kcalPerGramProtein, Unit: "g"},
			Carbohydrate: types.NutrientBreakdown{Amount: food.CarbsG, Calories: food.CarbsG * kcalPerGramCarbs, Unit: "g"},
			Fat:          types.NutrientBreakdown{Amount: food.FatG, Calories: food.FatG * kcalPerGramFat, Unit: "g"},
			Fiber:        types.NutrientBreakdown{Amount: food.FiberG, Calories: food.FiberG * kcalPerGramFiber, Unit: "g"},
		},
	}
}

func newFoodResponses(foods []*models.Food) []foodResponse {
	responses := make([]foodResponse, 0, len(foods))
	for _, f := range foods {
		responses = append(responses, newFoodResponse(f))
	}
	return responses
}

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}

	switch v := value.(type) {
	case uuid.UUID:
		return v, true
	case string:
		id, err := uuid.Parse(v)
		if err == nil {
			return id, true
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id in context"})
	return uuid.Nil, false
}
