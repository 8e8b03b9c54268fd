package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platewise/backend/internal/mealplan"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// FoodService handles catalogue operations
type FoodService struct {
	db *gorm.DB
}

// NewFoodService creates a new FoodService instance
func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// MacroProfileVector builds the similarity-search vector for a food: its
// protein, carb, fat and fiber grams plus calorie density, normalized to a
// 100g basis so foods with different reference portions stay comparable.
func MacroProfileVector(food *models.Food) pgvector.Vector {
	reference := food.ReferencePortionGrams
	if reference <= 0 {
		reference = 100
	}
	scale := float32(100 / reference)
	return pgvector.NewVector([]float32{
		float32(food.ProteinG) * scale,
		float32(food.CarbsG) * scale,
		float32(food.FatG) * scale,
		float32(food.FiberG) * scale,
		float32(food.Calories) * scale / 10,
	})
}

// CreateFood adds a catalogue entry.
func (s *FoodService) CreateFood(ctx context.Context, req *types.CreateFoodRequest) (*models.Food, error) {
	food := &models.Food{
		Name:                  req.Name,
		ImageURL:              req.ImageURL,
		MacroNutrient:         req.MacroNutrient,
		MealType:              req.MealType,
		Calories:              req.Calories,
		ReferencePortionGrams: req.ReferencePortionGrams,
		ProteinG:              req.ProteinG,
		CarbsG:                req.CarbsG,
		FatG:                  req.FatG,
		FiberG:                req.FiberG,
		DietaryTags:           req.DietaryTags,
		Allergens:             req.Allergens,
		SuitableForConditions: req.SuitableForConditions,
	}
	if food.ReferencePortionGrams <= 0 {
		food.ReferencePortionGrams = 100
	}
	food.Profile = MacroProfileVector(food)

	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// CreateFoodsBulk adds several catalogue entries in one transaction.
func (s *FoodService) CreateFoodsBulk(ctx context.Context, reqs []types.CreateFoodRequest) ([]*models.Food, error) {
	foods := make([]*models.Food, 0, len(reqs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		svc := &FoodService{db: tx}
		for i := range reqs {
			food, err := svc.CreateFood(ctx, &reqs[i])
			if err != nil {
				return err
			}
			foods = append(foods, food)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// GetFood retrieves a food by ID
func (s *FoodService) GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// ListFoods lists the catalogue, optionally narrowed by meal type, macro
// category or a dietary tag.
func (s *FoodService) ListFoods(ctx context.Context, mealType, macroNutrient, dietaryTag string) ([]*models.Food, error) {
	query := s.db.WithContext(ctx)
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}
	if macroNutrient != "" {
		query = query.Where("macro_nutrient = ?", macroNutrient)
	}

	var foods []models.Food
	if err := query.Order("name").Find(&foods).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Food, 0, len(foods))
	for i := range foods {
		if dietaryTag != "" && !containsTag(foods[i].DietaryTags, dietaryTag) {
			continue
		}
		result = append(result, &foods[i])
	}
	return result, nil
}

// UpdateFood applies the non-nil fields of req and recomputes the profile
// vector when nutrition changed.
func (s *FoodService) UpdateFood(ctx context.Context, id uuid.UUID, req *types.UpdateFoodRequest) (*models.Food, error) {
	food, err := s.GetFood(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.ImageURL != nil {
		food.ImageURL = *req.ImageURL
	}
	if req.MacroNutrient != nil {
		food.MacroNutrient = *req.MacroNutrient
	}
	if req.MealType != nil {
		food.MealType = *req.MealType
	}
	if req.Calories != nil {
		food.Calories = *req.Calories
	}
	if req.ReferencePortionGrams != nil {
		food.ReferencePortionGrams = *req.ReferencePortionGrams
	}
	if req.ProteinG != nil {
		food.ProteinG = *req.ProteinG
	}
	if req.CarbsG != nil {
		food.CarbsG = *req.CarbsG
	}
	if req.FatG != nil {
		food.FatG = *req.FatG
	}
	if req.FiberG != nil {
		food.FiberG = *req.FiberG
	}
	if req.DietaryTags != nil {
		food.DietaryTags = req.DietaryTags
	}
	if req.Allergens != nil {
		food.Allergens = req.Allergens
	}
	if req.SuitableForConditions != nil {
		food.SuitableForConditions = req.SuitableForConditions
	}
	food.Profile = MacroProfileVector(food)

	if err := s.db.WithContext(ctx).Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// DeleteFood removes a catalogue entry. The delete is hard: the name carries
// a unique index, and a soft-deleted row would block re-adding the food.
func (s *FoodService) DeleteFood(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetFood(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Unscoped().Delete(&models.Food{}, "id = ?", id).Error
}

// SimilarFoods returns up to limit foods ordered by macro-profile distance.
// On postgres the vector index does the work; elsewhere the distance is
// computed in process.
func (s *FoodService) SimilarFoods(ctx context.Context, id uuid.UUID, limit int) ([]*models.Food, error) {
	food, err := s.GetFood(ctx, id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	if s.db.Dialector.Name() == "postgres" {
		var foods []models.Food
		err := s.db.WithContext(ctx).
			Where("id <> ?", id).
			Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "profile <-> ?", Vars: []interface{}{food.Profile}},
			}).
			Limit(limit).
			Find(&foods).Error
		if err != nil {
			return nil, err
		}
		return toPointers(foods), nil
	}

	var foods []models.Food
	if err := s.db.WithContext(ctx).Where("id <> ?", id).Find(&foods).Error; err != nil {
		return nil, err
	}
	target := MacroProfileVector(food).Slice()
	sort.SliceStable(foods, func(i, j int) bool {
		return profileDistance(MacroProfileVector(&foods[i]).Slice(), target) <
			profileDistance(MacroProfileVector(&foods[j]).Slice(), target)
	})
	if len(foods) > limit {
		foods = foods[:limit]
	}
	return toPointers(foods), nil
}

// Catalogue loads every food as the planner's read-only view.
func (s *FoodService) Catalogue(ctx context.Context) ([]mealplan.CatalogueFood, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Find(&foods).Error; err != nil {
		return nil, err
	}
	catalogue := make([]mealplan.CatalogueFood, 0, len(foods))
	for i := range foods {
		catalogue = append(catalogue, foods[i].ToCatalogue())
	}
	return catalogue, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func profileDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		if i >= len(b) {
			break
		}
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func toPointers(foods []models.Food) []*models.Food {
	result := make([]*models.Food, len(foods))
	for i := range foods {
		result[i] = &foods[i]
	}
	return result
}
