package service

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/mealplan"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

const (
	minCalorieTarget = 1200
	maxCalorieTarget = 5000
)

// MealPlanService coordinates plan generation: it resolves the calorie
// target, filters the catalogue and runs the allocation engine, then stores
// or returns the result.
type MealPlanService struct {
	db      *gorm.DB
	foods   *FoodService
	metrics *MetricsService
	newRand func() *rand.Rand
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB, foods *FoodService, metrics *MetricsService) *MealPlanService {
	return &MealPlanService{
		db:      db,
		foods:   foods,
		metrics: metrics,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SuggestPlanResult is the outcome of a generation run. NoEligibleFoods
// marks the non-error case where the filtered catalogue was empty.
type SuggestPlanResult struct {
	Plan            mealplan.WeekPlan `json:"meal_plan"`
	TargetCalories  float64           `json:"target_calories"`
	CalculatedTDEE  *float64          `json:"calculated_tdee,omitempty"`
	NoEligibleFoods bool              `json:"-"`
}

// SuggestPlan generates a week plan for the user's preferences. The calorie
// target is either the supplied override or the stored TDEE adjusted for the
// body goal; either way it must land in the health-safety bounds.
func (s *MealPlanService) SuggestPlan(ctx context.Context, userID uuid.UUID, req *types.SuggestPlanRequest) (*SuggestPlanResult, error) {
	goal, ok := mealplan.ParseBodyGoal(req.BodyGoal)
	if !ok {
		return nil, ErrInvalidBodyGoal
	}

	var calculatedTDEE *float64
	var target float64

	if req.UseCalculatedTDEE {
		metrics, err := s.metrics.CurrentMetrics(ctx, userID)
		if err != nil {
			return nil, err
		}
		calculatedTDEE = &metrics.CalculatedTDEE
		target = mealplan.AdjustForGoal(metrics.CalculatedTDEE, goal)
		log.Printf("Using calculated TDEE %.0f kcal/day, adjusted to %.0f for %s",
			metrics.CalculatedTDEE, target, goal)
	} else {
		if req.DailyCalorieTarget == nil {
			return nil, ErrCalorieTargetRequired
		}
		target = *req.DailyCalorieTarget
		log.Printf("Using manual calorie target: %.0f kcal/day", target)
	}

	if target < minCalorieTarget {
		return nil, ErrCalorieTargetTooLow
	}
	if target > maxCalorieTarget {
		return nil, ErrCalorieTargetTooHigh
	}

	catalogue, err := s.foods.Catalogue(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogue) == 0 {
		return nil, ErrEmptyCatalogue
	}

	eligible := mealplan.FilterCatalogue(catalogue,
		req.DietaryRestrictions, req.Allergies, req.MedicalConditions)
	if len(eligible) == 0 {
		return &SuggestPlanResult{
			TargetCalories:  target,
			CalculatedTDEE:  calculatedTDEE,
			NoEligibleFoods: true,
		}, nil
	}
	log.Printf("After dietary filtering: %d of %d foods available", len(eligible), len(catalogue))

	engine := mealplan.NewEngine(s.newRand())
	plan := engine.GenerateWeek(eligible, target, goal)

	return &SuggestPlanResult{
		Plan:           plan,
		TargetCalories: target,
		CalculatedTDEE: calculatedTDEE,
	}, nil
}

// CreatePlan stores a week plan for a user. Each user keeps one plan.
func (s *MealPlanService) CreatePlan(ctx context.Context, userID uuid.UUID, plan mealplan.WeekPlan, targetCalories float64, bodyGoal string) (*models.MealPlan, error) {
	var existing models.MealPlan
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrPlanExists
	}

	record := &models.MealPlan{
		UserID:         userID,
		Plan:           models.WeekPlanDocument(plan),
		TargetCalories: targetCalories,
		BodyGoal:       bodyGoal,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// GetPlan retrieves the user's stored plan.
func (s *MealPlanService) GetPlan(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error) {
	var record models.MealPlan
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &record, nil
}

// UpdatePlan replaces the user's stored plan contents.
func (s *MealPlanService) UpdatePlan(ctx context.Context, userID uuid.UUID, plan mealplan.WeekPlan, targetCalories float64, bodyGoal string) (*models.MealPlan, error) {
	record, err := s.GetPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	record.Plan = models.WeekPlanDocument(plan)
	record.TargetCalories = targetCalories
	record.BodyGoal = bodyGoal
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// DeletePlan removes the user's stored plan. The delete is hard so that the
// unique index on user_id does not block saving a fresh plan afterwards.
func (s *MealPlanService) DeletePlan(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.GetPlan(ctx, userID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Unscoped().Delete(&models.MealPlan{}, "user_id = ?", userID).Error
}
