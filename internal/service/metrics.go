package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/mealplan"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// MetricsService records body measurements and the TDEE derived from them.
type MetricsService struct {
	db *gorm.DB
}

// NewMetricsService creates a new MetricsService instance
func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// RecordMetrics stores a new snapshot, computes its TDEE and marks it as the
// user's current metrics.
func (s *MetricsService) RecordMetrics(ctx context.Context, userID uuid.UUID, req *types.RecordMetricsRequest) (*models.UserMetrics, error) {
	tdee := mealplan.TotalDailyExpenditure(req.WeightKg, req.BodyFatPercentage, req.ActivityLevel)

	metrics := &models.UserMetrics{
		UserID:            userID,
		WeightKg:          req.WeightKg,
		BodyFatPercentage: req.BodyFatPercentage,
		ActivityLevel:     req.ActivityLevel,
		CalculatedTDEE:    tdee,
		IsCurrent:         true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserMetrics{}).
			Where("user_id = ? AND is_current = ?", userID, true).
			Update("is_current", false).Error; err != nil {
			return err
		}
		return tx.Create(metrics).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Recorded metrics for user %s: TDEE %.2f kcal/day (%.1fkg, %.1f%% bf, %s)",
		userID, tdee, req.WeightKg, req.BodyFatPercentage, req.ActivityLevel)
	return metrics, nil
}

// CurrentMetrics returns the user's current snapshot.
func (s *MetricsService) CurrentMetrics(ctx context.Context, userID uuid.UUID) (*models.UserMetrics, error) {
	var metrics models.UserMetrics
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_current = ?", userID, true).
		First(&metrics).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNoUserMetrics
		}
		return nil, err
	}
	return &metrics, nil
}

// History lists a user's snapshots, newest first.
func (s *MetricsService) History(ctx context.Context, userID uuid.UUID) ([]*models.UserMetrics, error) {
	var history []models.UserMetrics
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	result := make([]*models.UserMetrics, len(history))
	for i := range history {
		result[i] = &history[i]
	}
	return result, nil
}
