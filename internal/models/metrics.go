package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserMetrics is one body-measurement snapshot. CalculatedTDEE is computed
// when the snapshot is recorded; the latest snapshot per user carries
// IsCurrent.
type UserMetrics struct {
	ID                uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	WeightKg          float64        `gorm:"not null" json:"weight_kg"`
	BodyFatPercentage float64        `gorm:"not null" json:"body_fat_percentage"`
	ActivityLevel     string         `gorm:"size:30;not null" json:"activity_level"`
	CalculatedTDEE    float64        `json:"calculated_tdee"`
	IsCurrent         bool           `gorm:"not null;default:false;index" json:"is_current"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *UserMetrics) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
