package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/mealplan"
)

// WeekPlanDocument stores a generated or manually-built week plan as JSONB.
type WeekPlanDocument mealplan.WeekPlan

// Value implements the driver.Valuer interface
func (d WeekPlanDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "[]", nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *WeekPlanDocument) Scan(value interface{}) error {
	if value == nil {
		*d = WeekPlanDocument{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported week plan column type %T", value)
	}

	return json.Unmarshal(bytes, d)
}

// MealPlan is a user's stored week plan, one per user.
type MealPlan struct {
	ID             uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID        `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Plan           WeekPlanDocument `gorm:"type:jsonb;not null;default:'[]'" json:"meal_plan"`
	TargetCalories float64          `json:"target_calories"`
	BodyGoal       string           `gorm:"size:20" json:"body_goal"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
