package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/mealplan"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Food is one catalogue entry. Calorie and macro values are per reference
// portion (100g unless set otherwise). Profile holds the normalized
// macro-profile vector used for similarity search.
type Food struct {
	ID                    uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	DeletedAt             gorm.DeletedAt   `gorm:"index" json:"-"`
	Name                  string           `gorm:"size:100;not null;uniqueIndex" json:"name"`
	ImageURL              string           `gorm:"size:255" json:"image_url"`
	MacroNutrient         string           `gorm:"size:20;not null" json:"macro_nutrient"`
	MealType              string           `gorm:"size:30;not null" json:"meal_type"`
	Calories              float64          `gorm:"not null" json:"calories"`
	ReferencePortionGrams float64          `gorm:"default:100" json:"reference_portion_grams"`
	ProteinG              float64          `json:"protein_g"`
	CarbsG                float64          `json:"carbs_g"`
	FatG                  float64          `json:"fat_g"`
	FiberG                float64          `json:"fiber_g"`
	DietaryTags           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	Allergens             JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergens"`
	SuitableForConditions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"suitable_for_conditions"`
	Profile               pgvector.Vector  `gorm:"type:vector(5)" json:"-"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// ToCatalogue converts the record into the planner's read-only view.
func (f *Food) ToCatalogue() mealplan.CatalogueFood {
	return mealplan.CatalogueFood{
		ID:                    f.ID,
		Name:                  f.Name,
		ImageURL:              f.ImageURL,
		MacroNutrient:         f.MacroNutrient,
		MealType:              f.MealType,
		Calories:              f.Calories,
		ReferencePortionGrams: f.ReferencePortionGrams,
		Macros: mealplan.MacroBreakdown{
			ProteinG: f.ProteinG,
			CarbsG:   f.CarbsG,
			FatG:     f.FatG,
			FiberG:   f.FiberG,
		},
		DietaryTags:           f.DietaryTags,
		Allergens:             f.Allergens,
		SuitableForConditions: f.SuitableForConditions,
	}
}
