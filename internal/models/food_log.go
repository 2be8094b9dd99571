package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal type values accepted on a food log entry.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the four fixed meal buckets in presentation order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ValidMealType reports whether t is one of the four meal buckets.
func ValidMealType(t string) bool {
	for _, m := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// FoodLog is a single eaten item on a calendar day. LoggedDate is stored
// at midnight UTC; all date filters compare whole days, never timestamps.
type FoodLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	LoggedDate  time.Time `gorm:"not null;index" json:"logged_date"`
	MealType    string    `gorm:"size:20;not null" json:"meal_type"`
	FoodName    string    `gorm:"size:255;not null" json:"food_name"`
	Calories    float64   `gorm:"not null" json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	Sugar       float64   `json:"sugar"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `gorm:"size:50" json:"serving_unit"`
	AISummary   string    `gorm:"type:text" json:"ai_summary"`
}

func (f *FoodLog) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
