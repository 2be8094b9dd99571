package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout is one exercise session. WorkoutType is a free-form category
// (cardio, strength, flexibility, ...), not an enum.
type Workout struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkoutName     string    `gorm:"size:255" json:"workout_name"`
	WorkoutDate     time.Time `gorm:"not null;index" json:"workout_date"`
	WorkoutType     string    `gorm:"size:50;not null" json:"workout_type"`
	Duration        int       `gorm:"not null" json:"duration"`
	Distance        float64   `json:"distance"`
	CaloriesBurned  float64   `json:"calories_burned"`
	Notes           string    `gorm:"type:text" json:"notes"`
	AISummary       string    `gorm:"type:text" json:"ai_summary"`
	IsAutoGenerated bool      `json:"is_auto_generated"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
