package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal period values.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Goal type values with reconciliation semantics. Other goal types are
// stored as-is but are not part of a reconciliation class.
const (
	GoalTypeCalories         = "calories"
	GoalTypeDailyCalories    = "daily_calories"
	GoalTypeWorkoutFrequency = "workout_frequency"
)

// Goal is a numeric target the user tracks. BestStreak is a monotonic
// maximum: every streak write stores max(incoming, stored), so
// BestStreak >= CurrentStreak always holds. IsCompleted is derived from
// progress at read time and never stored.
type Goal struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	GoalName      string     `gorm:"size:255;not null" json:"goal_name"`
	GoalType      string     `gorm:"size:50;not null" json:"goal_type"`
	TargetValue   float64    `gorm:"not null" json:"target_value"`
	TargetUnit    string     `gorm:"size:50" json:"target_unit"`
	Period        string     `gorm:"size:20;not null" json:"period"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CurrentValue  float64    `json:"current_value"`
	CurrentStreak int        `json:"current_streak"`
	BestStreak    int        `json:"best_streak"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
