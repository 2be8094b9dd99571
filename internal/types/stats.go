package types

import (
	"time"

	"github.com/google/uuid"
)

// DailyNutritionStats sums every nutrition field for one calendar day.
// Empty days yield an all-zero record, never an error.
type DailyNutritionStats struct {
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	TotalFiber    float64   `json:"total_fiber"`
	TotalSugar    float64   `json:"total_sugar"`
	MealCount     int64     `json:"meal_count"`
	Date          time.Time `json:"date"`
}

// MealNutrition is one meal-type bucket of a daily breakdown.
type MealNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyMealBreakdown always carries all four meal buckets, zero-filled
// when no rows matched.
type DailyMealBreakdown struct {
	Breakfast MealNutrition `json:"breakfast"`
	Lunch     MealNutrition `json:"lunch"`
	Dinner    MealNutrition `json:"dinner"`
	Snack     MealNutrition `json:"snack"`
}

// NutritionTrendDay is one logged day within a trend range. Days with
// no logs are omitted from the sequence rather than zero-filled.
type NutritionTrendDay struct {
	Date          time.Time `json:"date"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	MealCount     int64     `json:"meal_count"`
}

// WorkoutTypeBreakdown is the per-type slice of a weekly summary.
type WorkoutTypeBreakdown struct {
	Type          string `json:"type"`
	Count         int64  `json:"count"`
	TotalDuration int64  `json:"total_duration"`
}

// WeeklyWorkoutStats aggregates workouts over an inclusive date range.
type WeeklyWorkoutStats struct {
	TotalWorkouts        int64                  `json:"total_workouts"`
	TotalDuration        int64                  `json:"total_duration"`
	TotalDistance        float64                `json:"total_distance"`
	TotalCaloriesBurned  float64                `json:"total_calories_burned"`
	AverageDuration      int64                  `json:"average_duration"`
	WorkoutTypeBreakdown []WorkoutTypeBreakdown `json:"workout_type_breakdown"`
	WeekStart            time.Time              `json:"week_start"`
	WeekEnd              time.Time              `json:"week_end"`
}

// WorkoutTrendWeek is one ISO week (Monday start) with at least one
// workout in a trend range.
type WorkoutTrendWeek struct {
	WeekStart     time.Time `json:"week_start"`
	WorkoutCount  int64     `json:"workout_count"`
	TotalDuration int64     `json:"total_duration"`
	TotalCalories float64   `json:"total_calories"`
	AvgDuration   int64     `json:"avg_duration"`
}

// GoalProgress decorates a goal with derived progress figures.
type GoalProgress struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	GoalName        string     `json:"goal_name"`
	GoalType        string     `json:"goal_type"`
	TargetValue     float64    `json:"target_value"`
	TargetUnit      string     `json:"target_unit"`
	Period          string     `json:"period"`
	StartDate       time.Time  `json:"start_date"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	CurrentValue    float64    `json:"current_value"`
	CurrentStreak   int        `json:"current_streak"`
	BestStreak      int        `json:"best_streak"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ProgressPercent int64      `json:"progress_percent"`
	IsCompleted     bool       `json:"is_completed"`
	Remaining       float64    `json:"remaining"`
}

// DashboardSummary is the combined view for the dashboard endpoint.
type DashboardSummary struct {
	Date      time.Time `json:"date"`
	Nutrition struct {
		Daily         DailyNutritionStats `json:"daily"`
		MealBreakdown DailyMealBreakdown  `json:"meal_breakdown"`
	} `json:"nutrition"`
	Workouts WeeklyWorkoutStats `json:"workouts"`
	Goals    []GoalProgress     `json:"goals"`
}
