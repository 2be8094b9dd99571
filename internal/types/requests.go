package types

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateFoodLogRequest is the body for POST /api/food-logs.
// LoggedDate is YYYY-MM-DD. Macro fields default to zero when absent.
type CreateFoodLogRequest struct {
	LoggedDate  string   `json:"logged_date" binding:"required"`
	MealType    string   `json:"meal_type" binding:"required"`
	FoodName    string   `json:"food_name" binding:"required"`
	Calories    *float64 `json:"calories" binding:"required"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       float64  `json:"fiber"`
	Sugar       float64  `json:"sugar"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `json:"serving_unit"`
	AISummary   string   `json:"ai_summary"`
}

// UpdateFoodLogRequest is the body for PUT/PATCH /api/food-logs/:id.
// Nil fields are left untouched. RegenerateAI asks the server to
// refresh the AI summary from the (possibly updated) food name.
type UpdateFoodLogRequest struct {
	LoggedDate   *string  `json:"logged_date"`
	MealType     *string  `json:"meal_type"`
	FoodName     *string  `json:"food_name"`
	Calories     *float64 `json:"calories"`
	Protein      *float64 `json:"protein"`
	Carbs        *float64 `json:"carbs"`
	Fat          *float64 `json:"fat"`
	Fiber        *float64 `json:"fiber"`
	Sugar        *float64 `json:"sugar"`
	ServingSize  *float64 `json:"serving_size"`
	ServingUnit  *string  `json:"serving_unit"`
	RegenerateAI bool     `json:"regenerate_ai"`
}

// CreateWorkoutRequest is the body for POST /api/workouts.
type CreateWorkoutRequest struct {
	WorkoutName     string  `json:"workout_name"`
	WorkoutDate     string  `json:"workout_date" binding:"required"`
	WorkoutType     string  `json:"workout_type" binding:"required"`
	Duration        *int    `json:"duration" binding:"required"`
	Distance        float64 `json:"distance"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Notes           string  `json:"notes"`
	AISummary       string  `json:"ai_summary"`
	IsAutoGenerated bool    `json:"is_auto_generated"`
}

// UpdateWorkoutRequest is the body for PUT /api/workouts/:id.
type UpdateWorkoutRequest struct {
	WorkoutName    *string  `json:"workout_name"`
	WorkoutDate    *string  `json:"workout_date"`
	WorkoutType    *string  `json:"workout_type"`
	Duration       *int     `json:"duration"`
	Distance       *float64 `json:"distance"`
	CaloriesBurned *float64 `json:"calories_burned"`
	Notes          *string  `json:"notes"`
}

// CreateGoalRequest is the body for POST /api/goals.
type CreateGoalRequest struct {
	GoalName     string   `json:"goal_name" binding:"required"`
	GoalType     string   `json:"goal_type" binding:"required"`
	TargetValue  *float64 `json:"target_value" binding:"required"`
	TargetUnit   string   `json:"target_unit" binding:"required"`
	Period       string   `json:"period" binding:"required"`
	StartDate    string   `json:"start_date" binding:"required"`
	CurrentValue float64  `json:"current_value"`
	Deadline     *string  `json:"deadline"`
	IsActive     *bool    `json:"is_active"`
}

// UpdateGoalProgressRequest is the body for PATCH /api/goals/:id/progress.
type UpdateGoalProgressRequest struct {
	CurrentValue  *float64 `json:"current_value" binding:"required"`
	CurrentStreak *int     `json:"current_streak"`
}

// GoalTargets is the desired-state input and canonical view of the two
// reconciled goal dimensions.
type GoalTargets struct {
	DailyCalories  *float64 `json:"daily_calories,omitempty"`
	WeeklyWorkouts *float64 `json:"weekly_workouts,omitempty"`
}

// SummaryRequest is the body for the AI summary endpoints.
type SummaryRequest struct {
	Text string `json:"text"`
}
