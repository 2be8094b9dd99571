package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/food-logs", map[string]interface{}{
		"logged_date": "2025-03-14",
		"meal_type":   "breakfast",
		"food_name":   "toast",
		"calories":    320,
	}, env.token)
	require.Equal(t, http.StatusCreated, w.Code)

	createWorkout(t, env, "2025-03-12", "cardio", 30)
	createGoalViaAPI(t, env, "calories", "daily", 2000)

	w = env.get(t, "/api/dashboard/summary?date=2025-03-14")
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Nutrition struct {
			Daily struct {
				TotalCalories float64 `json:"total_calories"`
			} `json:"daily"`
			MealBreakdown struct {
				Breakfast struct {
					Calories float64 `json:"calories"`
				} `json:"breakfast"`
			} `json:"meal_breakdown"`
		} `json:"nutrition"`
		Workouts struct {
			TotalWorkouts int64 `json:"total_workouts"`
		} `json:"workouts"`
		Goals []map[string]interface{} `json:"goals"`
	}
	decodeJSON(t, w, &summary)
	assert.Equal(t, 320.0, summary.Nutrition.Daily.TotalCalories)
	assert.Equal(t, 320.0, summary.Nutrition.MealBreakdown.Breakfast.Calories)
	// 2025-03-12 falls inside the Sunday-start week of 2025-03-14.
	assert.Equal(t, int64(1), summary.Workouts.TotalWorkouts)
	assert.Len(t, summary.Goals, 1)
}

func TestDashboardSummaryValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/api/dashboard/summary?date=14-03-2025")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/dashboard/summary", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardSummaryDefaultsToToday(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/api/dashboard/summary")
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Date string `json:"date"`
	}
	decodeJSON(t, w, &summary)
	assert.NotEmpty(t, summary.Date)
}
