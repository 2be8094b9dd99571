package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/testhelpers"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedFoodLog(t *testing.T, db *gorm.DB, userID uuid.UUID, date time.Time, meal string, calories, protein, carbs, fat float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.FoodLog{
		UserID:     userID,
		LoggedDate: date,
		MealType:   meal,
		FoodName:   "test food",
		Calories:   calories,
		Protein:    protein,
		Carbs:      carbs,
		Fat:        fat,
	}).Error)
}

func seedWorkout(t *testing.T, db *gorm.DB, userID uuid.UUID, date time.Time, workoutType string, duration int, calories float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Workout{
		UserID:         userID,
		WorkoutName:    "test session",
		WorkoutDate:    date,
		WorkoutType:    workoutType,
		Duration:       duration,
		CaloriesBurned: calories,
	}).Error)
}

func TestDailyNutritionStats(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)
	ctx := context.Background()

	target := day(2025, 3, 14)
	seedFoodLog(t, db, user.ID, target, models.MealBreakfast, 120, 10, 20, 3)
	seedFoodLog(t, db, user.ID, target, models.MealLunch, 210, 25, 15, 8)
	// A different day and a different user must not leak in.
	seedFoodLog(t, db, user.ID, day(2025, 3, 15), models.MealDinner, 999, 0, 0, 0)
	other := testhelpers.CreateTestUser(t, db)
	seedFoodLog(t, db, other.ID, target, models.MealBreakfast, 500, 0, 0, 0)

	stats, err := svc.DailyNutritionStats(ctx, user.ID, target)
	require.NoError(t, err)
	assert.Equal(t, 330.0, stats.TotalCalories)
	assert.Equal(t, 35.0, stats.TotalProtein)
	assert.Equal(t, 35.0, stats.TotalCarbs)
	assert.Equal(t, 11.0, stats.TotalFat)
	assert.Equal(t, int64(2), stats.MealCount)
	assert.Equal(t, target, stats.Date)
}

func TestDailyNutritionStatsEmptyDay(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	stats, err := svc.DailyNutritionStats(context.Background(), user.ID, day(2025, 3, 14))
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCalories)
	assert.Zero(t, stats.TotalProtein)
	assert.Zero(t, stats.MealCount)
}

func TestDailyMealBreakdown(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	target := day(2025, 3, 14)
	seedFoodLog(t, db, user.ID, target, models.MealBreakfast, 120, 10, 20, 3)
	seedFoodLog(t, db, user.ID, target, models.MealBreakfast, 80, 2, 15, 1)
	seedFoodLog(t, db, user.ID, target, models.MealDinner, 450, 30, 40, 12)

	breakdown, err := svc.DailyMealBreakdown(context.Background(), user.ID, target)
	require.NoError(t, err)

	assert.Equal(t, 200.0, breakdown.Breakfast.Calories)
	assert.Equal(t, 12.0, breakdown.Breakfast.Protein)
	assert.Equal(t, 450.0, breakdown.Dinner.Calories)
	// Meal types with no entries are present and zero-filled.
	assert.Zero(t, breakdown.Lunch.Calories)
	assert.Zero(t, breakdown.Snack.Calories)
}

func TestNutritionTrendsSkipsEmptyDays(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	seedFoodLog(t, db, user.ID, day(2025, 3, 10), models.MealBreakfast, 100, 5, 10, 2)
	seedFoodLog(t, db, user.ID, day(2025, 3, 10), models.MealLunch, 300, 20, 30, 10)
	seedFoodLog(t, db, user.ID, day(2025, 3, 12), models.MealDinner, 500, 35, 45, 15)
	// Outside the queried range.
	seedFoodLog(t, db, user.ID, day(2025, 3, 20), models.MealSnack, 50, 1, 8, 2)

	trends, err := svc.NutritionTrends(context.Background(), user.ID, day(2025, 3, 9), day(2025, 3, 15))
	require.NoError(t, err)
	require.Len(t, trends, 2)

	assert.Equal(t, day(2025, 3, 10), trends[0].Date)
	assert.Equal(t, 400.0, trends[0].TotalCalories)
	assert.Equal(t, int64(2), trends[0].MealCount)
	assert.Equal(t, day(2025, 3, 12), trends[1].Date)
	assert.Equal(t, 500.0, trends[1].TotalCalories)
}

func TestWeeklyWorkoutStats(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	start, end := day(2025, 3, 10), day(2025, 3, 16)
	seedWorkout(t, db, user.ID, day(2025, 3, 10), "cardio", 30, 250)
	seedWorkout(t, db, user.ID, day(2025, 3, 12), "strength", 45, 180)
	seedWorkout(t, db, user.ID, day(2025, 3, 12), "cardio", 20, 150)
	// Next week, excluded.
	seedWorkout(t, db, user.ID, day(2025, 3, 17), "cardio", 60, 400)

	stats, err := svc.WeeklyWorkoutStats(context.Background(), user.ID, start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalWorkouts)
	assert.Equal(t, int64(95), stats.TotalDuration)
	assert.Equal(t, 580.0, stats.TotalCaloriesBurned)
	// 95/3 = 31.67, rounded half-up.
	assert.Equal(t, int64(32), stats.AverageDuration)

	require.Len(t, stats.WorkoutTypeBreakdown, 2)
	assert.Equal(t, "cardio", stats.WorkoutTypeBreakdown[0].Type)
	assert.Equal(t, int64(2), stats.WorkoutTypeBreakdown[0].Count)
	assert.Equal(t, int64(50), stats.WorkoutTypeBreakdown[0].TotalDuration)
	assert.Equal(t, "strength", stats.WorkoutTypeBreakdown[1].Type)
}

func TestWeeklyWorkoutStatsEmptyWeek(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	stats, err := svc.WeeklyWorkoutStats(context.Background(), user.ID, day(2025, 3, 10), day(2025, 3, 16))
	require.NoError(t, err)

	assert.Zero(t, stats.TotalWorkouts)
	assert.Zero(t, stats.AverageDuration)
	assert.NotNil(t, stats.WorkoutTypeBreakdown)
	assert.Empty(t, stats.WorkoutTypeBreakdown)
}

func TestWorkoutTrendsBucketsByWeek(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	// Week of Mon 2025-03-10: two workouts.
	seedWorkout(t, db, user.ID, day(2025, 3, 11), "cardio", 30, 200)
	seedWorkout(t, db, user.ID, day(2025, 3, 16), "strength", 45, 150) // Sunday, same ISO week
	// Week of Mon 2025-03-24: one workout. The week between has none.
	seedWorkout(t, db, user.ID, day(2025, 3, 25), "cardio", 60, 500)

	trends, err := svc.WorkoutTrends(context.Background(), user.ID, day(2025, 3, 1), day(2025, 3, 31))
	require.NoError(t, err)
	require.Len(t, trends, 2)

	assert.Equal(t, day(2025, 3, 10), trends[0].WeekStart)
	assert.Equal(t, int64(2), trends[0].WorkoutCount)
	assert.Equal(t, int64(75), trends[0].TotalDuration)
	assert.Equal(t, 350.0, trends[0].TotalCalories)
	assert.Equal(t, int64(38), trends[0].AvgDuration) // 37.5 rounds up

	assert.Equal(t, day(2025, 3, 24), trends[1].WeekStart)
	assert.Equal(t, int64(1), trends[1].WorkoutCount)
}

func TestGoalProgress(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)
	ctx := context.Background()

	goal := models.Goal{
		UserID:       user.ID,
		GoalName:     "Daily Calorie Target",
		GoalType:     models.GoalTypeCalories,
		TargetValue:  2200,
		Period:       models.PeriodDaily,
		StartDate:    day(2025, 3, 1),
		CurrentValue: 830,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&goal).Error)

	progress, err := svc.GoalProgress(ctx, user.ID, goal.ID)
	require.NoError(t, err)
	// 830/2200 = 37.7%, rounded half-up.
	assert.Equal(t, int64(38), progress.ProgressPercent)
	assert.False(t, progress.IsCompleted)
	assert.Equal(t, 1370.0, progress.Remaining)
}

func TestGoalProgressZeroTarget(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	goal := models.Goal{
		UserID:       user.ID,
		GoalName:     "placeholder",
		GoalType:     "custom",
		TargetValue:  0,
		Period:       models.PeriodDaily,
		StartDate:    day(2025, 3, 1),
		CurrentValue: 50,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&goal).Error)

	progress, err := svc.GoalProgress(context.Background(), user.ID, goal.ID)
	require.NoError(t, err)
	assert.Zero(t, progress.ProgressPercent)
	assert.False(t, progress.IsCompleted)
	assert.Zero(t, progress.Remaining)
}

func TestGoalProgressOverTarget(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	goal := models.Goal{
		UserID:       user.ID,
		GoalName:     "Weekly Workout Target",
		GoalType:     models.GoalTypeWorkoutFrequency,
		TargetValue:  3,
		Period:       models.PeriodWeekly,
		StartDate:    day(2025, 3, 1),
		CurrentValue: 5,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&goal).Error)

	progress, err := svc.GoalProgress(context.Background(), user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(167), progress.ProgressPercent)
	assert.True(t, progress.IsCompleted)
	assert.Zero(t, progress.Remaining)
}

func TestGoalProgressNotFound(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	other := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	goal := models.Goal{
		UserID:      other.ID,
		GoalName:    "not yours",
		GoalType:    "custom",
		TargetValue: 10,
		Period:      models.PeriodDaily,
		StartDate:   day(2025, 3, 1),
		IsActive:    true,
	}
	require.NoError(t, db.Create(&goal).Error)

	_, err := svc.GoalProgress(context.Background(), user.ID, goal.ID)
	assert.Error(t, err)
}

func TestDashboardSummary(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewStatsService(db)

	// 2025-03-14 is a Friday; the dashboard week runs Sunday 03-09
	// through Saturday 03-15.
	target := day(2025, 3, 14)
	seedFoodLog(t, db, user.ID, target, models.MealBreakfast, 320, 12, 40, 9)
	seedWorkout(t, db, user.ID, day(2025, 3, 9), "cardio", 30, 200)
	seedWorkout(t, db, user.ID, day(2025, 3, 15), "strength", 40, 150)
	seedWorkout(t, db, user.ID, day(2025, 3, 8), "cardio", 60, 400) // Saturday before, excluded

	goal := models.Goal{
		UserID:       user.ID,
		GoalName:     "Daily Calorie Target",
		GoalType:     models.GoalTypeCalories,
		TargetValue:  2000,
		Period:       models.PeriodDaily,
		StartDate:    day(2025, 3, 1),
		CurrentValue: 320,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&goal).Error)

	summary, err := svc.DashboardSummary(context.Background(), user.ID, target)
	require.NoError(t, err)

	assert.Equal(t, target, summary.Date)
	assert.Equal(t, 320.0, summary.Nutrition.Daily.TotalCalories)
	assert.Equal(t, 320.0, summary.Nutrition.MealBreakdown.Breakfast.Calories)
	assert.Equal(t, int64(2), summary.Workouts.TotalWorkouts)
	assert.Equal(t, day(2025, 3, 9), summary.Workouts.WeekStart)
	require.Len(t, summary.Goals, 1)
	assert.Equal(t, int64(16), summary.Goals[0].ProgressPercent)
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{2.49, 2},
		{-0.4, 0},
		{37.7, 38},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, roundHalfUp(c.in), "input %v", c.in)
	}
}
