package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/types"
)

// StatsService computes read-only derived views over food logs,
// workouts and goals. Nothing here mutates state.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// roundHalfUp rounds to the nearest integer, halves up. NaN collapses
// to 0 so a degenerate aggregate can never leak into a response.
func roundHalfUp(x float64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	return int64(math.Floor(x + 0.5))
}

// DailyNutritionStats sums every nutrition field and counts rows for
// one user and calendar day. An empty day yields an all-zero record.
func (s *StatsService) DailyNutritionStats(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DailyNutritionStats, error) {
	day := DayOf(date)

	var row struct {
		TotalCalories float64
		TotalProtein  float64
		TotalCarbs    float64
		TotalFat      float64
		TotalFiber    float64
		TotalSugar    float64
		MealCount     int64
	}
	err := s.db.WithContext(ctx).Model(&models.FoodLog{}).
		Select(`COALESCE(SUM(calories), 0) AS total_calories,
			COALESCE(SUM(protein), 0) AS total_protein,
			COALESCE(SUM(carbs), 0) AS total_carbs,
			COALESCE(SUM(fat), 0) AS total_fat,
			COALESCE(SUM(fiber), 0) AS total_fiber,
			COALESCE(SUM(sugar), 0) AS total_sugar,
			COUNT(id) AS meal_count`).
		Where("user_id = ? AND logged_date = ?", userID, day).
		Scan(&row).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &types.DailyNutritionStats{
		TotalCalories: row.TotalCalories,
		TotalProtein:  row.TotalProtein,
		TotalCarbs:    row.TotalCarbs,
		TotalFat:      row.TotalFat,
		TotalFiber:    row.TotalFiber,
		TotalSugar:    row.TotalSugar,
		MealCount:     row.MealCount,
		Date:          day,
	}, nil
}

// DailyMealBreakdown aggregates one sub-total per fixed meal type.
// All four keys are always present, zero-filled when nothing matched.
func (s *StatsService) DailyMealBreakdown(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DailyMealBreakdown, error) {
	day := DayOf(date)

	buckets := map[string]*types.MealNutrition{}
	for _, mealType := range models.MealTypes {
		var row struct {
			Calories float64
			Protein  float64
			Carbs    float64
			Fat      float64
		}
		err := s.db.WithContext(ctx).Model(&models.FoodLog{}).
			Select(`COALESCE(SUM(calories), 0) AS calories,
				COALESCE(SUM(protein), 0) AS protein,
				COALESCE(SUM(carbs), 0) AS carbs,
				COALESCE(SUM(fat), 0) AS fat`).
			Where("user_id = ? AND logged_date = ? AND meal_type = ?", userID, day, mealType).
			Scan(&row).Error
		if err != nil {
			return nil, apperror.Internal(err)
		}
		buckets[mealType] = &types.MealNutrition{
			Calories: row.Calories,
			Protein:  row.Protein,
			Carbs:    row.Carbs,
			Fat:      row.Fat,
		}
	}

	return &types.DailyMealBreakdown{
		Breakfast: *buckets[models.MealBreakfast],
		Lunch:     *buckets[models.MealLunch],
		Dinner:    *buckets[models.MealDinner],
		Snack:     *buckets[models.MealSnack],
	}, nil
}

// NutritionTrends returns one row per logged day within the inclusive
// range, ascending. Days without logs are gaps, not zero rows.
func (s *StatsService) NutritionTrends(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]types.NutritionTrendDay, error) {
	var rows []struct {
		LoggedDate    time.Time
		TotalCalories float64
		TotalProtein  float64
		TotalCarbs    float64
		TotalFat      float64
		MealCount     int64
	}
	err := s.db.WithContext(ctx).Model(&models.FoodLog{}).
		Select(`logged_date,
			COALESCE(SUM(calories), 0) AS total_calories,
			COALESCE(SUM(protein), 0) AS total_protein,
			COALESCE(SUM(carbs), 0) AS total_carbs,
			COALESCE(SUM(fat), 0) AS total_fat,
			COUNT(id) AS meal_count`).
		Where("user_id = ? AND logged_date >= ? AND logged_date <= ?", userID, DayOf(start), DayOf(end)).
		Group("logged_date").
		Order("logged_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	trends := make([]types.NutritionTrendDay, 0, len(rows))
	for _, r := range rows {
		trends = append(trends, types.NutritionTrendDay{
			Date:          DayOf(r.LoggedDate),
			TotalCalories: r.TotalCalories,
			TotalProtein:  r.TotalProtein,
			TotalCarbs:    r.TotalCarbs,
			TotalFat:      r.TotalFat,
			MealCount:     r.MealCount,
		})
	}
	return trends, nil
}

// WeeklyWorkoutStats aggregates workouts over [start, end] inclusive.
// AverageDuration is 0 for an empty range, never a division by zero.
func (s *StatsService) WeeklyWorkoutStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*types.WeeklyWorkoutStats, error) {
	weekStart, weekEnd := DayOf(start), DayOf(end)

	var totals struct {
		TotalWorkouts       int64
		TotalDuration       int64
		TotalDistance       float64
		TotalCaloriesBurned float64
	}
	err := s.db.WithContext(ctx).Model(&models.Workout{}).
		Select(`COUNT(id) AS total_workouts,
			COALESCE(SUM(duration), 0) AS total_duration,
			COALESCE(SUM(distance), 0) AS total_distance,
			COALESCE(SUM(calories_burned), 0) AS total_calories_burned`).
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, weekStart, weekEnd).
		Scan(&totals).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var breakdown []types.WorkoutTypeBreakdown
	err = s.db.WithContext(ctx).Model(&models.Workout{}).
		Select(`workout_type AS type,
			COUNT(id) AS count,
			COALESCE(SUM(duration), 0) AS total_duration`).
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, weekStart, weekEnd).
		Group("workout_type").
		Order("workout_type ASC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if breakdown == nil {
		breakdown = []types.WorkoutTypeBreakdown{}
	}

	var avg int64
	if totals.TotalWorkouts > 0 {
		avg = roundHalfUp(float64(totals.TotalDuration) / float64(totals.TotalWorkouts))
	}

	return &types.WeeklyWorkoutStats{
		TotalWorkouts:        totals.TotalWorkouts,
		TotalDuration:        totals.TotalDuration,
		TotalDistance:        totals.TotalDistance,
		TotalCaloriesBurned:  totals.TotalCaloriesBurned,
		AverageDuration:      avg,
		WorkoutTypeBreakdown: breakdown,
		WeekStart:            weekStart,
		WeekEnd:              weekEnd,
	}, nil
}

// WorkoutTrends buckets workouts into ISO weeks (Monday start) and
// returns one row per week with at least one workout, ascending.
// Bucketing happens here rather than in SQL so the same query serves
// PostgreSQL and sqlite; the range filter stays parameterized.
func (s *StatsService) WorkoutTrends(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]types.WorkoutTrendWeek, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Select("workout_date", "duration", "calories_burned").
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, DayOf(start), DayOf(end)).
		Order("workout_date ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	type weekAcc struct {
		count    int64
		duration int64
		calories float64
	}
	acc := map[time.Time]*weekAcc{}
	var order []time.Time
	for _, w := range workouts {
		ws := WeekStart(w.WorkoutDate)
		a, ok := acc[ws]
		if !ok {
			a = &weekAcc{}
			acc[ws] = a
			order = append(order, ws)
		}
		a.count++
		a.duration += int64(w.Duration)
		a.calories += w.CaloriesBurned
	}

	trends := make([]types.WorkoutTrendWeek, 0, len(order))
	for _, ws := range order {
		a := acc[ws]
		var avg int64
		if a.count > 0 {
			avg = roundHalfUp(float64(a.duration) / float64(a.count))
		}
		trends = append(trends, types.WorkoutTrendWeek{
			WeekStart:     ws,
			WorkoutCount:  a.count,
			TotalDuration: a.duration,
			TotalCalories: a.calories,
			AvgDuration:   avg,
		})
	}
	return trends, nil
}

// GoalProgress returns an owned goal decorated with derived progress.
func (s *StatsService) GoalProgress(ctx context.Context, userID, goalID uuid.UUID) (*types.GoalProgress, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal, "id = ?", goalID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperror.NotFound("goal not found")
		}
		return nil, apperror.Internal(err)
	}

	progress := decorateGoal(&goal)
	return &progress, nil
}

// AllGoalsWithProgress returns every active goal decorated with
// progress, newest first.
func (s *StatsService) AllGoalsWithProgress(ctx context.Context, userID uuid.UUID) ([]types.GoalProgress, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]types.GoalProgress, 0, len(goals))
	for i := range goals {
		out = append(out, decorateGoal(&goals[i]))
	}
	return out, nil
}

// DashboardSummary combines the daily nutrition view, the current
// week's workout stats (Sunday-start, matching the dashboard UI) and
// all goal progress into one payload.
func (s *StatsService) DashboardSummary(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DashboardSummary, error) {
	day := DayOf(date)
	weekStart := day.AddDate(0, 0, -int(day.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	daily, err := s.DailyNutritionStats(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.DailyMealBreakdown(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	workouts, err := s.WeeklyWorkoutStats(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	goals, err := s.AllGoalsWithProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &types.DashboardSummary{Date: day, Workouts: *workouts, Goals: goals}
	summary.Nutrition.Daily = *daily
	summary.Nutrition.MealBreakdown = *breakdown
	return summary, nil
}

// decorateGoal derives progressPercent, isCompleted and remaining.
// A zero target yields 0% and remaining 0; remaining is clamped at 0
// when progress exceeds the target.
func decorateGoal(goal *models.Goal) types.GoalProgress {
	var percent int64
	if goal.TargetValue > 0 {
		percent = roundHalfUp(goal.CurrentValue / goal.TargetValue * 100)
	}

	remaining := goal.TargetValue - goal.CurrentValue
	if remaining < 0 {
		remaining = 0
	}

	return types.GoalProgress{
		ID:              goal.ID,
		UserID:          goal.UserID,
		GoalName:        goal.GoalName,
		GoalType:        goal.GoalType,
		TargetValue:     goal.TargetValue,
		TargetUnit:      goal.TargetUnit,
		Period:          goal.Period,
		StartDate:       goal.StartDate,
		Deadline:        goal.Deadline,
		CurrentValue:    goal.CurrentValue,
		CurrentStreak:   goal.CurrentStreak,
		BestStreak:      goal.BestStreak,
		IsActive:        goal.IsActive,
		CreatedAt:       goal.CreatedAt,
		UpdatedAt:       goal.UpdatedAt,
		ProgressPercent: percent,
		IsCompleted:     percent >= 100,
		Remaining:       remaining,
	}
}
