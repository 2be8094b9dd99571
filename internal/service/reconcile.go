package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/types"
)

// ReconcileService keeps at most one canonical active goal per target
// dimension (daily calories, weekly workouts) in sync with a desired
// target state.
//
// The delete-then-create sequence is not atomic: two concurrent
// reconciliations for the same user can both observe the same stale
// canonical goal and both replace it. The API provides no mutual
// exclusion for that case.
type ReconcileService struct {
	db *gorm.DB
}

func NewReconcileService(db *gorm.DB) *ReconcileService {
	return &ReconcileService{db: db}
}

func isDailyCalories(g *models.Goal) bool {
	return (g.GoalType == models.GoalTypeDailyCalories || g.GoalType == models.GoalTypeCalories) &&
		g.Period == models.PeriodDaily
}

func isWeeklyWorkouts(g *models.Goal) bool {
	return g.GoalType == models.GoalTypeWorkoutFrequency && g.Period == models.PeriodWeekly
}

// Targets reads the canonical target view: the first active goal of
// each class, projected onto its target value.
func (s *ReconcileService) Targets(ctx context.Context, userID uuid.UUID) (*types.GoalTargets, error) {
	goals, err := s.activeGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return classify(goals), nil
}

// Reconcile makes the stored goals match the requested targets.
//
// Per requested dimension: absent canonical goal -> create; differing
// target -> delete the stale goal and create a fresh one with progress
// reset to zero (replace, not patch); matching target -> no-op. All
// deletes complete before any create so a failure can never leave two
// canonical goals of one class.
func (s *ReconcileService) Reconcile(ctx context.Context, userID uuid.UUID, input types.GoalTargets) (*types.GoalTargets, error) {
	goals, err := s.activeGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	var daily, weekly *models.Goal
	for i := range goals {
		g := &goals[i]
		if daily == nil && isDailyCalories(g) {
			daily = g
		}
		if weekly == nil && isWeeklyWorkouts(g) {
			weekly = g
		}
	}

	// Phase 1: delete stale canonical goals.
	var toDelete []uuid.UUID
	if input.DailyCalories != nil && daily != nil && daily.TargetValue != *input.DailyCalories {
		toDelete = append(toDelete, daily.ID)
	}
	if input.WeeklyWorkouts != nil && weekly != nil && weekly.TargetValue != *input.WeeklyWorkouts {
		toDelete = append(toDelete, weekly.ID)
	}
	for _, id := range toDelete {
		res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Goal{}, "id = ?", id)
		if res.Error != nil {
			return nil, apperror.Internal(res.Error)
		}
	}

	// Phase 2: create missing or replaced goals, progress reset to zero.
	today := DayOf(time.Now())
	if input.DailyCalories != nil && (daily == nil || daily.TargetValue != *input.DailyCalories) {
		goal := models.Goal{
			UserID:      userID,
			GoalName:    "Daily Calorie Target",
			GoalType:    models.GoalTypeCalories,
			TargetValue: *input.DailyCalories,
			TargetUnit:  "calories",
			Period:      models.PeriodDaily,
			StartDate:   today,
			IsActive:    true,
		}
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if input.WeeklyWorkouts != nil && (weekly == nil || weekly.TargetValue != *input.WeeklyWorkouts) {
		goal := models.Goal{
			UserID:      userID,
			GoalName:    "Weekly Workout Target",
			GoalType:    models.GoalTypeWorkoutFrequency,
			TargetValue: *input.WeeklyWorkouts,
			TargetUnit:  "workouts",
			Period:      models.PeriodWeekly,
			StartDate:   today,
			IsActive:    true,
		}
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, apperror.Internal(err)
		}
	}

	// Re-read canonical state rather than trusting in-memory bookkeeping.
	return s.Targets(ctx, userID)
}

func (s *ReconcileService) activeGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&goals).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return goals, nil
}

func classify(goals []models.Goal) *types.GoalTargets {
	out := &types.GoalTargets{}
	for i := range goals {
		g := &goals[i]
		if out.DailyCalories == nil && isDailyCalories(g) {
			v := g.TargetValue
			out.DailyCalories = &v
		}
		if out.WeeklyWorkouts == nil && isWeeklyWorkouts(g) {
			v := g.TargetValue
			out.WeeklyWorkouts = &v
		}
	}
	return out
}
