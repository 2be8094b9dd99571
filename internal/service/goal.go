package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/models"
)

// GoalService handles goal CRUD and progress updates scoped to the
// owning user.
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// ListActive returns a user's active goals, newest first.
func (s *GoalService) ListActive(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return goals, nil
}

// Create stores a new goal.
func (s *GoalService) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	if goal.TargetValue < 0 {
		return nil, apperror.Validation("target_value must be non-negative")
	}
	switch goal.Period {
	case models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly:
	default:
		return nil, apperror.Validation("period must be one of daily, weekly, monthly")
	}
	goal.StartDate = DayOf(goal.StartDate)

	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return goal, nil
}

// Get returns an owned goal by id.
func (s *GoalService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("goal not found")
		}
		return nil, apperror.Internal(err)
	}
	return &goal, nil
}

// UpdateProgress sets the progress accumulator and, when a streak is
// supplied, advances the streak counters. BestStreak takes the max of
// the incoming and stored values so it never decreases.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, id uuid.UUID, currentValue float64, currentStreak *int) (*models.Goal, error) {
	goal, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"current_value": currentValue}
	if currentStreak != nil {
		best := goal.BestStreak
		if *currentStreak > best {
			best = *currentStreak
		}
		updates["current_streak"] = *currentStreak
		updates["best_streak"] = best
	}

	if err := s.db.WithContext(ctx).Model(goal).Updates(updates).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return s.Get(ctx, userID, id)
}

// Deactivate soft-removes a goal by clearing its active flag.
func (s *GoalService) Deactivate(ctx context.Context, userID, id uuid.UUID) (*models.Goal, error) {
	goal, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(goal).Update("is_active", false).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return s.Get(ctx, userID, id)
}

// Delete hard-removes an owned goal by id.
func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Goal{}, "id = ?", id)
	if res.Error != nil {
		return apperror.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("goal not found")
	}
	return nil
}
