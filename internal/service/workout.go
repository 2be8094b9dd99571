package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/models"
)

// WorkoutService handles workout CRUD scoped to the owning user.
type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// ListByRange returns workouts with workoutDate in [start, end]
// inclusive, newest first.
func (s *WorkoutService) ListByRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, DayOf(start), DayOf(end)).
		Order("workout_date DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return workouts, nil
}

// Create validates and stores a new session.
func (s *WorkoutService) Create(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	if w.Duration <= 0 {
		return nil, apperror.Validation("duration must be a positive number of minutes")
	}
	w.WorkoutDate = DayOf(w.WorkoutDate)

	if err := s.db.WithContext(ctx).Create(w).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return w, nil
}

// Update applies non-nil fields to an owned session.
func (s *WorkoutService) Update(ctx context.Context, userID, id uuid.UUID, updates map[string]interface{}) (*models.Workout, error) {
	if d, ok := updates["duration"].(int); ok && d <= 0 {
		return nil, apperror.Validation("duration must be a positive number of minutes")
	}

	workout, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(workout).Updates(updates).Error; err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return s.get(ctx, userID, id)
}

// Delete removes an owned session by id.
func (s *WorkoutService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Workout{}, "id = ?", id)
	if res.Error != nil {
		return apperror.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("workout not found")
	}
	return nil
}

func (s *WorkoutService) get(ctx context.Context, userID, id uuid.UUID) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&workout, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("workout not found")
		}
		return nil, apperror.Internal(err)
	}
	return &workout, nil
}
