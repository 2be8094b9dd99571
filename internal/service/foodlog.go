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

// FoodLogService handles food log CRUD. Every operation is scoped to
// the owning user.
type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// ListByDate returns a user's food logs for one calendar day, oldest
// entry first.
func (s *FoodLogService) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_date = ?", userID, DayOf(date)).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return logs, nil
}

// Create validates and stores a new entry.
func (s *FoodLogService) Create(ctx context.Context, log *models.FoodLog) (*models.FoodLog, error) {
	if !models.ValidMealType(log.MealType) {
		return nil, apperror.Validation("meal_type must be one of breakfast, lunch, dinner, snack")
	}
	if log.Calories < 0 || log.Protein < 0 || log.Carbs < 0 || log.Fat < 0 || log.Fiber < 0 || log.Sugar < 0 {
		return nil, apperror.Validation("nutrition values must be non-negative")
	}
	log.LoggedDate = DayOf(log.LoggedDate)

	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return log, nil
}

// Update applies non-nil fields to an owned entry and returns the
// updated row.
func (s *FoodLogService) Update(ctx context.Context, userID, id uuid.UUID, updates map[string]interface{}) (*models.FoodLog, error) {
	if mt, ok := updates["meal_type"].(string); ok && !models.ValidMealType(mt) {
		return nil, apperror.Validation("meal_type must be one of breakfast, lunch, dinner, snack")
	}
	for _, field := range []string{"calories", "protein", "carbs", "fat", "fiber", "sugar"} {
		if v, ok := updates[field].(float64); ok && v < 0 {
			return nil, apperror.Validation("nutrition values must be non-negative")
		}
	}

	log, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(log).Updates(updates).Error; err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return s.get(ctx, userID, id)
}

// Delete removes an owned entry by id.
func (s *FoodLogService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.FoodLog{}, "id = ?", id)
	if res.Error != nil {
		return apperror.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("food log not found")
	}
	return nil
}

func (s *FoodLogService) get(ctx context.Context, userID, id uuid.UUID) (*models.FoodLog, error) {
	var log models.FoodLog
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food log not found")
		}
		return nil, apperror.Internal(err)
	}
	return &log, nil
}
