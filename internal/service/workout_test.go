package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/testhelpers"
)

func TestWorkoutCreateAndListByRange(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewWorkoutService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Workout{
		UserID:      user.ID,
		WorkoutName: "morning run",
		WorkoutDate: day(2025, 3, 10),
		WorkoutType: "cardio",
		Duration:    30,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.Workout{
		UserID:      user.ID,
		WorkoutName: "leg day",
		WorkoutDate: day(2025, 3, 12),
		WorkoutType: "strength",
		Duration:    45,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.Workout{
		UserID:      user.ID,
		WorkoutName: "out of range",
		WorkoutDate: day(2025, 3, 20),
		WorkoutType: "cardio",
		Duration:    60,
	})
	require.NoError(t, err)

	workouts, err := svc.ListByRange(ctx, user.ID, day(2025, 3, 9), day(2025, 3, 15))
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	// Newest first.
	assert.Equal(t, "leg day", workouts[0].WorkoutName)
	assert.Equal(t, "morning run", workouts[1].WorkoutName)
}

func TestWorkoutCreateRejectsNonPositiveDuration(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewWorkoutService(db)

	for _, d := range []int{0, -15} {
		_, err := svc.Create(context.Background(), &models.Workout{
			UserID:      user.ID,
			WorkoutDate: day(2025, 3, 10),
			WorkoutType: "cardio",
			Duration:    d,
		})
		assert.Error(t, err, "duration %d", d)
	}
}

func TestWorkoutUpdate(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db)
	svc := NewWorkoutService(db)
	ctx := context.Background()

	w, err := svc.Create(ctx, &models.Workout{
		UserID:      user.ID,
		WorkoutName: "swim",
		WorkoutDate: day(2025, 3, 10),
		WorkoutType: "cardio",
		Duration:    40,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user.ID, w.ID, map[string]interface{}{
		"duration": 55,
		"notes":    "felt strong",
	})
	require.NoError(t, err)
	assert.Equal(t, 55, updated.Duration)
	assert.Equal(t, "felt strong", updated.Notes)

	_, err = svc.Update(ctx, user.ID, w.ID, map[string]interface{}{"duration": 0})
	assert.Error(t, err)
	_, err = svc.Update(ctx, user.ID, uuid.New(), map[string]interface{}{"duration": 10})
	assert.Error(t, err)
}

func TestWorkoutDeleteScopedToOwner(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	owner := testhelpers.CreateTestUser(t, db)
	intruder := testhelpers.CreateTestUser(t, db)
	svc := NewWorkoutService(db)
	ctx := context.Background()

	w, err := svc.Create(ctx, &models.Workout{
		UserID:      owner.ID,
		WorkoutDate: day(2025, 3, 10),
		WorkoutType: "cardio",
		Duration:    30,
	})
	require.NoError(t, err)

	assert.Error(t, svc.Delete(ctx, intruder.ID, w.ID))
	require.NoError(t, svc.Delete(ctx, owner.ID, w.ID))
	assert.Error(t, svc.Delete(ctx, owner.ID, w.ID))
}
