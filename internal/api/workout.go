package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/service"
	"github.com/vitatrack/backend/internal/types"
)

// WorkoutHandler serves workout CRUD and the workout stats views.
type WorkoutHandler struct {
	workouts *service.WorkoutService
	stats    *service.StatsService
}

func NewWorkoutHandler(workouts *service.WorkoutService, stats *service.StatsService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, stats: stats}
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.GET("", h.List)
		workouts.POST("", h.Create)
		workouts.PUT("/:id", h.Update)
		workouts.DELETE("/:id", h.Delete)
		workouts.GET("/stats/weekly", h.WeeklyStats)
		workouts.GET("/trends", h.Trends)
	}
}

func (h *WorkoutHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	workouts, err := h.workouts.ListByRange(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("missing required fields: workout_date, workout_type, duration"))
		return
	}
	date, err := service.ParseDate(req.WorkoutDate)
	if err != nil {
		respondError(c, err)
		return
	}

	workout := models.Workout{
		UserID:          userID,
		WorkoutName:     req.WorkoutName,
		WorkoutDate:     date,
		WorkoutType:     req.WorkoutType,
		Duration:        *req.Duration,
		Distance:        req.Distance,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
		AISummary:       req.AISummary,
		IsAutoGenerated: req.IsAutoGenerated,
	}
	created, err := h.workouts.Create(c.Request.Context(), &workout)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid workout id"))
		return
	}

	var req types.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("invalid request body"))
		return
	}

	updates := map[string]interface{}{}
	if req.WorkoutName != nil {
		updates["workout_name"] = *req.WorkoutName
	}
	if req.WorkoutDate != nil {
		date, err := service.ParseDate(*req.WorkoutDate)
		if err != nil {
			respondError(c, err)
			return
		}
		updates["workout_date"] = date
	}
	if req.WorkoutType != nil {
		updates["workout_type"] = *req.WorkoutType
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Distance != nil {
		updates["distance"] = *req.Distance
	}
	if req.CaloriesBurned != nil {
		updates["calories_burned"] = *req.CaloriesBurned
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	updated, err := h.workouts.Update(c.Request.Context(), userID, id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid workout id"))
		return
	}

	if err := h.workouts.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted successfully"})
}

func (h *WorkoutHandler) WeeklyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.stats.WeeklyWorkoutStats(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *WorkoutHandler) Trends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	trends, err := h.stats.WorkoutTrends(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}
