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

// GoalHandler serves goal CRUD, progress views and target
// reconciliation.
type GoalHandler struct {
	goals     *service.GoalService
	stats     *service.StatsService
	reconcile *service.ReconcileService
}

func NewGoalHandler(goals *service.GoalService, stats *service.StatsService, reconcile *service.ReconcileService) *GoalHandler {
	return &GoalHandler{goals: goals, stats: stats, reconcile: reconcile}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.GET("/progress", h.AllProgress)
		goals.GET("/targets", h.GetTargets)
		goals.PUT("/targets", h.PutTargets)
		goals.GET("/:id/progress", h.Progress)
		goals.POST("", h.Create)
		goals.PATCH("/:id/progress", h.UpdateProgress)
		goals.PATCH("/:id/deactivate", h.Deactivate)
		goals.DELETE("/:id", h.Delete)
	}
}

func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goals.ListActive(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) AllProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := h.stats.AllGoalsWithProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *GoalHandler) Progress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid goal id"))
		return
	}

	progress, err := h.stats.GoalProgress(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("missing required fields: goal_name, goal_type, target_value, target_unit, period, start_date"))
		return
	}
	startDate, err := service.ParseDate(req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}

	goal := models.Goal{
		UserID:       userID,
		GoalName:     req.GoalName,
		GoalType:     req.GoalType,
		TargetValue:  *req.TargetValue,
		TargetUnit:   req.TargetUnit,
		Period:       req.Period,
		StartDate:    startDate,
		CurrentValue: req.CurrentValue,
		IsActive:     true,
	}
	if req.Deadline != nil {
		deadline, err := service.ParseDate(*req.Deadline)
		if err != nil {
			respondError(c, err)
			return
		}
		goal.Deadline = &deadline
	}
	if req.IsActive != nil {
		goal.IsActive = *req.IsActive
	}

	created, err := h.goals.Create(c.Request.Context(), &goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid goal id"))
		return
	}

	var req types.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("missing required field: current_value"))
		return
	}

	goal, err := h.goals.UpdateProgress(c.Request.Context(), userID, id, *req.CurrentValue, req.CurrentStreak)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) Deactivate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid goal id"))
		return
	}

	goal, err := h.goals.Deactivate(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid goal id"))
		return
	}

	if err := h.goals.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted successfully"})
}

func (h *GoalHandler) GetTargets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	targets, err := h.reconcile.Targets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (h *GoalHandler) PutTargets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GoalTargets
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("invalid request body"))
		return
	}
	if req.DailyCalories == nil && req.WeeklyWorkouts == nil {
		respondError(c, apperror.Validation("at least one of daily_calories, weekly_workouts is required"))
		return
	}
	if (req.DailyCalories != nil && *req.DailyCalories <= 0) || (req.WeeklyWorkouts != nil && *req.WeeklyWorkouts <= 0) {
		respondError(c, apperror.Validation("targets must be positive"))
		return
	}

	targets, err := h.reconcile.Reconcile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}
