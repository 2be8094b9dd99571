package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/service"
	"github.com/vitatrack/backend/internal/types"
)

// FoodLogHandler serves food log CRUD and the nutrition stats views.
type FoodLogHandler struct {
	foodlogs *service.FoodLogService
	stats    *service.StatsService
	llm      *service.LLMService
}

func NewFoodLogHandler(foodlogs *service.FoodLogService, stats *service.StatsService, llm *service.LLMService) *FoodLogHandler {
	return &FoodLogHandler{foodlogs: foodlogs, stats: stats, llm: llm}
}

func (h *FoodLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/food-logs")
	{
		logs.GET("/daily/:date", h.ListDaily)
		logs.POST("", h.Create)
		logs.PUT("/:id", h.Update)
		logs.PATCH("/:id", h.Update)
		logs.DELETE("/:id", h.Delete)
		logs.GET("/stats/daily/:date", h.DailyStats)
		logs.GET("/stats/meals/:date", h.MealBreakdown)
		logs.GET("/trends", h.Trends)
	}
}

func (h *FoodLogHandler) ListDaily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, err := service.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	logs, err := h.foodlogs.ListByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *FoodLogHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("missing required fields: logged_date, meal_type, food_name, calories"))
		return
	}
	date, err := service.ParseDate(req.LoggedDate)
	if err != nil {
		respondError(c, err)
		return
	}

	log := models.FoodLog{
		UserID:      userID,
		LoggedDate:  date,
		MealType:    req.MealType,
		FoodName:    req.FoodName,
		Calories:    *req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		AISummary:   req.AISummary,
	}
	created, err := h.foodlogs.Create(c.Request.Context(), &log)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FoodLogHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid food log id"))
		return
	}

	var req types.UpdateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("invalid request body"))
		return
	}

	updates := map[string]interface{}{}
	if req.LoggedDate != nil {
		date, err := service.ParseDate(*req.LoggedDate)
		if err != nil {
			respondError(c, err)
			return
		}
		updates["logged_date"] = date
	}
	if req.MealType != nil {
		updates["meal_type"] = *req.MealType
	}
	if req.FoodName != nil {
		updates["food_name"] = *req.FoodName
	}
	if req.Calories != nil {
		updates["calories"] = *req.Calories
	}
	if req.Protein != nil {
		updates["protein"] = *req.Protein
	}
	if req.Carbs != nil {
		updates["carbs"] = *req.Carbs
	}
	if req.Fat != nil {
		updates["fat"] = *req.Fat
	}
	if req.Fiber != nil {
		updates["fiber"] = *req.Fiber
	}
	if req.Sugar != nil {
		updates["sugar"] = *req.Sugar
	}
	if req.ServingSize != nil {
		updates["serving_size"] = *req.ServingSize
	}
	if req.ServingUnit != nil {
		updates["serving_unit"] = *req.ServingUnit
	}

	// Regenerate the AI summary from the new food name when asked.
	if req.RegenerateAI && req.FoodName != nil && h.llm != nil {
		summary, err := h.llm.NutritionSummary(c.Request.Context(), *req.FoodName)
		if err != nil {
			respondError(c, err)
			return
		}
		updates["ai_summary"] = summary
	}

	updated, err := h.foodlogs.Update(c.Request.Context(), userID, id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FoodLogHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("invalid food log id"))
		return
	}

	if err := h.foodlogs.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food log deleted successfully"})
}

func (h *FoodLogHandler) DailyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, err := service.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.stats.DailyNutritionStats(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *FoodLogHandler) MealBreakdown(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, err := service.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	breakdown, err := h.stats.DailyMealBreakdown(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

func (h *FoodLogHandler) Trends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	trends, err := h.stats.NutritionTrends(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// parseDateRange reads the startDate/endDate query parameters shared
// by the trend and weekly-stats endpoints.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	startStr, endStr := c.Query("startDate"), c.Query("endDate")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, apperror.Validation("missing required query parameters: startDate, endDate")
	}
	start, err := service.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := service.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperror.Validation("endDate must not precede startDate")
	}
	return start, end, nil
}
