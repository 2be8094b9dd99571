package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/service"
	"github.com/vitatrack/backend/internal/types"
)

// LLMHandler serves the AI summary endpoints.
type LLMHandler struct {
	llm *service.LLMService
}

func NewLLMHandler(llm *service.LLMService) *LLMHandler {
	return &LLMHandler{llm: llm}
}

func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.POST("/nutrition/summary", h.NutritionSummary)
		ai.POST("/workout/summary", h.WorkoutSummary)
	}
}

func (h *LLMHandler) NutritionSummary(c *gin.Context) {
	h.summarize(c, h.llm.NutritionSummary)
}

func (h *LLMHandler) WorkoutSummary(c *gin.Context) {
	h.summarize(c, h.llm.WorkoutSummary)
}

func (h *LLMHandler) summarize(c *gin.Context, fn func(ctx context.Context, text string) (string, error)) {
	var req types.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respondError(c, apperror.Validation("text is required"))
		return
	}

	summary, err := fn(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
