package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vitatrack/backend/internal/service"
	"github.com/vitatrack/backend/internal/types"
)

// dashboardCacheTTL bounds how stale the combined summary may be.
const dashboardCacheTTL = 60 * time.Second

// DashboardHandler serves the combined daily summary, cached in Redis
// per (user, date). The cache is best-effort: a Redis failure falls
// through to a fresh computation.
type DashboardHandler struct {
	stats *service.StatsService
	redis *redis.Client
}

// NewDashboardHandler creates the handler. redisClient may be nil, in
// which case every request recomputes the summary.
func NewDashboardHandler(stats *service.StatsService, redisClient *redis.Client) *DashboardHandler {
	return &DashboardHandler{stats: stats, redis: redisClient}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/summary", h.Summary)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := service.DayOf(time.Now())
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := service.ParseDate(dateStr)
		if err != nil {
			respondError(c, err)
			return
		}
		date = parsed
	}

	cacheKey := fmt.Sprintf("dashboard:%s:%s", userID, date.Format("2006-01-02"))
	if h.redis != nil {
		if cached, err := h.redis.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var summary types.DashboardSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				c.JSON(http.StatusOK, summary)
				return
			}
		}
	}

	summary, err := h.stats.DashboardSummary(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.redis != nil {
		if payload, err := json.Marshal(summary); err == nil {
			h.redis.Set(c.Request.Context(), cacheKey, payload, dashboardCacheTTL)
		}
	}

	c.JSON(http.StatusOK, summary)
}
