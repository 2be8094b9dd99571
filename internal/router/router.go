package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vitatrack/backend/internal/api"
	"github.com/vitatrack/backend/internal/middleware"
)

// SetupRouter configures the application routes. Auth routes are
// public; everything under /api requires a bearer token.
func SetupRouter(
	authHandler *api.AuthHandler,
	foodLogHandler *api.FoodLogHandler,
	workoutHandler *api.WorkoutHandler,
	goalHandler *api.GoalHandler,
	dashboardHandler *api.DashboardHandler,
	llmHandler *api.LLMHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(router.Group("/auth"))

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		foodLogHandler.RegisterRoutes(protected)
		workoutHandler.RegisterRoutes(protected)
		goalHandler.RegisterRoutes(protected)
		dashboardHandler.RegisterRoutes(protected)
		llmHandler.RegisterRoutes(protected)
	}

	return router
}
