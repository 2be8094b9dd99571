package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitatrack/backend/config"
	"github.com/vitatrack/backend/internal/middleware"
	"github.com/vitatrack/backend/internal/models"
	"github.com/vitatrack/backend/internal/service"
	"github.com/vitatrack/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	user   *models.User
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLLM(t, service.NewLLMService(&config.Config{
		OpenAIAPIKey: "unused",
		OpenAIAPIURL: "http://127.0.0.1:0",
		OpenAIModel:  "unused",
	}))
}

func newTestEnvWithLLM(t *testing.T, llm *service.LLMService) *testEnv {
	t.Helper()

	db := testhelpers.NewTestDB(t)
	auth := service.NewAuthService(db, "test-secret")
	stats := service.NewStatsService(db)

	engine := gin.New()
	NewAuthHandler(auth, nil).RegisterRoutes(engine.Group("/auth"))

	protected := engine.Group("/api")
	protected.Use(middleware.AuthMiddleware(auth))
	NewFoodLogHandler(service.NewFoodLogService(db), stats, llm).RegisterRoutes(protected)
	NewWorkoutHandler(service.NewWorkoutService(db), stats).RegisterRoutes(protected)
	NewGoalHandler(service.NewGoalService(db), stats, service.NewReconcileService(db)).RegisterRoutes(protected)
	NewDashboardHandler(stats, nil).RegisterRoutes(protected)
	NewLLMHandler(llm).RegisterRoutes(protected)

	user := testhelpers.CreateTestUser(t, db)
	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	return &testEnv{router: engine, db: db, auth: auth, user: user, token: token}
}

// request performs an in-process HTTP request, JSON-encoding body when
// it is non-nil. An empty token leaves the Authorization header unset.
func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return e.request(t, http.MethodGet, path, nil, e.token)
}
