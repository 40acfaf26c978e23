package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Krushna4142/FitOS-dashboard/internal"
	"github.com/Krushna4142/FitOS-dashboard/internal/api"
	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/config"
	"github.com/Krushna4142/FitOS-dashboard/internal/mock"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
	"github.com/Krushna4142/FitOS-dashboard/internal/storage"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "records.json"), internal.NopLogger{})
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := internal.NopLogger{}
	journal := service.NewJournal(store, logger)
	mockSvc := mock.NewService(42)
	provider := auth.NewJWTProvider("test-secret", logger)

	app := api.NewApp(logger, journal, mockSvc, provider)
	cfg := &config.Config{
		Env:         "development",
		CORSOrigins: []string{"http://localhost:3000"},
		MockLatency: false,
	}
	return api.NewRouter(app, cfg)
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetHealth_ShapeAndGeneration(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "GET", "/api/health", "", "")
	assert.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["current"])
	assert.Len(t, body["history"], 30)
	first := body["generation"].(float64)

	second := decode(t, doJSON(r, "GET", "/api/health", "", ""))["generation"].(float64)
	assert.Greater(t, second, first)
}

func TestPostHealth_EchoesWithID(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, "POST", "/api/health", `{"heartRate":75,"mood":4}`, "")
	assert.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, 75.0, data["heartRate"])
	assert.NotNil(t, data["id"])
	assert.NotNil(t, data["timestamp"])
}

func TestGetInsights_Shape(t *testing.T) {
	r := setupRouter(t)
	body := decode(t, doJSON(r, "GET", "/api/insights", "", ""))
	assert.Equal(t, true, body["success"])
	insights := body["insights"].([]any)
	assert.GreaterOrEqual(t, len(insights), 2)
	assert.LessOrEqual(t, len(insights), 3)
	assert.Len(t, body["predictiveData"], 14)
	risk := body["riskAssessment"].(map[string]any)
	assert.Len(t, risk["factors"], 5)
}

func TestGetWellness_TypeFilter(t *testing.T) {
	r := setupRouter(t)

	body := decode(t, doJSON(r, "GET", "/api/wellness?type=challenges", "", ""))
	assert.NotNil(t, body["challenges"])
	assert.Nil(t, body["mealPlans"])

	body = decode(t, doJSON(r, "GET", "/api/wellness?type=meals", "", ""))
	assert.Nil(t, body["challenges"])
	assert.NotNil(t, body["mealPlans"])

	body = decode(t, doJSON(r, "GET", "/api/wellness", "", ""))
	assert.NotNil(t, body["challenges"])
	assert.NotNil(t, body["mealPlans"])
}

func TestVitals_CheckInFlow(t *testing.T) {
	r := setupRouter(t)

	// Nothing recorded yet.
	w := doJSON(r, "GET", "/api/vitals", "", "")
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])

	w = doJSON(r, "POST", "/api/vitals", `{"heart_rate":110,"mood":2,"sleep_hours":5,"stress_level":4}`, "")
	assert.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assessment := data["assessment"].(map[string]any)
	assert.Equal(t, 50.0, assessment["score"])
	assert.Equal(t, "high", assessment["heart_rate_status"])
	streaks := data["streaks"].(map[string]any)
	assert.Equal(t, 1.0, streaks["health_inputs"])

	w = doJSON(r, "GET", "/api/vitals", "", "")
	assert.Equal(t, 200, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	snapshot := data["snapshot"].(map[string]any)
	assert.Equal(t, 110.0, snapshot["heart_rate"])
}

func TestVitals_ValidationRejected(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, "POST", "/api/vitals", `{"heart_rate":300,"mood":2,"sleep_hours":5,"stress_level":4}`, "")
	assert.Equal(t, 400, w.Code)
}

func TestFoodLog_Flow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/food-log", `{"name":"Banana","quantity":2,"meal_type":"snack"}`, "")
	assert.Equal(t, 200, w.Code)
	entry := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, 210.0, entry["calories"])
	id := entry["id"].(string)

	w = doJSON(r, "GET", "/api/food-log", "", "")
	assert.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 1)
	totals := body["meta"].(map[string]any)["daily_totals"].(map[string]any)
	assert.Equal(t, 210.0, totals["calories"])
	assert.Equal(t, 1.0, totals["meals"])

	w = doJSON(r, "DELETE", "/api/food-log/"+id, "", "")
	assert.Equal(t, 200, w.Code)

	w = doJSON(r, "DELETE", "/api/food-log/"+id, "", "")
	assert.Equal(t, 404, w.Code)
}

func TestFoodLog_UnknownFoodRejected(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, "POST", "/api/food-log", `{"name":"Mystery Stew","quantity":1,"meal_type":"dinner"}`, "")
	assert.Equal(t, 400, w.Code)
}

func TestWellnessActive_JoinAndQuickLog(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/wellness/active", `{"type":"challenge","id":2}`, "")
	assert.Equal(t, 200, w.Code)

	w = doJSON(r, "POST", "/api/wellness/active", `{"type":"challenge","id":2}`, "")
	assert.Equal(t, 400, w.Code)

	w = doJSON(r, "POST", "/api/wellness", `{"activity":"Morning walk"}`, "")
	assert.Equal(t, 200, w.Code)

	body := decode(t, doJSON(r, "GET", "/api/wellness/active", "", ""))
	data := body["data"].(map[string]any)
	assert.Len(t, data["challenges"], 1)
	assert.Empty(t, data["programs"])
	quickLog := data["quick_log"].([]any)
	assert.Len(t, quickLog, 1)
	assert.Equal(t, "Morning walk", quickLog[0].(map[string]any)["activity"])
}

func TestStreaksAndBadges(t *testing.T) {
	r := setupRouter(t)

	body := decode(t, doJSON(r, "GET", "/api/streaks", "", ""))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 0.0, body["data"].(map[string]any)["health_inputs"])

	w := doJSON(r, "PUT", "/api/streaks", `{"habit":"workouts"}`, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 1.0, decode(t, w)["data"].(map[string]any)["workouts"])

	badges := decode(t, doJSON(r, "GET", "/api/badges", "", ""))["data"].([]any)
	assert.Len(t, badges, 7)
}

func TestChat_ContextualReply(t *testing.T) {
	r := setupRouter(t)

	// Without a check-in the responder falls back to the canned answer.
	body := decode(t, doJSON(r, "POST", "/api/chat", `{"message":"How can I improve my sleep?"}`, ""))
	reply := body["data"].(map[string]any)["reply"].(string)
	assert.Contains(t, reply, "consistent bedtime")

	doJSON(r, "POST", "/api/vitals", `{"heart_rate":82,"mood":3,"sleep_hours":6,"stress_level":3}`, "")

	body = decode(t, doJSON(r, "POST", "/api/chat", `{"message":"How can I improve my sleep?"}`, ""))
	reply = body["data"].(map[string]any)["reply"].(string)
	assert.Contains(t, reply, "below the recommended")
}

func TestChat_MessageRequired(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, "POST", "/api/chat", `{}`, "")
	assert.Equal(t, 400, w.Code)
}

func TestAuth_LoginIssuesUsableToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/auth/login", `{"username":"alice","password":"pw"}`, "")
	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	token := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", data["user"].(map[string]any)["username"])

	// Records created with the token live under alice, not the demo user.
	w = doJSON(r, "POST", "/api/vitals", `{"heart_rate":72,"mood":4,"sleep_hours":8,"stress_level":2}`, token)
	assert.Equal(t, 200, w.Code)

	assert.Equal(t, 200, doJSON(r, "GET", "/api/vitals", "", token).Code)
	assert.Equal(t, 404, doJSON(r, "GET", "/api/vitals", "", "").Code)
}

func TestAuth_InvalidTokenFallsBackToDemo(t *testing.T) {
	r := setupRouter(t)

	doJSON(r, "POST", "/api/vitals", `{"heart_rate":72,"mood":4,"sleep_hours":8,"stress_level":2}`, "")

	// A garbage token never yields a 401; reads resolve to the demo user.
	w := doJSON(r, "GET", "/api/vitals", "", "garbage-token")
	assert.Equal(t, 200, w.Code)
}

func TestAuth_RegisterValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/auth/register", `{"username":"bob","email":"bob@example.com","password":"secret1"}`, "")
	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, decode(t, w)["data"].(map[string]any)["token"])

	w = doJSON(r, "POST", "/api/auth/register", `{"username":"bob","email":"not-an-email","password":"secret1"}`, "")
	assert.Equal(t, 400, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "GET", "/api/health", "", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
