package gin_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/assistant"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/handler"
	"github.com/aebalz/ubermensch-tracker/internal/middleware"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/store/storetest"
	ginserver "github.com/aebalz/ubermensch-tracker/pkg/gin"
)

var now = time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)

func newRouter(t *testing.T, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := storetest.New(t)
	clock := func() time.Time { return now }
	svc := service.New(repository.NewSet(s, clock), service.Options{Now: clock, Location: time.UTC})
	log := zerolog.New(io.Discard)
	ai := assistant.NewService(assistant.Config{}, assistant.NewClient("http://127.0.0.1:1", "", ""), svc, log)
	cfg := &config.AppConfig{AppName: "test", AppEnv: "development", CorsAllowedOrigins: []string{"*"}}
	return ginserver.NewGinServer(cfg, handler.New(s, svc, ai, log), log, limiter)
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, rd))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestHealthGin(t *testing.T) {
	r := newRouter(t, nil)
	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestWorkoutLifecycleGin(t *testing.T) {
	r := newRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/workouts", `{"name":"Leg day","assignedDate":"2026-03-10"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body)
	}
	created := decode[model.WorkoutPlan](t, w)
	if created.Type != "Strength" || created.Duration != "60" || created.Intensity != "Medium" {
		t.Errorf("defaults not applied: %+v", created)
	}

	w = do(t, r, http.MethodPost, "/api/v1/workouts/"+created.ID+"/completed", "")
	if !decode[model.WorkoutPlan](t, w).Completed {
		t.Error("completed flag not toggled")
	}

	w = do(t, r, http.MethodPost, "/api/v1/workouts", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", w.Code)
	}
	if e := decode[handler.ErrorResponse](t, w); !e.Error {
		t.Errorf("error body = %s", w.Body)
	}

	w = do(t, r, http.MethodDelete, "/api/v1/workouts/"+created.ID+"?confirm=true", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/v1/workouts/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", w.Code)
	}
}

func TestRecipeTagsAndMetricProgressGin(t *testing.T) {
	r := newRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/recipes", `{"name":"Green smoothie"}`)
	recipe := decode[model.Recipe](t, w)
	w = do(t, r, http.MethodPost, "/api/v1/recipes/"+recipe.ID+"/tags/"+url.PathEscape(model.RecipeTags[0]), "")
	if got := decode[model.Recipe](t, w); !got.HasTag(model.RecipeTags[0]) {
		t.Errorf("tag not added: %+v", got)
	}
	w = do(t, r, http.MethodPost, "/api/v1/recipes/"+recipe.ID+"/tags/not-a-tag", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown tag status = %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/v1/metrics", `{"name":"Steps","value":"15000","targetValue":"10000","unit":"steps"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create metric status = %d, body %s", w.Code, w.Body)
	}
	metric := decode[model.HealthMetric](t, w)
	w = do(t, r, http.MethodGet, "/api/v1/metrics/"+metric.ID+"/progress", "")
	p := decode[service.Progress](t, w)
	if p.Percent != 150 || p.Display != 100 || !p.Reached {
		t.Errorf("progress = %+v", p)
	}
}

func TestExportAndNotesGin(t *testing.T) {
	r := newRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/v1/equipment/export", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Disposition"), "fitness_equipment.csv") {
		t.Fatalf("export = %d %q", w.Code, w.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(w.Body.String(), `"Dumbbells"`) {
		t.Errorf("seeded equipment missing from export: %q", w.Body)
	}

	w = do(t, r, http.MethodPost, "/api/v1/notes", `{"content":"call the lab"}`)
	note := decode[model.Note](t, w)
	w = do(t, r, http.MethodDelete, "/api/v1/notes/"+note.ID, "")
	if w.Code != http.StatusPreconditionRequired {
		t.Errorf("unconfirmed delete status = %d", w.Code)
	}
	w = do(t, r, http.MethodDelete, "/api/v1/notes/"+note.ID+"?confirm=1", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
}

func TestRateLimitGin(t *testing.T) {
	r := newRouter(t, middleware.NewRateLimiter(0.001, 1))
	if w := do(t, r, http.MethodGet, "/api/v1/equipment", ""); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/equipment", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("health is not rate limited, got %d", w.Code)
	}
}
