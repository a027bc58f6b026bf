package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"standplanner/internal/shared/config"
	"standplanner/internal/shared/database"

	"github.com/gin-gonic/gin"
)

func newTestEngine(t *testing.T, ginMode string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.GinMode = ginMode

	engine := gin.New()
	NewRouter(cfg, &database.DB{}, nil).SetupRoutes(engine)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthAndStatus(t *testing.T) {
	engine := newTestEngine(t, "debug")

	if w := get(engine, "/health"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", w.Code)
	}

	w := get(engine, "/status")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /status, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if body["open_sessions"] != float64(0) || body["redis_cache"] != false {
		t.Fatalf("unexpected status body %v", body)
	}
}

func TestSwaggerDocs(t *testing.T) {
	t.Run("served outside production", func(t *testing.T) {
		engine := newTestEngine(t, "debug")

		w := get(engine, "/swagger/doc.json")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var doc struct {
			BasePath string                    `json:"basePath"`
			Info     struct{ Title string }    `json:"info"`
			Paths    map[string]map[string]any `json:"paths"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
			t.Fatalf("decode doc: %v", err)
		}
		if doc.BasePath != "/api/v1" || doc.Info.Title != "Stand Planner API" {
			t.Fatalf("unexpected doc header %+v", doc)
		}
		if _, ok := doc.Paths["/events/{eventId}/layout/cells/click"]["post"]; !ok {
			t.Fatalf("expected cell click operation in doc")
		}
	})

	t.Run("hidden in production", func(t *testing.T) {
		engine := newTestEngine(t, "release")

		if w := get(engine, "/swagger/doc.json"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAPIRoutesRegistered(t *testing.T) {
	engine := newTestEngine(t, "debug")

	registered := make(map[string]bool)
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/events/:eventId/applications",
		"PATCH /api/v1/applications/:id/status",
		"GET /api/v1/events/:eventId/layout",
		"POST /api/v1/events/:eventId/layout/cells/click",
		"PUT /api/v1/events/:eventId/layout/stands/:standId/occupant",
	} {
		if !registered[want] {
			t.Fatalf("expected route %q, have %v", want, strings.Join(keys(registered), ", "))
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
