package applications

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"standplanner/internal/shared/validation"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, repo *fakeRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		t.Fatalf("register validators: %v", err)
	}

	engine := gin.New()
	SetupApplicationRoutes(engine.Group("/api/v1"), NewController(NewService(repo, nil)))
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestController_CreateApplication(t *testing.T) {
	repo := newFakeRepository()
	engine := newTestRouter(t, repo)

	w := doJSON(engine, http.MethodPost, "/api/v1/events/expo/applications", map[string]string{
		"brandName":     "Acme Coffee",
		"contactPerson": "Dana",
		"email":         "dana@acme.test",
		"zone":          "M",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.apps) != 1 {
		t.Fatalf("expected 1 stored application, got %d", len(repo.apps))
	}
}

func TestController_CreateApplication_Validation(t *testing.T) {
	engine := newTestRouter(t, newFakeRepository())

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing brand", map[string]string{"contactPerson": "Dana", "zone": "S"}},
		{"bad size", map[string]string{"brandName": "x", "contactPerson": "Dana", "zone": "XL"}},
		{"bad email", map[string]string{"brandName": "x", "contactPerson": "Dana", "zone": "S", "email": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(engine, http.MethodPost, "/api/v1/events/expo/applications", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestController_UpdateStatus(t *testing.T) {
	engine := newTestRouter(t, newFakeRepository(fixtureApplications()...))

	w := doJSON(engine, http.MethodPatch, "/api/v1/applications/app-2/status", map[string]string{"status": "PAID"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(engine, http.MethodPatch, "/api/v1/applications/missing/status", map[string]string{"status": "PAID"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestController_ListApplications(t *testing.T) {
	engine := newTestRouter(t, newFakeRepository(fixtureApplications()...))

	w := doJSON(engine, http.MethodGet, "/api/v1/events/expo/applications?status=PAID", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data []Application `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].ID != "app-1" {
		t.Fatalf("expected only app-1, got %+v", body.Data)
	}

	w = doJSON(engine, http.MethodGet, "/api/v1/events/expo/applications?status=LOST", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status filter, got %d", w.Code)
	}
}
