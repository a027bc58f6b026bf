package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 2,
		EditorRequests:  5,
		HealthRequests:  100,
	}
}

func TestIsAllowed_LocalFallback(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeDefault)
		if err != nil || !result.Allowed {
			t.Fatalf("request %d: expected allowed, got %+v (err=%v)", i, result, err)
		}
	}
	result, _ := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeDefault)
	if result.Allowed {
		t.Fatalf("expected third request to be limited")
	}

	other, _ := limiter.IsAllowed(ctx, "10.0.0.2", RateLimitTypeDefault)
	if !other.Allowed {
		t.Fatalf("expected a different client to have its own budget")
	}
	editor, _ := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeEditor)
	if !editor.Allowed || editor.Limit != 5 {
		t.Fatalf("expected editor budget to be separate, got %+v", editor)
	}
}

func TestIsAllowed_DisabledAndWhitelisted(t *testing.T) {
	cfg := testConfig()
	cfg.WhitelistedIPs = []string{"127.0.0.1"}
	limiter := NewRateLimiter(nil, cfg)

	for i := 0; i < 10; i++ {
		if r, _ := limiter.IsAllowed(context.Background(), "127.0.0.1", RateLimitTypeDefault); !r.Allowed {
			t.Fatalf("expected whitelisted IP to pass")
		}
	}

	cfg = testConfig()
	cfg.Enabled = false
	limiter = NewRateLimiter(nil, cfg)
	for i := 0; i < 10; i++ {
		if r, _ := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeDefault); !r.Allowed {
			t.Fatalf("expected disabled limiter to pass")
		}
	}
}

func TestGetRateLimitType(t *testing.T) {
	tests := map[string]RateLimitType{
		"/health":                              RateLimitTypeHealth,
		"/api/v1/events/:eventId/layout/tool":  RateLimitTypeEditor,
		"/api/v1/events/:eventId/applications": RateLimitTypeDefault,
	}
	for path, want := range tests {
		if got := getRateLimitType(path); got != want {
			t.Fatalf("%s: expected %s, got %s", path, want, got)
		}
	}
}

func TestMiddleware_Returns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Middleware(NewRateLimiter(nil, testConfig())))
	engine.GET("/things", func(c *gin.Context) { c.Status(http.StatusOK) })

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things", nil)
		req.RemoteAddr = "192.0.2.1:5555"
		engine.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", last.Code)
	}
	if last.Header().Get("X-RateLimit-Limit") != "2" {
		t.Fatalf("expected limit header 2, got %q", last.Header().Get("X-RateLimit-Limit"))
	}
}
