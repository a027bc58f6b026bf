package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.GetServerAddress() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.GetServerAddress())
	}
	if cfg.GetAPIBasePath() != "/api/v1" {
		t.Fatalf("expected /api/v1, got %s", cfg.GetAPIBasePath())
	}
	if cfg.Layout.DefaultGridWidth != 15 || cfg.Layout.DefaultGridHeight != 10 {
		t.Fatalf("expected 15x10 default grid, got %dx%d", cfg.Layout.DefaultGridWidth, cfg.Layout.DefaultGridHeight)
	}
	if cfg.Kafka.Enabled {
		t.Fatalf("expected kafka disabled by default")
	}
	if cfg.MailerEnabled() {
		t.Fatalf("expected mailer disabled without SMTP host")
	}
	if cfg.Layout.SessionIdleTimeout != 2*time.Hour {
		t.Fatalf("expected 2h session idle timeout, got %s", cfg.Layout.SessionIdleTimeout)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LAYOUT_GRID_WIDTH", "20")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("REDIS_PLAN_TTL", "90s")
	t.Setenv("RATE_LIMIT_EDITOR_REQUESTS", "not-a-number")

	cfg := Load()

	if cfg.Port != "9000" || cfg.Layout.DefaultGridWidth != 20 {
		t.Fatalf("unexpected config: port=%s width=%d", cfg.Port, cfg.Layout.DefaultGridWidth)
	}
	if !cfg.Kafka.Enabled || len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Fatalf("unexpected kafka config: %+v", cfg.Kafka)
	}
	if cfg.Redis.PlanTTL != 90*time.Second {
		t.Fatalf("expected 90s plan TTL, got %s", cfg.Redis.PlanTTL)
	}
	if cfg.RateLimit.EditorRequests != 600 {
		t.Fatalf("expected fallback for malformed int, got %d", cfg.RateLimit.EditorRequests)
	}
}
