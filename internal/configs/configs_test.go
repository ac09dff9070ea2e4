package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppURL != "127.0.0.1:3000" {
		t.Errorf("expected default port 3000, got %s", cfg.AppURL)
	}
	if cfg.DatabaseURL == "" {
		t.Error("expected a default database url")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://localhost/taskboard")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")

	cfg := Load()

	if cfg.AppURL != "127.0.0.1:8081" {
		t.Errorf("expected overridden port, got %s", cfg.AppURL)
	}
	if cfg.DatabaseURL != "postgres://localhost/taskboard" {
		t.Errorf("unexpected database url %s", cfg.DatabaseURL)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("expected rate limit 5, got %d", cfg.RateLimit)
	}
}
