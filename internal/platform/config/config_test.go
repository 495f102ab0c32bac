package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("WEBHOOK_TEST_URL", "")
	t.Setenv("WEBHOOK_PROD_URL", "")
	t.Setenv("WEBHOOK_TIMEOUT_SECONDS", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServiceName != "deskflow" || cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Production {
		t.Fatalf("production must be off by default")
	}
	if cfg.WebhookURL() != defaultWebhookTestURL {
		t.Fatalf("unexpected endpoint %q", cfg.WebhookURL())
	}
	if cfg.WebhookTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.WebhookTimeout)
	}
}

func TestProductionSelectsProdEndpoint(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("WEBHOOK_TEST_URL", "")
	t.Setenv("WEBHOOK_PROD_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.Production {
		t.Fatalf("APP_ENV=Production must enable production mode")
	}
	if cfg.WebhookURL() != defaultWebhookProdURL {
		t.Fatalf("unexpected endpoint %q", cfg.WebhookURL())
	}
}

func TestExplicitWebhookURLsWin(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("WEBHOOK_TEST_URL", "https://hooks.internal/test")
	t.Setenv("WEBHOOK_PROD_URL", "https://hooks.internal/prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.WebhookURL() != "https://hooks.internal/test" {
		t.Fatalf("non-production must use the test endpoint, got %q", cfg.WebhookURL())
	}
}

func TestWebhookTimeoutOverride(t *testing.T) {
	t.Setenv("WEBHOOK_TIMEOUT_SECONDS", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.WebhookTimeout != 9*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.WebhookTimeout)
	}
}
