package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Hard-coded webhook fallbacks, used when the URLs are not configured
// externally. The test endpoint mirrors production with a webhook-test
// path segment.
const (
	defaultWebhookTestURL = "https://automation.deskflow.io/webhook-test/deskflow-events"
	defaultWebhookProdURL = "https://automation.deskflow.io/webhook/deskflow-events"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders; nothing
// reads the environment after Load returns.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// Production selects the production webhook endpoint. Resolved once
	// at process start from APP_ENV.
	Production     bool
	WebhookTestURL string
	WebhookProdURL string
	WebhookTimeout time.Duration
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "deskflow"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	testURL := strings.TrimSpace(os.Getenv("WEBHOOK_TEST_URL"))
	if testURL == "" {
		testURL = defaultWebhookTestURL
	}
	prodURL := strings.TrimSpace(os.Getenv("WEBHOOK_PROD_URL"))
	if prodURL == "" {
		prodURL = defaultWebhookProdURL
	}

	timeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("WEBHOOK_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return Config{
		ServiceName:    service,
		HTTPPort:       port,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		Production:     strings.EqualFold(strings.TrimSpace(os.Getenv("APP_ENV")), "production"),
		WebhookTestURL: testURL,
		WebhookProdURL: prodURL,
		WebhookTimeout: timeout,
	}, nil
}

// WebhookURL returns the endpoint for the resolved deployment mode.
func (c Config) WebhookURL() string {
	if c.Production {
		return c.WebhookProdURL
	}
	return c.WebhookTestURL
}
