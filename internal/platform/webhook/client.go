package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"deskflow/internal/shared/events"
)

const userAgent = "deskflow/1.0"

// Client delivers event envelopes to the automation webhook endpoint.
// Delivery is single-shot and detached: the caller never waits on the
// request and never sees its outcome. Failures are logged and dropped,
// never surfaced to the domain operation that produced the event.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
	inflight sync.WaitGroup
}

// NewClient builds a client bound to one endpoint. The endpoint is
// resolved once at process start from the deployment mode; it is not
// re-read per delivery.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Deliver dispatches one send attempt on a detached goroutine and
// returns immediately. There is no retry, no queue and no backoff.
func (c *Client) Deliver(envelope events.Envelope) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if err := c.send(envelope); err != nil {
			c.logger.Error("webhook delivery failed",
				"event", "webhook_delivery_failed",
				"module", "internal/platform/webhook",
				"layer", "platform",
				"action", string(envelope.Action),
				"endpoint", c.endpoint,
				"error", err.Error(),
			)
			return
		}
		c.logger.Info("webhook delivered",
			"event", "webhook_delivered",
			"module", "internal/platform/webhook",
			"layer", "platform",
			"action", string(envelope.Action),
			"endpoint", c.endpoint,
		)
	}()
}

// Flush blocks until in-flight deliveries finish. Shutdown hook.
func (c *Client) Flush() {
	c.inflight.Wait()
}

func (c *Client) send(envelope events.Envelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}
