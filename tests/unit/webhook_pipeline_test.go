package unit

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	documentservice "deskflow/contexts/workspace/document-service"
	taskservice "deskflow/contexts/workspace/task-service"
	taskhttp "deskflow/contexts/workspace/task-service/transport/http"
	"deskflow/internal/platform/webhook"
	"deskflow/internal/shared/events"
)

type webhookReceiver struct {
	mu        sync.Mutex
	status    int
	envelopes []events.Envelope
}

func (r *webhookReceiver) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var envelope events.Envelope
	_ = json.NewDecoder(req.Body).Decode(&envelope)

	r.mu.Lock()
	r.envelopes = append(r.envelopes, envelope)
	status := r.status
	r.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}

func (r *webhookReceiver) received() []events.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Envelope(nil), r.envelopes...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var pipelineActor = events.Actor{
	ID:    "user_001",
	Name:  "Sarah Chen",
	Email: "sarah.chen@deskflow.io",
	Role:  "admin",
}

func TestDocumentDeleteReachesWebhook(t *testing.T) {
	receiver := &webhookReceiver{}
	endpoint := httptest.NewServer(receiver)
	defer endpoint.Close()

	client := webhook.NewClient(endpoint.URL, time.Second, testLogger())
	recorder := events.Recorder{Notifier: client, Logger: testLogger()}
	module := documentservice.NewInMemoryModule(recorder, testLogger())

	if err := module.Handler.DeleteDocumentHandler(context.Background(), pipelineActor, "doc_002"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	client.Flush()

	got := receiver.received()
	if len(got) != 1 {
		t.Fatalf("expected one delivery, got %d", len(got))
	}
	if got[0].Action != events.ActionDocumentDeleted {
		t.Fatalf("unexpected action %s", got[0].Action)
	}
	if got[0].User.ID != "user_001" {
		t.Fatalf("unexpected actor %+v", got[0].User)
	}
	document, ok := got[0].Data["document"].(map[string]any)
	if !ok || document["name"] != "Brand_Guidelines.pdf" {
		t.Fatalf("unexpected payload %#v", got[0].Data)
	}
}

func TestFailingWebhookNeverFailsOperation(t *testing.T) {
	receiver := &webhookReceiver{status: http.StatusInternalServerError}
	endpoint := httptest.NewServer(receiver)
	defer endpoint.Close()

	client := webhook.NewClient(endpoint.URL, time.Second, testLogger())
	recorder := events.Recorder{Notifier: client, Logger: testLogger()}
	module := taskservice.NewInMemoryModule(recorder, testLogger())

	task, err := module.Handler.CompleteTaskHandler(context.Background(), pipelineActor, "2", taskhttp.CompleteTaskRequest{ActualHours: 3})
	if err != nil {
		t.Fatalf("completion must succeed regardless of webhook outcome: %v", err)
	}
	if task.Data.Status != "completed" {
		t.Fatalf("unexpected task state %+v", task.Data)
	}
	client.Flush()

	if got := receiver.received(); len(got) != 1 {
		t.Fatalf("expected exactly one delivery attempt, got %d", len(got))
	}
}

func TestUnreachableWebhookNeverFailsOperation(t *testing.T) {
	client := webhook.NewClient("http://127.0.0.1:1/webhook", 200*time.Millisecond, testLogger())
	recorder := events.Recorder{Notifier: client, Logger: testLogger()}
	module := documentservice.NewInMemoryModule(recorder, testLogger())

	if _, err := module.Handler.ViewDocumentHandler(context.Background(), pipelineActor, "doc_001"); err != nil {
		t.Fatalf("view must succeed with no webhook reachable: %v", err)
	}
	client.Flush()
}

func TestEachOperationDeliversOneEnvelope(t *testing.T) {
	receiver := &webhookReceiver{}
	endpoint := httptest.NewServer(receiver)
	defer endpoint.Close()

	client := webhook.NewClient(endpoint.URL, time.Second, testLogger())
	recorder := events.Recorder{Notifier: client, Logger: testLogger()}
	module := documentservice.NewInMemoryModule(recorder, testLogger())

	ctx := context.Background()
	if _, err := module.Handler.ViewDocumentHandler(ctx, pipelineActor, "doc_001"); err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if _, err := module.Handler.DownloadDocumentHandler(ctx, pipelineActor, "doc_001"); err != nil {
		t.Fatalf("download failed: %v", err)
	}
	client.Flush()

	got := receiver.received()
	if len(got) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(got))
	}
	seen := map[events.Action]bool{}
	for _, envelope := range got {
		seen[envelope.Action] = true
	}
	if !seen[events.ActionDocumentViewed] || !seen[events.ActionDocumentDownloaded] {
		t.Fatalf("unexpected action set %v", seen)
	}
}
