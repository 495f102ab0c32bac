package unit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	authservice "deskflow/contexts/identity-access/auth-service"
	documentservice "deskflow/contexts/workspace/document-service"
	taskservice "deskflow/contexts/workspace/task-service"
	templateservice "deskflow/contexts/workspace/template-service"
	"deskflow/internal/platform/httpserver"
	"deskflow/internal/shared/events"
)

type captureNotifier struct {
	mu        sync.Mutex
	envelopes []events.Envelope
}

func (c *captureNotifier) Deliver(envelope events.Envelope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envelopes = append(c.envelopes, envelope)
}

func (c *captureNotifier) all() []events.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]events.Envelope(nil), c.envelopes...)
}

func newTestAPI(t *testing.T) (*httptest.Server, *captureNotifier) {
	t.Helper()
	logger := testLogger()
	capture := &captureNotifier{}
	recorder := events.Recorder{Notifier: capture}

	server := httpserver.New(
		documentservice.NewInMemoryModule(recorder, logger),
		taskservice.NewInMemoryModule(recorder, logger),
		templateservice.NewInMemoryModule(recorder, logger),
		authservice.NewInMemoryModule(recorder, logger),
		logger,
		":0",
	)
	api := httptest.NewServer(server.Handler())
	t.Cleanup(api.Close)
	return api, capture
}

func postJSON(t *testing.T, url string, payload any, header http.Header) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func login(t *testing.T, api *httptest.Server, email string, password string) string {
	t.Helper()
	resp := postJSON(t, api.URL+"/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login response carries no token: %#v", body)
	}
	return token
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	api, capture := newTestAPI(t)

	resp := postJSON(t, api.URL+"/api/auth/login", map[string]string{
		"email":    "sarah.chen@deskflow.io",
		"password": "admin123",
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "success" {
		t.Fatalf("unexpected body %#v", body)
	}
	data := body["data"].(map[string]any)
	if data["user_id"] != "user_001" || data["role"] != "admin" {
		t.Fatalf("unexpected user %#v", data)
	}

	got := capture.all()
	if len(got) != 1 || got[0].Action != events.ActionUserLogin {
		t.Fatalf("expected a single user_login envelope, got %+v", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	api, capture := newTestAPI(t)

	resp := postJSON(t, api.URL+"/api/auth/login", map[string]string{
		"email":    "sarah.chen@deskflow.io",
		"password": "nope",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "invalid_credentials" {
		t.Fatalf("unexpected error body %#v", body)
	}
	if len(capture.all()) != 0 {
		t.Fatalf("failed login must not emit")
	}
}

func TestMutationWithoutActorIsRejected(t *testing.T) {
	api, capture := newTestAPI(t)

	resp := postJSON(t, api.URL+"/api/documents", map[string]any{
		"name": "Notes.txt",
		"size": 10,
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "missing_actor" {
		t.Fatalf("unexpected error body %#v", body)
	}
	if len(capture.all()) != 0 {
		t.Fatalf("rejected request must not emit")
	}
}

func TestUploadDocumentWithSessionToken(t *testing.T) {
	api, capture := newTestAPI(t)
	token := login(t, api, "marcus.webb@deskflow.io", "manager123")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	resp := postJSON(t, api.URL+"/api/documents", map[string]any{
		"name": "NDA_Agreement_2024.pdf",
		"size": 2048,
	}, header)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	if data["type"] != "pdf" || data["status"] != "pending" {
		t.Fatalf("unexpected document %#v", data)
	}
	if data["uploaded_by"] != "user_002" {
		t.Fatalf("uploader must come from the session, got %v", data["uploaded_by"])
	}

	got := capture.all()
	last := got[len(got)-1]
	if last.Action != events.ActionDocumentUploaded {
		t.Fatalf("unexpected action %s", last.Action)
	}
	if last.User.ID != "user_002" || last.User.Name != "Marcus Webb" {
		t.Fatalf("unexpected actor %+v", last.User)
	}
}

func TestCompleteTaskWithUserIDFallback(t *testing.T) {
	api, capture := newTestAPI(t)

	header := http.Header{}
	header.Set("X-User-Id", "user_002")
	resp := postJSON(t, api.URL+"/api/tasks/2/complete", map[string]any{
		"actual_hours": 3,
	}, header)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	if data["status"] != "completed" || data["actual_hours"] != float64(3) {
		t.Fatalf("unexpected task %#v", data)
	}

	got := capture.all()
	if len(got) != 1 || got[0].Action != events.ActionTaskCompleted {
		t.Fatalf("expected a single task_completed envelope, got %+v", got)
	}
	payload := got[0].Data["task"].(map[string]any)
	if payload["actualHours"] != float64(3) {
		t.Fatalf("unexpected event payload %#v", payload)
	}
}

func TestUnknownDocumentMapsTo404(t *testing.T) {
	api, _ := newTestAPI(t)

	resp, err := http.Get(api.URL + "/api/documents/doc_999")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "document_not_found" {
		t.Fatalf("unexpected error body %#v", body)
	}
}

func TestUnknownActorIsRejected(t *testing.T) {
	api, _ := newTestAPI(t)

	header := http.Header{}
	header.Set("X-User-Id", "user_999")
	resp := postJSON(t, api.URL+"/api/folders", map[string]any{"name": "Archive"}, header)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "unknown_actor" {
		t.Fatalf("unexpected error body %#v", body)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	api, _ := newTestAPI(t)
	token := login(t, api, "priya.nair@deskflow.io", "member123")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	resp := postJSON(t, api.URL+"/api/auth/logout", map[string]any{}, header)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout returned %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, api.URL+"/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	me, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if me.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", me.StatusCode)
	}
	me.Body.Close()
}
