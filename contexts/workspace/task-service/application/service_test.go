package application

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"deskflow/contexts/workspace/task-service/adapters/memory"
	domainerrors "deskflow/contexts/workspace/task-service/domain/errors"
	"deskflow/contexts/workspace/task-service/ports"
	"deskflow/internal/shared/events"
)

type captureNotifier struct {
	envelopes []events.Envelope
}

func (c *captureNotifier) Deliver(envelope events.Envelope) {
	c.envelopes = append(c.envelopes, envelope)
}

var actor = events.Actor{
	ID:    "user_002",
	Name:  "Marcus Webb",
	Email: "marcus.webb@deskflow.io",
	Role:  "manager",
}

func newTestService() (Service, *captureNotifier) {
	store := memory.NewStore()
	capture := &captureNotifier{}
	return Service{
		Repo:        store,
		Events:      events.Recorder{Notifier: capture},
		Clock:       store,
		IDGenerator: store,
	}, capture
}

func lastEnvelope(t *testing.T, capture *captureNotifier) events.Envelope {
	t.Helper()
	if len(capture.envelopes) == 0 {
		t.Fatalf("no envelopes captured")
	}
	return capture.envelopes[len(capture.envelopes)-1]
}

func TestCreateTaskDefaultsAndEvent(t *testing.T) {
	service, capture := newTestService()

	task, err := service.CreateTask(context.Background(), actor, ports.CreateTaskInput{
		Title:      "Schedule vendor call",
		AssignedTo: "user_003",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != "pending" || task.Priority != "medium" {
		t.Fatalf("unexpected defaults status=%q priority=%q", task.Status, task.Priority)
	}
	if task.CreatedBy != actor.ID {
		t.Fatalf("createdBy not stamped from actor: %q", task.CreatedBy)
	}

	envelope := lastEnvelope(t, capture)
	if envelope.Action != events.ActionTaskCreated {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	payload := envelope.Data["task"].(map[string]any)
	if payload["title"] != "Schedule vendor call" || payload["assignedTo"] != "user_003" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestCreateTaskRejectsBlankTitle(t *testing.T) {
	service, capture := newTestService()

	_, err := service.CreateTask(context.Background(), actor, ports.CreateTaskInput{Title: "   "})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if len(capture.envelopes) != 0 {
		t.Fatalf("rejected create must not emit")
	}
}

func TestCompleteTaskStampsCompletionAndHours(t *testing.T) {
	service, capture := newTestService()

	task, err := service.CompleteTask(context.Background(), actor, "2", 3)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if task.Status != "completed" {
		t.Fatalf("unexpected status %q", task.Status)
	}
	if task.CompletedAt == nil {
		t.Fatalf("completedAt not stamped")
	}
	if task.ActualHours != 3 {
		t.Fatalf("unexpected actualHours %v", task.ActualHours)
	}

	envelope := lastEnvelope(t, capture)
	if envelope.Action != events.ActionTaskCompleted {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	payload := envelope.Data["task"].(map[string]any)
	if payload["id"] != "2" || payload["title"] != "Prepare client proposal" {
		t.Fatalf("unexpected payload %#v", payload)
	}
	if payload["actualHours"] != float64(3) {
		t.Fatalf("unexpected actualHours in event: %v", payload["actualHours"])
	}
	if payload["completedAt"] == nil {
		t.Fatalf("completedAt missing from event")
	}
}

func TestCompleteTaskTwiceConflicts(t *testing.T) {
	service, capture := newTestService()

	if _, err := service.CompleteTask(context.Background(), actor, "2", 3); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	_, err := service.CompleteTask(context.Background(), actor, "2", 4)
	if !errors.Is(err, domainerrors.ErrTaskAlreadyCompleted) {
		t.Fatalf("expected ErrTaskAlreadyCompleted, got %v", err)
	}
	if len(capture.envelopes) != 1 {
		t.Fatalf("second completion must not emit, got %d envelopes", len(capture.envelopes))
	}
}

func TestCompleteTaskRejectsNegativeHours(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CompleteTask(context.Background(), actor, "2", -1)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUpdateTaskAppliesChangesAndEmitsDelta(t *testing.T) {
	service, capture := newTestService()

	changes := map[string]any{"status": "in_progress", "priority": "high"}
	task, err := service.UpdateTask(context.Background(), actor, "3", changes)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if task.Status != "in_progress" || task.Priority != "high" {
		t.Fatalf("changes not applied: %+v", task)
	}

	envelope := lastEnvelope(t, capture)
	if envelope.Action != events.ActionTaskUpdated {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	if !reflect.DeepEqual(envelope.Data["changes"], changes) {
		t.Fatalf("event changes %v, want %v", envelope.Data["changes"], changes)
	}
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	service, _ := newTestService()

	_, err := service.UpdateTask(context.Background(), actor, "3", map[string]any{"status": "parked"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUpdateTaskRejectsUnknownField(t *testing.T) {
	service, capture := newTestService()

	_, err := service.UpdateTask(context.Background(), actor, "3", map[string]any{"owner": "user_001"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if len(capture.envelopes) != 0 {
		t.Fatalf("rejected update must not emit")
	}
}

func TestUpdateTaskParsesDueDate(t *testing.T) {
	service, _ := newTestService()

	task, err := service.UpdateTask(context.Background(), actor, "1", map[string]any{"dueDate": "2026-09-15T09:00:00Z"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := task.DueDate.Format("2006-01-02"); got != "2026-09-15" {
		t.Fatalf("unexpected dueDate %s", got)
	}

	if _, err := service.UpdateTask(context.Background(), actor, "1", map[string]any{"dueDate": "next tuesday"}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unparseable date, got %v", err)
	}
}

func TestDeleteMissingTaskEmitsNothing(t *testing.T) {
	service, capture := newTestService()

	err := service.DeleteTask(context.Background(), actor, "42")
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if len(capture.envelopes) != 0 {
		t.Fatalf("failed delete must not emit")
	}
}

func TestDeleteTaskEmitsAfterRemoval(t *testing.T) {
	service, capture := newTestService()

	if err := service.DeleteTask(context.Background(), actor, "3"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := service.GetTask(context.Background(), "3"); !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("task should be gone, got %v", err)
	}
	envelope := lastEnvelope(t, capture)
	if envelope.Action != events.ActionTaskDeleted {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	payload := envelope.Data["task"].(map[string]any)
	if payload["id"] != "3" || payload["title"] != "Update brand guidelines" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}
