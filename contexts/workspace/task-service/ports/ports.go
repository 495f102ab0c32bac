package ports

import (
	"context"
	"time"

	"deskflow/internal/shared/events"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

type Task struct {
	TaskID      string
	Title       string
	Description string
	Priority    string
	AssignedTo  string
	DueDate     time.Time
	Status      string
	ActualHours float64
	CompletedAt *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskFilter struct {
	Status     string
	AssignedTo string
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	AssignedTo  string
	DueDate     time.Time
}

type Repository interface {
	CreateTask(ctx context.Context, task Task) error
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)
	GetTask(ctx context.Context, taskID string) (Task, error)
	UpdateTask(ctx context.Context, task Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

// EventRecorder is the task-facing slice of the shared event catalog.
type EventRecorder interface {
	TaskCreated(actor events.Actor, task events.Task)
	TaskUpdated(actor events.Actor, task events.Task, changes map[string]any)
	TaskCompleted(actor events.Actor, task events.Task)
	TaskDeleted(actor events.Actor, task events.Task)
}
