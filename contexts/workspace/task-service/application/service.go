package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "deskflow/contexts/workspace/task-service/domain/errors"
	"deskflow/contexts/workspace/task-service/ports"
	"deskflow/internal/shared/events"
)

var allowedTaskStatuses = map[string]struct{}{
	"pending":     {},
	"in_progress": {},
	"blocked":     {},
	"completed":   {},
}

type Service struct {
	Repo        ports.Repository
	Events      ports.EventRecorder
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) CreateTask(ctx context.Context, actor events.Actor, input ports.CreateTaskInput) (ports.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return ports.Task{}, domainerrors.ErrInvalidRequest
	}

	now := s.Clock.Now()
	task := ports.Task{
		TaskID:      s.IDGenerator.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		Status:      "pending",
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}

	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return ports.Task{}, err
	}
	s.Events.TaskCreated(actor, toEventTask(task))
	return task, nil
}

func (s Service) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]ports.Task, error) {
	return s.Repo.ListTasks(ctx, filter)
}

func (s Service) GetTask(ctx context.Context, taskID string) (ports.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return ports.Task{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetTask(ctx, taskID)
}

// UpdateTask applies a field-change map. Unknown keys are rejected so
// the emitted changes delta matches what was actually applied.
func (s Service) UpdateTask(ctx context.Context, actor events.Actor, taskID string, changes map[string]any) (ports.Task, error) {
	if len(changes) == 0 {
		return ports.Task{}, domainerrors.ErrInvalidRequest
	}
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return ports.Task{}, err
	}

	for key, value := range changes {
		switch key {
		case "title":
			title, ok := value.(string)
			if !ok || strings.TrimSpace(title) == "" {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			task.Title = title
		case "description":
			description, ok := value.(string)
			if !ok {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			task.Description = description
		case "priority":
			priority, ok := value.(string)
			if !ok {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			task.Priority = priority
		case "assignedTo":
			assignee, ok := value.(string)
			if !ok {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			task.AssignedTo = assignee
		case "status":
			status, ok := value.(string)
			if !ok {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			if _, allowed := allowedTaskStatuses[status]; !allowed {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			task.Status = status
		case "dueDate":
			raw, ok := value.(string)
			if !ok {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			dueDate, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return ports.Task{}, domainerrors.ErrInvalidRequest
			}
			task.DueDate = dueDate
		default:
			return ports.Task{}, domainerrors.ErrInvalidRequest
		}
	}

	task.UpdatedAt = s.Clock.Now()
	if err := s.Repo.UpdateTask(ctx, task); err != nil {
		return ports.Task{}, err
	}
	s.Events.TaskUpdated(actor, toEventTask(task), changes)
	return task, nil
}

// CompleteTask transitions the task to completed, stamping completedAt
// and recording the actual hours spent.
func (s Service) CompleteTask(ctx context.Context, actor events.Actor, taskID string, actualHours float64) (ports.Task, error) {
	if actualHours < 0 {
		return ports.Task{}, domainerrors.ErrInvalidRequest
	}
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return ports.Task{}, err
	}
	if task.Status == "completed" {
		return ports.Task{}, domainerrors.ErrTaskAlreadyCompleted
	}

	now := s.Clock.Now()
	task.Status = "completed"
	task.ActualHours = actualHours
	task.CompletedAt = &now
	task.UpdatedAt = now

	if err := s.Repo.UpdateTask(ctx, task); err != nil {
		return ports.Task{}, err
	}

	resolveLogger(s.Logger).Info("task completed",
		"event", "task_completed",
		"module", "workspace/task-service",
		"layer", "application",
		"task_id", task.TaskID,
		"actual_hours", actualHours,
	)
	s.Events.TaskCompleted(actor, toEventTask(task))
	return task, nil
}

func (s Service) DeleteTask(ctx context.Context, actor events.Actor, taskID string) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	s.Events.TaskDeleted(actor, toEventTask(task))
	return nil
}

func toEventTask(task ports.Task) events.Task {
	return events.Task{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		AssignedTo:  task.AssignedTo,
		DueDate:     task.DueDate,
		Status:      task.Status,
		CompletedAt: task.CompletedAt,
		ActualHours: task.ActualHours,
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
