package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "deskflow/contexts/workspace/task-service/domain/errors"
	"deskflow/contexts/workspace/task-service/ports"
)

// Store is the seeded in-memory task repository. Seed ids are plain
// numeric strings, matching the source system's mock arrays.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]ports.Task
}

func NewStore() *Store {
	now := time.Now().UTC()
	tasks := map[string]ports.Task{
		"1": {
			TaskID:      "1",
			Title:       "Review Q3 financial report",
			Description: "Check figures against the ledger before sign-off",
			Priority:    "high",
			AssignedTo:  "user_002",
			DueDate:     now.Add(48 * time.Hour),
			Status:      "in_progress",
			CreatedBy:   "user_001",
			CreatedAt:   now.Add(-5 * 24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		"2": {
			TaskID:      "2",
			Title:       "Prepare client proposal",
			Description: "Draft the renewal proposal for the Acme account",
			Priority:    "high",
			AssignedTo:  "user_002",
			DueDate:     now.Add(5 * 24 * time.Hour),
			Status:      "pending",
			CreatedBy:   "user_001",
			CreatedAt:   now.Add(-3 * 24 * time.Hour),
			UpdatedAt:   now.Add(-3 * 24 * time.Hour),
		},
		"3": {
			TaskID:      "3",
			Title:       "Update brand guidelines",
			Description: "Fold in the new logo variants",
			Priority:    "low",
			AssignedTo:  "user_003",
			DueDate:     now.Add(14 * 24 * time.Hour),
			Status:      "pending",
			CreatedBy:   "user_002",
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
			UpdatedAt:   now.Add(-2 * 24 * time.Hour),
		},
	}
	return &Store{tasks: tasks}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

func (s *Store) CreateTask(ctx context.Context, task ports.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = cloneTask(task)
	return nil
}

func (s *Store) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]ports.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Task, 0, len(s.tasks))
	for _, item := range s.tasks {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && item.AssignedTo != filter.AssignedTo {
			continue
		}
		items = append(items, cloneTask(item))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetTask(ctx context.Context, taskID string) (ports.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return ports.Task{}, domainerrors.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (s *Store) UpdateTask(ctx context.Context, task ports.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.TaskID]; !ok {
		return domainerrors.ErrTaskNotFound
	}
	s.tasks[task.TaskID] = cloneTask(task)
	return nil
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		return domainerrors.ErrTaskNotFound
	}
	delete(s.tasks, taskID)
	return nil
}

func cloneTask(task ports.Task) ports.Task {
	out := task
	if task.CompletedAt != nil {
		completedAt := *task.CompletedAt
		out.CompletedAt = &completedAt
	}
	return out
}
