package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"deskflow/contexts/workspace/task-service/application"
	domainerrors "deskflow/contexts/workspace/task-service/domain/errors"
	"deskflow/contexts/workspace/task-service/ports"
	httptransport "deskflow/contexts/workspace/task-service/transport/http"
	"deskflow/internal/shared/events"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateTaskHandler godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body httptransport.CreateTaskRequest true "Task fields"
// @Success 200 {object} httptransport.CreateTaskResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/tasks [post]
func (h Handler) CreateTaskHandler(ctx context.Context, actor events.Actor, req httptransport.CreateTaskRequest) (httptransport.CreateTaskResponse, error) {
	input := ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return httptransport.CreateTaskResponse{}, domainerrors.ErrInvalidRequest
		}
		input.DueDate = dueDate
	}

	task, err := h.Service.CreateTask(ctx, actor, input)
	if err != nil {
		return httptransport.CreateTaskResponse{}, err
	}
	return httptransport.CreateTaskResponse{Status: "success", Data: toTaskDTO(task)}, nil
}

// ListTasksHandler godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param status query string false "Status filter"
// @Param assigned_to query string false "Assignee filter"
// @Success 200 {object} httptransport.ListTasksResponse
// @Router /api/tasks [get]
func (h Handler) ListTasksHandler(ctx context.Context, req httptransport.ListTasksRequest) (httptransport.ListTasksResponse, error) {
	items, err := h.Service.ListTasks(ctx, ports.TaskFilter{
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return httptransport.ListTasksResponse{}, err
	}
	resp := httptransport.ListTasksResponse{Status: "success", Data: make([]httptransport.TaskDTO, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, toTaskDTO(item))
	}
	return resp, nil
}

func (h Handler) GetTaskHandler(ctx context.Context, taskID string) (httptransport.GetTaskResponse, error) {
	task, err := h.Service.GetTask(ctx, taskID)
	if err != nil {
		return httptransport.GetTaskResponse{}, err
	}
	return httptransport.GetTaskResponse{Status: "success", Data: toTaskDTO(task)}, nil
}

func (h Handler) UpdateTaskHandler(ctx context.Context, actor events.Actor, taskID string, req httptransport.UpdateTaskRequest) (httptransport.GetTaskResponse, error) {
	task, err := h.Service.UpdateTask(ctx, actor, taskID, req.Changes)
	if err != nil {
		return httptransport.GetTaskResponse{}, err
	}
	return httptransport.GetTaskResponse{Status: "success", Data: toTaskDTO(task)}, nil
}

// CompleteTaskHandler godoc
// @Summary Complete a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task id"
// @Param request body httptransport.CompleteTaskRequest true "Actual hours"
// @Success 200 {object} httptransport.GetTaskResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /api/tasks/{task_id}/complete [post]
func (h Handler) CompleteTaskHandler(ctx context.Context, actor events.Actor, taskID string, req httptransport.CompleteTaskRequest) (httptransport.GetTaskResponse, error) {
	task, err := h.Service.CompleteTask(ctx, actor, taskID, req.ActualHours)
	if err != nil {
		return httptransport.GetTaskResponse{}, err
	}
	return httptransport.GetTaskResponse{Status: "success", Data: toTaskDTO(task)}, nil
}

func (h Handler) DeleteTaskHandler(ctx context.Context, actor events.Actor, taskID string) error {
	return h.Service.DeleteTask(ctx, actor, taskID)
}

func toTaskDTO(task ports.Task) httptransport.TaskDTO {
	dto := httptransport.TaskDTO{
		TaskID:      task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		AssignedTo:  task.AssignedTo,
		Status:      task.Status,
		ActualHours: task.ActualHours,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if !task.DueDate.IsZero() {
		dto.DueDate = task.DueDate.UTC().Format(time.RFC3339)
	}
	if task.CompletedAt != nil {
		dto.CompletedAt = task.CompletedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
