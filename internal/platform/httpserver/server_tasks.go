package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	taskerrors "deskflow/contexts/workspace/task-service/domain/errors"
	taskhttp "deskflow/contexts/workspace/task-service/transport/http"
)

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req taskhttp.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.tasks.Handler.CreateTaskHandler(r.Context(), actor, req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.tasks.Handler.ListTasksHandler(r.Context(), taskhttp.ListTasksRequest{
		Status:     query.Get("status"),
		AssignedTo: query.Get("assigned_to"),
	})
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tasks.Handler.GetTaskHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req taskhttp.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.tasks.Handler.UpdateTaskHandler(r.Context(), actor, r.PathValue("task_id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req taskhttp.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.tasks.Handler.CompleteTaskHandler(r.Context(), actor, r.PathValue("task_id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	if err := s.tasks.Handler.DeleteTaskHandler(r.Context(), actor, r.PathValue("task_id")); err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func writeTaskDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taskerrors.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "task_not_found", err.Error())
	case errors.Is(err, taskerrors.ErrTaskAlreadyCompleted):
		writeError(w, http.StatusConflict, "task_already_completed", err.Error())
	case errors.Is(err, taskerrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
