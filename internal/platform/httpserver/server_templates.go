package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	templateerrors "deskflow/contexts/workspace/template-service/domain/errors"
	templatehttp "deskflow/contexts/workspace/template-service/transport/http"
)

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req templatehttp.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.templates.Handler.CreateTemplateHandler(r.Context(), actor, req)
	if err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	resp, err := s.templates.Handler.ListTemplatesHandler(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUseTemplate(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req templatehttp.UseTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.templates.Handler.UseTemplateHandler(r.Context(), actor, r.PathValue("template_id"), req)
	if err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	if err := s.templates.Handler.DeleteTemplateHandler(r.Context(), actor, r.PathValue("template_id")); err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func writeTemplateDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, templateerrors.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, "template_not_found", err.Error())
	case errors.Is(err, templateerrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
