package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	documenterrors "deskflow/contexts/workspace/document-service/domain/errors"
	documenthttp "deskflow/contexts/workspace/document-service/transport/http"
)

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req documenthttp.UploadDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.UploadDocumentHandler(r.Context(), actor, req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUploadProposal(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req documenthttp.UploadDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.UploadProposalHandler(r.Context(), actor, req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.documents.Handler.ListDocumentsHandler(r.Context(), documenthttp.ListDocumentsRequest{
		FolderID: query.Get("folder_id"),
		Status:   query.Get("status"),
		Type:     query.Get("type"),
		Category: query.Get("category"),
	})
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	resp, err := s.documents.Handler.GetDocumentHandler(r.Context(), r.PathValue("document_id"))
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViewDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	resp, err := s.documents.Handler.ViewDocumentHandler(r.Context(), actor, r.PathValue("document_id"))
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	resp, err := s.documents.Handler.DownloadDocumentHandler(r.Context(), actor, r.PathValue("document_id"))
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req documenthttp.EditDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.EditDocumentHandler(r.Context(), actor, r.PathValue("document_id"), req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeDocumentStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req documenthttp.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.ChangeStatusHandler(r.Context(), actor, r.PathValue("document_id"), req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleShareDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req documenthttp.ShareDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.ShareDocumentHandler(r.Context(), actor, r.PathValue("document_id"), req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	if err := s.documents.Handler.DeleteDocumentHandler(r.Context(), actor, r.PathValue("document_id")); err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	var req documenthttp.CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.documents.Handler.CreateFolderHandler(r.Context(), actor, req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	resp, err := s.documents.Handler.ListFoldersHandler(r.Context())
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	if err := s.documents.Handler.DeleteFolderHandler(r.Context(), actor, r.PathValue("folder_id")); err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func writeDocumentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, documenterrors.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, "document_not_found", err.Error())
	case errors.Is(err, documenterrors.ErrFolderNotFound):
		writeError(w, http.StatusNotFound, "folder_not_found", err.Error())
	case errors.Is(err, documenterrors.ErrInvalidStatus):
		writeError(w, http.StatusUnprocessableEntity, "invalid_status", err.Error())
	case errors.Is(err, documenterrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
