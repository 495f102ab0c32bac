package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	authservice "deskflow/contexts/identity-access/auth-service"
	documentservice "deskflow/contexts/workspace/document-service"
	taskservice "deskflow/contexts/workspace/task-service"
	templateservice "deskflow/contexts/workspace/template-service"
	"deskflow/internal/shared/events"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "deskflow/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	documents documentservice.Module
	tasks     taskservice.Module
	templates templateservice.Module
	auth      authservice.Module
}

func New(
	documents documentservice.Module,
	tasks taskservice.Module,
	templates templateservice.Module,
	auth authservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		documents: documents,
		tasks:     tasks,
		templates: templates,
		auth:      auth,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	s.mux.HandleFunc("GET /api/auth/me", s.handleCurrentUser)
	s.mux.HandleFunc("PATCH /api/auth/profile", s.handleUpdateProfile)
	s.mux.HandleFunc("POST /api/auth/invite", s.handleInviteUser)
	s.mux.HandleFunc("POST /api/auth/users/{user_id}/role", s.handleChangeRole)

	s.mux.HandleFunc("POST /api/documents", s.handleUploadDocument)
	s.mux.HandleFunc("GET /api/documents", s.handleListDocuments)
	s.mux.HandleFunc("GET /api/documents/{document_id}", s.handleGetDocument)
	s.mux.HandleFunc("POST /api/documents/{document_id}/view", s.handleViewDocument)
	s.mux.HandleFunc("POST /api/documents/{document_id}/download", s.handleDownloadDocument)
	s.mux.HandleFunc("PATCH /api/documents/{document_id}", s.handleEditDocument)
	s.mux.HandleFunc("POST /api/documents/{document_id}/status", s.handleChangeDocumentStatus)
	s.mux.HandleFunc("POST /api/documents/{document_id}/share", s.handleShareDocument)
	s.mux.HandleFunc("DELETE /api/documents/{document_id}", s.handleDeleteDocument)
	s.mux.HandleFunc("POST /api/proposals", s.handleUploadProposal)

	s.mux.HandleFunc("POST /api/folders", s.handleCreateFolder)
	s.mux.HandleFunc("GET /api/folders", s.handleListFolders)
	s.mux.HandleFunc("DELETE /api/folders/{folder_id}", s.handleDeleteFolder)

	s.mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	s.mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	s.mux.HandleFunc("GET /api/tasks/{task_id}", s.handleGetTask)
	s.mux.HandleFunc("PATCH /api/tasks/{task_id}", s.handleUpdateTask)
	s.mux.HandleFunc("POST /api/tasks/{task_id}/complete", s.handleCompleteTask)
	s.mux.HandleFunc("DELETE /api/tasks/{task_id}", s.handleDeleteTask)

	s.mux.HandleFunc("POST /api/templates", s.handleCreateTemplate)
	s.mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	s.mux.HandleFunc("POST /api/templates/{template_id}/use", s.handleUseTemplate)
	s.mux.HandleFunc("DELETE /api/templates/{template_id}", s.handleDeleteTemplate)
}

// resolveActor maps the request's bearer token, or its X-User-Id
// fallback, to the actor snapshot stamped on event envelopes. Writes
// 401 and returns false when neither resolves.
func (s *Server) resolveActor(w http.ResponseWriter, r *http.Request) (events.Actor, bool) {
	token := bearerToken(r)
	fallback := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if token == "" && fallback == "" {
		writeError(w, http.StatusUnauthorized, "missing_actor", "bearer token or X-User-Id header is required")
		return events.Actor{}, false
	}

	actor, err := s.auth.Handler.ResolveActorHandler(r.Context(), token, fallback)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unknown_actor", "could not resolve acting user")
		return events.Actor{}, false
	}
	return actor, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
