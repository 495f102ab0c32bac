package documentservice

import (
	"log/slog"

	httpadapter "deskflow/contexts/workspace/document-service/adapters/http"
	"deskflow/contexts/workspace/document-service/adapters/memory"
	"deskflow/contexts/workspace/document-service/application"
	"deskflow/contexts/workspace/document-service/ports"
)

// Module is the composition surface for the document service.
// Runtime wiring consumes Handler; Store is exposed for tests.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo        ports.Repository
	Events      ports.EventRecorder
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repo,
		Events:      deps.Events,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule wires the service against the seeded in-memory
// store, the default runtime path when no database is configured.
func NewInMemoryModule(recorder ports.EventRecorder, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:        store,
		Events:      recorder,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
