package taskservice

import (
	"log/slog"

	httpadapter "deskflow/contexts/workspace/task-service/adapters/http"
	"deskflow/contexts/workspace/task-service/adapters/memory"
	"deskflow/contexts/workspace/task-service/application"
	"deskflow/contexts/workspace/task-service/ports"
)

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
