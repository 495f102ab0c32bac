package authservice

import (
	"log/slog"

	httpadapter "deskflow/contexts/identity-access/auth-service/adapters/http"
	"deskflow/contexts/identity-access/auth-service/adapters/memory"
	"deskflow/contexts/identity-access/auth-service/application"
	"deskflow/contexts/identity-access/auth-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Events ports.EventRecorder
	Clock  ports.Clock
	Tokens ports.TokenGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Events: deps.Events,
		Clock:  deps.Clock,
		Tokens: deps.Tokens,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

func NewInMemoryModule(recorder ports.EventRecorder, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Events: recorder,
		Clock:  store,
		Tokens: store,
		Logger: logger,
	})
	module.Store = store
	return module
}
