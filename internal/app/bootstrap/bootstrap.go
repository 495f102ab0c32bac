package bootstrap

import (
	"log/slog"
	"strings"

	authservice "deskflow/contexts/identity-access/auth-service"
	authmemory "deskflow/contexts/identity-access/auth-service/adapters/memory"
	documentservice "deskflow/contexts/workspace/document-service"
	documentpostgres "deskflow/contexts/workspace/document-service/adapters/postgres"
	taskservice "deskflow/contexts/workspace/task-service"
	taskpostgres "deskflow/contexts/workspace/task-service/adapters/postgres"
	templateservice "deskflow/contexts/workspace/template-service"
	"deskflow/internal/platform/config"
	"deskflow/internal/platform/db"
	"deskflow/internal/platform/httpserver"
	"deskflow/internal/platform/webhook"
	"deskflow/internal/shared/events"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	webhook  *webhook.Client
	logger   *slog.Logger
}

// BuildAPI wires config, the webhook notifier, the event recorder and
// the four modules. When POSTGRES_DSN is set the document and task
// repositories run on postgres; otherwise everything runs on the
// seeded in-memory stores.
func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	notifier := webhook.NewClient(cfg.WebhookURL(), cfg.WebhookTimeout, logger)
	recorder := events.Recorder{Notifier: notifier, Logger: logger}

	logger.Info("webhook endpoint resolved",
		"event", "webhook_endpoint_resolved",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"production", cfg.Production,
		"endpoint", cfg.WebhookURL(),
	)

	app := &APIApp{webhook: notifier, logger: logger}

	var documents documentservice.Module
	var tasks taskservice.Module
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		app.postgres = pg

		documentRepo := documentpostgres.NewRepository(pg.DB, logger)
		if err := documentRepo.AutoMigrate(); err != nil {
			return nil, err
		}
		documents = documentservice.NewModule(documentservice.Dependencies{
			Repo:        documentRepo,
			Events:      recorder,
			Clock:       documentpostgres.SystemClock{},
			IDGenerator: documentpostgres.UUIDGenerator{},
			Logger:      logger,
		})

		taskRepo := taskpostgres.NewRepository(pg.DB, logger)
		if err := taskRepo.AutoMigrate(); err != nil {
			return nil, err
		}
		tasks = taskservice.NewModule(taskservice.Dependencies{
			Repo:        taskRepo,
			Events:      recorder,
			Clock:       taskpostgres.SystemClock{},
			IDGenerator: taskpostgres.UUIDGenerator{},
			Logger:      logger,
		})
	} else {
		documents = documentservice.NewInMemoryModule(recorder, logger)
		tasks = taskservice.NewInMemoryModule(recorder, logger)
	}

	templates := templateservice.NewInMemoryModule(recorder, logger)

	authStore := authmemory.NewStore()
	auth := authservice.NewModule(authservice.Dependencies{
		Repo:   authStore,
		Events: recorder,
		Clock:  authStore,
		Tokens: authStore,
		Logger: logger,
	})

	app.server = httpserver.New(documents, tasks, templates, auth, logger, ":"+cfg.HTTPPort)
	return app, nil
}

// Run starts the HTTP server and blocks.
func (a *APIApp) Run() error {
	return a.server.Start()
}

// Close drains in-flight webhook deliveries and releases the database.
func (a *APIApp) Close() error {
	if a.webhook != nil {
		a.webhook.Flush()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}
