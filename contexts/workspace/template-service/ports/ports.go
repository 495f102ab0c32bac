package ports

import (
	"context"
	"time"

	"deskflow/internal/shared/events"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

type Template struct {
	TemplateID string
	Name       string
	Category   string
	Content    string
	UseCount   int
	CreatedBy  string
	CreatedAt  time.Time
}

// TemplateInstance is the document produced by applying a template.
type TemplateInstance struct {
	DocumentID   string
	DocumentName string
	TemplateID   string
	CreatedAt    time.Time
}

type CreateTemplateInput struct {
	Name     string
	Category string
	Content  string
}

type Repository interface {
	CreateTemplate(ctx context.Context, template Template) error
	ListTemplates(ctx context.Context, category string) ([]Template, error)
	GetTemplate(ctx context.Context, templateID string) (Template, error)
	UpdateTemplate(ctx context.Context, template Template) error
	DeleteTemplate(ctx context.Context, templateID string) error
}

type EventRecorder interface {
	TemplateCreated(actor events.Actor, template events.Template)
	TemplateUsed(actor events.Actor, template events.Template, documentID string)
	TemplateDeleted(actor events.Actor, template events.Template)
}
