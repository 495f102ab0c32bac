package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "deskflow/contexts/workspace/template-service/domain/errors"
	"deskflow/contexts/workspace/template-service/ports"
	"deskflow/internal/shared/events"
)

type Service struct {
	Repo        ports.Repository
	Events      ports.EventRecorder
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) CreateTemplate(ctx context.Context, actor events.Actor, input ports.CreateTemplateInput) (ports.Template, error) {
	if strings.TrimSpace(input.Name) == "" {
		return ports.Template{}, domainerrors.ErrInvalidRequest
	}

	template := ports.Template{
		TemplateID: s.IDGenerator.NewID(),
		Name:       input.Name,
		Category:   input.Category,
		Content:    input.Content,
		CreatedBy:  actor.ID,
		CreatedAt:  s.Clock.Now(),
	}
	if template.Category == "" {
		template.Category = "general"
	}

	if err := s.Repo.CreateTemplate(ctx, template); err != nil {
		return ports.Template{}, err
	}
	s.Events.TemplateCreated(actor, toEventTemplate(template))
	return template, nil
}

func (s Service) ListTemplates(ctx context.Context, category string) ([]ports.Template, error) {
	return s.Repo.ListTemplates(ctx, category)
}

// UseTemplate instantiates a document name from the template and bumps
// its use counter. The instance carries a fresh document id so the
// emitted event can reference it.
func (s Service) UseTemplate(ctx context.Context, actor events.Actor, templateID string, documentName string) (ports.TemplateInstance, error) {
	template, err := s.Repo.GetTemplate(ctx, templateID)
	if err != nil {
		return ports.TemplateInstance{}, err
	}

	if strings.TrimSpace(documentName) == "" {
		documentName = fmt.Sprintf("%s (from template)", template.Name)
	}
	instance := ports.TemplateInstance{
		DocumentID:   s.IDGenerator.NewID(),
		DocumentName: documentName,
		TemplateID:   template.TemplateID,
		CreatedAt:    s.Clock.Now(),
	}

	template.UseCount++
	if err := s.Repo.UpdateTemplate(ctx, template); err != nil {
		return ports.TemplateInstance{}, err
	}
	s.Events.TemplateUsed(actor, toEventTemplate(template), instance.DocumentID)
	return instance, nil
}

func (s Service) DeleteTemplate(ctx context.Context, actor events.Actor, templateID string) error {
	template, err := s.Repo.GetTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteTemplate(ctx, templateID); err != nil {
		return err
	}
	s.Events.TemplateDeleted(actor, toEventTemplate(template))
	return nil
}

func toEventTemplate(template ports.Template) events.Template {
	return events.Template{
		ID:       template.TemplateID,
		Name:     template.Name,
		Category: template.Category,
	}
}
