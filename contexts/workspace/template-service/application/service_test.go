package application

import (
	"context"
	"errors"
	"testing"

	"deskflow/contexts/workspace/template-service/adapters/memory"
	domainerrors "deskflow/contexts/workspace/template-service/domain/errors"
	"deskflow/contexts/workspace/template-service/ports"
	"deskflow/internal/shared/events"
)

type captureNotifier struct {
	envelopes []events.Envelope
}

func (c *captureNotifier) Deliver(envelope events.Envelope) {
	c.envelopes = append(c.envelopes, envelope)
}

var actor = events.Actor{
	ID:    "user_001",
	Name:  "Sarah Chen",
	Email: "sarah.chen@deskflow.io",
	Role:  "admin",
}

func newTestService() (Service, *captureNotifier) {
	store := memory.NewStore()
	capture := &captureNotifier{}
	return Service{
		Repo:        store,
		Events:      events.Recorder{Notifier: capture},
		Clock:       store,
		IDGenerator: store,
	}, capture
}

func lastEnvelope(t *testing.T, capture *captureNotifier) events.Envelope {
	t.Helper()
	if len(capture.envelopes) == 0 {
		t.Fatalf("no envelopes captured")
	}
	return capture.envelopes[len(capture.envelopes)-1]
}

func TestCreateTemplateDefaultsCategoryAndEmits(t *testing.T) {
	service, capture := newTestService()

	template, err := service.CreateTemplate(context.Background(), actor, ports.CreateTemplateInput{
		Name: "Weekly Status Update",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if template.Category != "general" {
		t.Fatalf("unexpected category %q", template.Category)
	}

	envelope := lastEnvelope(t, capture)
	if envelope.Action != events.ActionTemplateCreated {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	payload := envelope.Data["template"].(map[string]any)
	if payload["name"] != "Weekly Status Update" || payload["category"] != "general" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestCreateTemplateRejectsBlankName(t *testing.T) {
	service, capture := newTestService()

	_, err := service.CreateTemplate(context.Background(), actor, ports.CreateTemplateInput{Name: " "})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if len(capture.envelopes) != 0 {
		t.Fatalf("rejected create must not emit")
	}
}

func TestUseTemplateBumpsCountAndReferencesDocument(t *testing.T) {
	service, capture := newTestService()

	instance, err := service.UseTemplate(context.Background(), actor, "tpl_001", "Acme NDA")
	if err != nil {
		t.Fatalf("use failed: %v", err)
	}
	if instance.DocumentID == "" || instance.DocumentName != "Acme NDA" {
		t.Fatalf("unexpected instance %+v", instance)
	}

	templates, err := service.ListTemplates(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, template := range templates {
		if template.TemplateID == "tpl_001" && template.UseCount < 1 {
			t.Fatalf("use count not bumped: %+v", template)
		}
	}

	envelope := lastEnvelope(t, capture)
	if envelope.Action != events.ActionTemplateUsed {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	if envelope.Data["documentId"] != instance.DocumentID {
		t.Fatalf("event documentId %v, want %v", envelope.Data["documentId"], instance.DocumentID)
	}
	payload := envelope.Data["template"].(map[string]any)
	if payload["id"] != "tpl_001" || payload["name"] != "Standard NDA" {
		t.Fatalf("unexpected template payload %#v", payload)
	}
}

func TestUseTemplateDefaultsDocumentName(t *testing.T) {
	service, _ := newTestService()

	instance, err := service.UseTemplate(context.Background(), actor, "tpl_002", "")
	if err != nil {
		t.Fatalf("use failed: %v", err)
	}
	if instance.DocumentName != "Project Proposal (from template)" {
		t.Fatalf("unexpected default name %q", instance.DocumentName)
	}
}

func TestUseMissingTemplate(t *testing.T) {
	service, capture := newTestService()

	_, err := service.UseTemplate(context.Background(), actor, "tpl_999", "X")
	if !errors.Is(err, domainerrors.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if len(capture.envelopes) != 0 {
		t.Fatalf("failed use must not emit")
	}
}

func TestDeleteTemplateEmitsAfterRemoval(t *testing.T) {
	service, capture := newTestService()

	if err := service.DeleteTemplate(context.Background(), actor, "tpl_001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := service.UseTemplate(context.Background(), actor, "tpl_001", "X"); !errors.Is(err, domainerrors.ErrTemplateNotFound) {
		t.Fatalf("template should be gone, got %v", err)
	}

	envelope := capture.envelopes[0]
	if envelope.Action != events.ActionTemplateDeleted {
		t.Fatalf("unexpected action %s", envelope.Action)
	}
	payload := envelope.Data["template"].(map[string]any)
	if payload["name"] != "Standard NDA" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}
