package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "deskflow/contexts/workspace/document-service/domain/errors"
	"deskflow/contexts/workspace/document-service/ports"
	"deskflow/internal/shared/events"
)

const (
	CategoryDocument = "document"
	CategoryProposal = "proposal"
)

var allowedStatuses = map[string]struct{}{
	"pending":   {},
	"in_review": {},
	"approved":  {},
	"rejected":  {},
	"archived":  {},
	"submitted": {},
}

type Service struct {
	Repo        ports.Repository
	Events      ports.EventRecorder
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// UploadDocument stores a new document and emits document_uploaded.
// Tags are the caller's tags plus tags auto-derived from the file name,
// deduplicated.
func (s Service) UploadDocument(ctx context.Context, actor events.Actor, input ports.UploadDocumentInput) (ports.Document, error) {
	return s.upload(ctx, actor, input, CategoryDocument)
}

// UploadProposal is the proposal-flavored upload; it emits
// proposal_uploaded instead of document_uploaded.
func (s Service) UploadProposal(ctx context.Context, actor events.Actor, input ports.UploadDocumentInput) (ports.Document, error) {
	return s.upload(ctx, actor, input, CategoryProposal)
}

func (s Service) upload(ctx context.Context, actor events.Actor, input ports.UploadDocumentInput, category string) (ports.Document, error) {
	if strings.TrimSpace(input.Name) == "" || input.Size < 0 {
		return ports.Document{}, domainerrors.ErrInvalidRequest
	}
	if input.FolderID != "" {
		if _, err := s.Repo.GetFolder(ctx, input.FolderID); err != nil {
			return ports.Document{}, err
		}
	}

	now := s.Clock.Now()
	document := ports.Document{
		DocumentID: s.IDGenerator.NewID(),
		Name:       input.Name,
		Type:       input.Type,
		Size:       input.Size,
		FolderID:   input.FolderID,
		Tags:       mergeTags(input.Tags, AutoTags(input.Name)),
		URL:        input.URL,
		Priority:   input.Priority,
		Category:   category,
		UploadedBy: actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if document.Type == "" {
		document.Type = typeFromName(input.Name)
	}
	if document.Priority == "" {
		document.Priority = "medium"
	}
	if category == CategoryProposal {
		document.Status = "submitted"
	} else {
		document.Status = "pending"
	}
	if document.URL == "" {
		document.URL = fmt.Sprintf("https://files.deskflow.io/documents/%s/%s", document.DocumentID, document.Name)
	}

	if err := s.Repo.CreateDocument(ctx, document); err != nil {
		return ports.Document{}, err
	}

	resolveLogger(s.Logger).Info("document uploaded",
		"event", "document_uploaded",
		"module", "workspace/document-service",
		"layer", "application",
		"document_id", document.DocumentID,
		"category", category,
	)
	if category == CategoryProposal {
		s.Events.ProposalUploaded(actor, toEventDocument(document))
	} else {
		s.Events.DocumentUploaded(actor, toEventDocument(document))
	}
	return document, nil
}

func (s Service) ListDocuments(ctx context.Context, filter ports.DocumentFilter) ([]ports.Document, error) {
	return s.Repo.ListDocuments(ctx, filter)
}

func (s Service) GetDocument(ctx context.Context, documentID string) (ports.Document, error) {
	if strings.TrimSpace(documentID) == "" {
		return ports.Document{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetDocument(ctx, documentID)
}

// ViewDocument records a view. The actual rendering defers to the
// download URL; the event is what distinguishes a view from a plain get.
func (s Service) ViewDocument(ctx context.Context, actor events.Actor, documentID string) (ports.Document, error) {
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return ports.Document{}, err
	}
	s.Events.DocumentViewed(actor, toEventDocument(document))
	return document, nil
}

func (s Service) DownloadDocument(ctx context.Context, actor events.Actor, documentID string) (ports.Document, error) {
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return ports.Document{}, err
	}
	s.Events.DocumentDownloaded(actor, toEventDocument(document))
	return document, nil
}

// EditDocument applies a field-change map. Unknown keys are rejected so
// the emitted changes delta always matches what was actually applied.
func (s Service) EditDocument(ctx context.Context, actor events.Actor, documentID string, changes map[string]any) (ports.Document, error) {
	if len(changes) == 0 {
		return ports.Document{}, domainerrors.ErrInvalidRequest
	}
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return ports.Document{}, err
	}

	for key, value := range changes {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok || strings.TrimSpace(name) == "" {
				return ports.Document{}, domainerrors.ErrInvalidRequest
			}
			document.Name = name
		case "priority":
			priority, ok := value.(string)
			if !ok {
				return ports.Document{}, domainerrors.ErrInvalidRequest
			}
			document.Priority = priority
		case "folderId":
			folderID, ok := value.(string)
			if !ok {
				return ports.Document{}, domainerrors.ErrInvalidRequest
			}
			if folderID != "" {
				if _, err := s.Repo.GetFolder(ctx, folderID); err != nil {
					return ports.Document{}, err
				}
			}
			document.FolderID = folderID
		case "tags":
			document.Tags = toStringSlice(value)
		default:
			return ports.Document{}, domainerrors.ErrInvalidRequest
		}
	}

	document.UpdatedAt = s.Clock.Now()
	if err := s.Repo.UpdateDocument(ctx, document); err != nil {
		return ports.Document{}, err
	}
	s.Events.DocumentEdited(actor, toEventDocument(document), changes)
	return document, nil
}

func (s Service) ChangeStatus(ctx context.Context, actor events.Actor, documentID string, newStatus string) (ports.Document, error) {
	if _, ok := allowedStatuses[newStatus]; !ok {
		return ports.Document{}, domainerrors.ErrInvalidStatus
	}
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return ports.Document{}, err
	}

	oldStatus := document.Status
	document.Status = newStatus
	document.UpdatedAt = s.Clock.Now()
	if err := s.Repo.UpdateDocument(ctx, document); err != nil {
		return ports.Document{}, err
	}
	s.Events.DocumentStatusChanged(actor, toEventDocument(document), oldStatus, newStatus)
	return document, nil
}

func (s Service) ShareDocument(ctx context.Context, actor events.Actor, documentID string, sharedWith []string) (ports.Document, error) {
	recipients := make([]string, 0, len(sharedWith))
	for _, recipient := range sharedWith {
		if strings.TrimSpace(recipient) != "" {
			recipients = append(recipients, strings.TrimSpace(recipient))
		}
	}
	if len(recipients) == 0 {
		return ports.Document{}, domainerrors.ErrInvalidRequest
	}

	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return ports.Document{}, err
	}

	document.SharedWith = mergeTags(document.SharedWith, recipients)
	document.UpdatedAt = s.Clock.Now()
	if err := s.Repo.UpdateDocument(ctx, document); err != nil {
		return ports.Document{}, err
	}
	s.Events.DocumentShared(actor, toEventDocument(document), recipients)
	return document, nil
}

// DeleteDocument removes the document. A missing id raises the domain
// not-found error and emits nothing.
func (s Service) DeleteDocument(ctx context.Context, actor events.Actor, documentID string) error {
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	s.Events.DocumentDeleted(actor, toEventDocument(document))
	return nil
}

func (s Service) CreateFolder(ctx context.Context, actor events.Actor, name string) (ports.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return ports.Folder{}, domainerrors.ErrInvalidRequest
	}
	folder := ports.Folder{
		FolderID:  s.IDGenerator.NewID(),
		Name:      name,
		CreatedBy: actor.ID,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Repo.CreateFolder(ctx, folder); err != nil {
		return ports.Folder{}, err
	}
	s.Events.FolderCreated(actor, events.Folder{ID: folder.FolderID, Name: folder.Name})
	return folder, nil
}

func (s Service) ListFolders(ctx context.Context) ([]ports.Folder, error) {
	return s.Repo.ListFolders(ctx)
}

// DeleteFolder detaches the folder's documents before removing it;
// documents survive their folder.
func (s Service) DeleteFolder(ctx context.Context, actor events.Actor, folderID string) error {
	folder, err := s.Repo.GetFolder(ctx, folderID)
	if err != nil {
		return err
	}
	if err := s.Repo.DetachFolderDocuments(ctx, folderID); err != nil {
		return err
	}
	if err := s.Repo.DeleteFolder(ctx, folderID); err != nil {
		return err
	}
	s.Events.FolderDeleted(actor, events.Folder{ID: folder.FolderID, Name: folder.Name})
	return nil
}

func toEventDocument(document ports.Document) events.Document {
	return events.Document{
		ID:       document.DocumentID,
		Name:     document.Name,
		Type:     document.Type,
		Size:     document.Size,
		FolderID: document.FolderID,
		Tags:     document.Tags,
		URL:      document.URL,
		Status:   document.Status,
		Priority: document.Priority,
	}
}

func mergeTags(existing []string, extra []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(extra))
	merged := make([]string, 0, len(existing)+len(extra))
	for _, value := range append(append([]string(nil), existing...), extra...) {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		merged = append(merged, value)
	}
	return merged
}

func toStringSlice(value any) []string {
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func typeFromName(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		return strings.ToLower(name[idx+1:])
	}
	return "file"
}
