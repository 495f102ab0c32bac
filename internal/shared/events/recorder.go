package events

import (
	"log/slog"
	"time"
)

// Notifier delivers one envelope, best-effort. Implementations must
// never block the caller on transport outcome and must never panic.
type Notifier interface {
	Deliver(envelope Envelope)
}

// Recorder is the domain event catalog: one method per action, each
// shaping that action's fixed payload before handing the envelope to
// the notifier. Methods never fail; delivery outcome is the notifier's
// concern and is isolated there.
type Recorder struct {
	Notifier Notifier
	Logger   *slog.Logger
}

func (r Recorder) emit(action Action, actor Actor, data map[string]any) {
	if r.Notifier == nil {
		return
	}
	r.Notifier.Deliver(NewEnvelope(action, actor, data))
	if r.Logger != nil {
		r.Logger.Info("event recorded",
			"event", "event_recorded",
			"module", "internal/shared/events",
			"layer", "shared",
			"action", string(action),
			"actor_id", actor.ID,
		)
	}
}

func (r Recorder) DocumentUploaded(actor Actor, document Document) {
	r.emit(ActionDocumentUploaded, actor, map[string]any{
		"document": map[string]any{
			"id":       document.ID,
			"name":     document.Name,
			"type":     document.Type,
			"size":     document.Size,
			"folderId": document.FolderID,
			"tags":     document.Tags,
			"url":      document.URL,
			"status":   document.Status,
			"priority": document.Priority,
		},
	})
}

func (r Recorder) DocumentViewed(actor Actor, document Document) {
	r.emit(ActionDocumentViewed, actor, map[string]any{
		"document": map[string]any{
			"id":   document.ID,
			"name": document.Name,
			"type": document.Type,
		},
	})
}

func (r Recorder) DocumentDownloaded(actor Actor, document Document) {
	r.emit(ActionDocumentDownloaded, actor, map[string]any{
		"document": map[string]any{
			"id":   document.ID,
			"name": document.Name,
			"type": document.Type,
			"size": document.Size,
		},
	})
}

func (r Recorder) DocumentDeleted(actor Actor, document Document) {
	r.emit(ActionDocumentDeleted, actor, map[string]any{
		"document": map[string]any{
			"id":   document.ID,
			"name": document.Name,
			"type": document.Type,
		},
	})
}

func (r Recorder) DocumentStatusChanged(actor Actor, document Document, oldStatus string, newStatus string) {
	r.emit(ActionDocumentStatusChanged, actor, map[string]any{
		"document": map[string]any{
			"id":        document.ID,
			"name":      document.Name,
			"oldStatus": oldStatus,
			"newStatus": newStatus,
		},
	})
}

func (r Recorder) DocumentShared(actor Actor, document Document, sharedWith []string) {
	if sharedWith == nil {
		sharedWith = []string{}
	}
	r.emit(ActionDocumentShared, actor, map[string]any{
		"document": map[string]any{
			"id":   document.ID,
			"name": document.Name,
		},
		"sharedWith": sharedWith,
	})
}

func (r Recorder) DocumentEdited(actor Actor, document Document, changes map[string]any) {
	r.emit(ActionDocumentEdited, actor, map[string]any{
		"document": map[string]any{
			"id":   document.ID,
			"name": document.Name,
			"type": document.Type,
		},
		"changes": changes,
	})
}

func (r Recorder) TaskCreated(actor Actor, task Task) {
	r.emit(ActionTaskCreated, actor, map[string]any{
		"task": map[string]any{
			"id":          task.ID,
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"assignedTo":  task.AssignedTo,
			"dueDate":     formatTime(task.DueDate),
			"status":      task.Status,
		},
	})
}

func (r Recorder) TaskUpdated(actor Actor, task Task, changes map[string]any) {
	r.emit(ActionTaskUpdated, actor, map[string]any{
		"task": map[string]any{
			"id":     task.ID,
			"title":  task.Title,
			"status": task.Status,
		},
		"changes": changes,
	})
}

func (r Recorder) TaskCompleted(actor Actor, task Task) {
	r.emit(ActionTaskCompleted, actor, map[string]any{
		"task": map[string]any{
			"id":          task.ID,
			"title":       task.Title,
			"completedAt": formatTimePtr(task.CompletedAt),
			"actualHours": task.ActualHours,
		},
	})
}

func (r Recorder) TaskDeleted(actor Actor, task Task) {
	r.emit(ActionTaskDeleted, actor, map[string]any{
		"task": map[string]any{
			"id":    task.ID,
			"title": task.Title,
		},
	})
}

func (r Recorder) UserLogin(actor Actor, userAgent string) {
	r.emit(ActionUserLogin, actor, map[string]any{
		"loginTime": time.Now().UTC().Format(time.RFC3339),
		"userAgent": userAgent,
	})
}

func (r Recorder) UserLogout(actor Actor) {
	r.emit(ActionUserLogout, actor, map[string]any{
		"logoutTime": time.Now().UTC().Format(time.RFC3339),
	})
}

func (r Recorder) UserInvited(actor Actor, invitedEmail string, role string) {
	r.emit(ActionUserInvited, actor, map[string]any{
		"invitedEmail": invitedEmail,
		"role":         role,
	})
}

func (r Recorder) UserRoleChanged(actor Actor, userID string, oldRole string, newRole string) {
	r.emit(ActionUserRoleChanged, actor, map[string]any{
		"userId":  userID,
		"oldRole": oldRole,
		"newRole": newRole,
	})
}

func (r Recorder) UserProfileUpdated(actor Actor, changes map[string]any) {
	r.emit(ActionUserProfileUpdated, actor, map[string]any{
		"changes": changes,
	})
}

func (r Recorder) TemplateCreated(actor Actor, template Template) {
	r.emit(ActionTemplateCreated, actor, map[string]any{
		"template": map[string]any{
			"id":       template.ID,
			"name":     template.Name,
			"category": template.Category,
		},
	})
}

func (r Recorder) TemplateUsed(actor Actor, template Template, documentID string) {
	r.emit(ActionTemplateUsed, actor, map[string]any{
		"template": map[string]any{
			"id":   template.ID,
			"name": template.Name,
		},
		"documentId": documentID,
	})
}

func (r Recorder) TemplateDeleted(actor Actor, template Template) {
	r.emit(ActionTemplateDeleted, actor, map[string]any{
		"template": map[string]any{
			"id":       template.ID,
			"name":     template.Name,
			"category": template.Category,
		},
	})
}

func (r Recorder) FolderCreated(actor Actor, folder Folder) {
	r.emit(ActionFolderCreated, actor, map[string]any{
		"folder": map[string]any{
			"id":   folder.ID,
			"name": folder.Name,
		},
	})
}

func (r Recorder) FolderDeleted(actor Actor, folder Folder) {
	r.emit(ActionFolderDeleted, actor, map[string]any{
		"folder": map[string]any{
			"id":   folder.ID,
			"name": folder.Name,
		},
	})
}

func (r Recorder) ProposalUploaded(actor Actor, proposal Document) {
	r.emit(ActionProposalUploaded, actor, map[string]any{
		"proposal": map[string]any{
			"id":       proposal.ID,
			"name":     proposal.Name,
			"type":     proposal.Type,
			"size":     proposal.Size,
			"url":      proposal.URL,
			"status":   proposal.Status,
			"tags":     proposal.Tags,
			"priority": proposal.Priority,
		},
	})
}

func formatTime(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return value.UTC().Format(time.RFC3339)
}

func formatTimePtr(value *time.Time) any {
	if value == nil {
		return nil
	}
	return formatTime(*value)
}
