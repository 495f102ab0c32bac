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

type Document struct {
	DocumentID string
	Name       string
	Type       string
	Size       int64
	FolderID   string
	Tags       []string
	URL        string
	Status     string
	Priority   string
	Category   string // document or proposal
	UploadedBy string
	SharedWith []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Folder struct {
	FolderID  string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

type DocumentFilter struct {
	FolderID string
	Status   string
	Type     string
	Category string
}

type UploadDocumentInput struct {
	Name     string
	Type     string
	Size     int64
	FolderID string
	URL      string
	Priority string
	Tags     []string
}

type Repository interface {
	CreateDocument(ctx context.Context, document Document) error
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]Document, error)
	GetDocument(ctx context.Context, documentID string) (Document, error)
	UpdateDocument(ctx context.Context, document Document) error
	DeleteDocument(ctx context.Context, documentID string) error

	CreateFolder(ctx context.Context, folder Folder) error
	ListFolders(ctx context.Context) ([]Folder, error)
	GetFolder(ctx context.Context, folderID string) (Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
	// DetachFolderDocuments clears folderId on documents that lived in
	// the folder; deleting a folder never cascades to its documents.
	DetachFolderDocuments(ctx context.Context, folderID string) error
}

// EventRecorder is the document-facing slice of the shared event
// catalog. Emission happens after a mutation succeeds, never before.
type EventRecorder interface {
	DocumentUploaded(actor events.Actor, document events.Document)
	ProposalUploaded(actor events.Actor, proposal events.Document)
	DocumentViewed(actor events.Actor, document events.Document)
	DocumentDownloaded(actor events.Actor, document events.Document)
	DocumentEdited(actor events.Actor, document events.Document, changes map[string]any)
	DocumentStatusChanged(actor events.Actor, document events.Document, oldStatus string, newStatus string)
	DocumentShared(actor events.Actor, document events.Document, sharedWith []string)
	DocumentDeleted(actor events.Actor, document events.Document)
	FolderCreated(actor events.Actor, folder events.Folder)
	FolderDeleted(actor events.Actor, folder events.Folder)
}
