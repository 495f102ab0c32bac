package postgresadapter

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerrors "deskflow/contexts/workspace/document-service/domain/errors"
	"deskflow/contexts/workspace/document-service/ports"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := NewRepository(db, nil)
	if err := repo.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func seedDocument(t *testing.T, repo *Repository) ports.Document {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	document := ports.Document{
		DocumentID: "doc_100",
		Name:       "Vendor_Agreement_2024.docx",
		Type:       "docx",
		Size:       68210,
		FolderID:   "folder_001",
		Tags:       []string{"vendor", "agreement", "legal"},
		URL:        "https://files.deskflow.io/documents/doc_100/Vendor_Agreement_2024.docx",
		Status:     "in_review",
		Priority:   "high",
		Category:   "document",
		UploadedBy: "user_001",
		SharedWith: []string{"user_002"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.CreateDocument(context.Background(), document); err != nil {
		t.Fatalf("create: %v", err)
	}
	return document
}

func TestUpdateDocumentPersistsClearedFolder(t *testing.T) {
	repo := newTestRepository(t)
	document := seedDocument(t, repo)

	document.FolderID = ""
	document.UpdatedAt = document.UpdatedAt.Add(time.Minute)
	if err := repo.UpdateDocument(context.Background(), document); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, err := repo.GetDocument(context.Background(), "doc_100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.FolderID != "" {
		t.Fatalf("folder not cleared, still %q", stored.FolderID)
	}
}

func TestUpdateDocumentRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	document := seedDocument(t, repo)

	document.Name = "Vendor_Agreement_2025.docx"
	document.Status = "approved"
	document.Priority = ""
	document.Tags = []string{"vendor"}
	document.SharedWith = nil
	if err := repo.UpdateDocument(context.Background(), document); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, err := repo.GetDocument(context.Background(), "doc_100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "Vendor_Agreement_2025.docx" || stored.Status != "approved" {
		t.Fatalf("unexpected stored document %+v", stored)
	}
	if stored.Priority != "" {
		t.Fatalf("priority not blanked, still %q", stored.Priority)
	}
	if !reflect.DeepEqual(stored.Tags, []string{"vendor"}) {
		t.Fatalf("unexpected tags %v", stored.Tags)
	}
	if len(stored.SharedWith) != 0 {
		t.Fatalf("shared_with not cleared: %v", stored.SharedWith)
	}
}

func TestUpdateMissingDocument(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateDocument(context.Background(), ports.Document{DocumentID: "doc_999", Name: "x"})
	if !errors.Is(err, domainerrors.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDetachFolderDocuments(t *testing.T) {
	repo := newTestRepository(t)
	seedDocument(t, repo)

	if err := repo.CreateFolder(context.Background(), ports.Folder{
		FolderID:  "folder_001",
		Name:      "Contracts",
		CreatedBy: "user_001",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("create folder: %v", err)
	}

	if err := repo.DetachFolderDocuments(context.Background(), "folder_001"); err != nil {
		t.Fatalf("detach: %v", err)
	}
	stored, err := repo.GetDocument(context.Background(), "doc_100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.FolderID != "" {
		t.Fatalf("document still attached to %q", stored.FolderID)
	}
}
