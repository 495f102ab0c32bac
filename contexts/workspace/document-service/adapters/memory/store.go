package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "deskflow/contexts/workspace/document-service/domain/errors"
	"deskflow/contexts/workspace/document-service/ports"
)

// Store is the seeded in-memory repository, standing in for a database
// the way the source system's mock arrays did.
type Store struct {
	mu        sync.RWMutex
	documents map[string]ports.Document
	folders   map[string]ports.Folder
}

func NewStore() *Store {
	now := time.Now().UTC()

	folders := map[string]ports.Folder{
		"folder_001": {
			FolderID:  "folder_001",
			Name:      "Contracts",
			CreatedBy: "user_001",
			CreatedAt: now.Add(-60 * 24 * time.Hour),
		},
		"folder_002": {
			FolderID:  "folder_002",
			Name:      "Finance",
			CreatedBy: "user_001",
			CreatedAt: now.Add(-45 * 24 * time.Hour),
		},
	}

	documents := map[string]ports.Document{
		"doc_001": {
			DocumentID: "doc_001",
			Name:       "Q3_Financial_Report.pdf",
			Type:       "pdf",
			Size:       482113,
			FolderID:   "folder_002",
			Tags:       []string{"q3", "financial", "finance", "report", "analytics", "pdf"},
			URL:        "https://files.deskflow.io/documents/doc_001/Q3_Financial_Report.pdf",
			Status:     "approved",
			Priority:   "high",
			Category:   "document",
			UploadedBy: "user_001",
			SharedWith: []string{"user_002"},
			CreatedAt:  now.Add(-20 * 24 * time.Hour),
			UpdatedAt:  now.Add(-2 * 24 * time.Hour),
		},
		"doc_002": {
			DocumentID: "doc_002",
			Name:       "Brand_Guidelines.pdf",
			Type:       "pdf",
			Size:       1048576,
			Tags:       []string{"brand", "guidelines", "pdf"},
			URL:        "https://files.deskflow.io/documents/doc_002/Brand_Guidelines.pdf",
			Status:     "pending",
			Priority:   "medium",
			Category:   "document",
			UploadedBy: "user_002",
			CreatedAt:  now.Add(-7 * 24 * time.Hour),
			UpdatedAt:  now.Add(-7 * 24 * time.Hour),
		},
		"doc_003": {
			DocumentID: "doc_003",
			Name:       "Vendor_Agreement_2024.docx",
			Type:       "docx",
			Size:       68210,
			FolderID:   "folder_001",
			Tags:       []string{"vendor", "agreement", "legal", "2024", "docx"},
			URL:        "https://files.deskflow.io/documents/doc_003/Vendor_Agreement_2024.docx",
			Status:     "in_review",
			Priority:   "high",
			Category:   "document",
			UploadedBy: "user_001",
			CreatedAt:  now.Add(-3 * 24 * time.Hour),
			UpdatedAt:  now.Add(-24 * time.Hour),
		},
	}

	return &Store{
		documents: documents,
		folders:   folders,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

func (s *Store) CreateDocument(ctx context.Context, document ports.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[document.DocumentID] = cloneDocument(document)
	return nil
}

func (s *Store) ListDocuments(ctx context.Context, filter ports.DocumentFilter) ([]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Document, 0, len(s.documents))
	for _, item := range s.documents {
		if filter.FolderID != "" && item.FolderID != filter.FolderID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		items = append(items, cloneDocument(item))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetDocument(ctx context.Context, documentID string) (ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	document, ok := s.documents[documentID]
	if !ok {
		return ports.Document{}, domainerrors.ErrDocumentNotFound
	}
	return cloneDocument(document), nil
}

func (s *Store) UpdateDocument(ctx context.Context, document ports.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[document.DocumentID]; !ok {
		return domainerrors.ErrDocumentNotFound
	}
	s.documents[document.DocumentID] = cloneDocument(document)
	return nil
}

func (s *Store) DeleteDocument(ctx context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[documentID]; !ok {
		return domainerrors.ErrDocumentNotFound
	}
	delete(s.documents, documentID)
	return nil
}

func (s *Store) CreateFolder(ctx context.Context, folder ports.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders[folder.FolderID] = folder
	return nil
}

func (s *Store) ListFolders(ctx context.Context) ([]ports.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Folder, 0, len(s.folders))
	for _, item := range s.folders {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetFolder(ctx context.Context, folderID string) (ports.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, ok := s.folders[folderID]
	if !ok {
		return ports.Folder{}, domainerrors.ErrFolderNotFound
	}
	return folder, nil
}

func (s *Store) DeleteFolder(ctx context.Context, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[folderID]; !ok {
		return domainerrors.ErrFolderNotFound
	}
	delete(s.folders, folderID)
	return nil
}

func (s *Store) DetachFolderDocuments(ctx context.Context, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, document := range s.documents {
		if document.FolderID == folderID {
			document.FolderID = ""
			s.documents[id] = document
		}
	}
	return nil
}

func cloneDocument(document ports.Document) ports.Document {
	out := document
	out.Tags = append([]string(nil), document.Tags...)
	out.SharedWith = append([]string(nil), document.SharedWith...)
	return out
}
