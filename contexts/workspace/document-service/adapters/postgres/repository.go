package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "deskflow/contexts/workspace/document-service/domain/errors"
	"deskflow/contexts/workspace/document-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the document and folder tables. Called from
// bootstrap when a DSN is configured.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&documentModel{}, &folderModel{})
}

type documentModel struct {
	DocumentID string `gorm:"primaryKey;column:document_id"`
	Name       string `gorm:"column:name"`
	Type       string `gorm:"column:type"`
	Size       int64  `gorm:"column:size"`
	FolderID   string `gorm:"column:folder_id;index"`
	Tags       string `gorm:"column:tags"`
	URL        string `gorm:"column:url"`
	Status     string `gorm:"column:status;index"`
	Priority   string `gorm:"column:priority"`
	Category   string `gorm:"column:category;index"`
	UploadedBy string `gorm:"column:uploaded_by"`
	SharedWith string `gorm:"column:shared_with"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentModel) TableName() string { return "documents" }

type folderModel struct {
	FolderID  string `gorm:"primaryKey;column:folder_id"`
	Name      string `gorm:"column:name"`
	CreatedBy string `gorm:"column:created_by"`
	CreatedAt time.Time
}

func (folderModel) TableName() string { return "folders" }

func (r *Repository) CreateDocument(ctx context.Context, document ports.Document) error {
	return r.db.WithContext(ctx).Create(toDocumentModel(document)).Error
}

func (r *Repository) ListDocuments(ctx context.Context, filter ports.DocumentFilter) ([]ports.Document, error) {
	tx := r.db.WithContext(ctx).Model(&documentModel{})
	if filter.FolderID != "" {
		tx = tx.Where("folder_id = ?", filter.FolderID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	var rows []documentModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.Document, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetDocument(ctx context.Context, documentID string) (ports.Document, error) {
	var row documentModel
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Document{}, domainerrors.ErrDocumentNotFound
		}
		return ports.Document{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateDocument(ctx context.Context, document ports.Document) error {
	// Map form: struct-form Updates skips zero values, which would drop
	// legitimate writes like clearing folder_id.
	result := r.db.WithContext(ctx).
		Model(&documentModel{}).
		Where("document_id = ?", document.DocumentID).
		Updates(map[string]any{
			"name":        document.Name,
			"type":        document.Type,
			"size":        document.Size,
			"folder_id":   document.FolderID,
			"tags":        encodeStrings(document.Tags),
			"url":         document.URL,
			"status":      document.Status,
			"priority":    document.Priority,
			"category":    document.Category,
			"shared_with": encodeStrings(document.SharedWith),
			"updated_at":  document.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDocumentNotFound
	}
	return nil
}

func (r *Repository) DeleteDocument(ctx context.Context, documentID string) error {
	result := r.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&documentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDocumentNotFound
	}
	return nil
}

func (r *Repository) CreateFolder(ctx context.Context, folder ports.Folder) error {
	return r.db.WithContext(ctx).Create(&folderModel{
		FolderID:  folder.FolderID,
		Name:      folder.Name,
		CreatedBy: folder.CreatedBy,
		CreatedAt: folder.CreatedAt,
	}).Error
}

func (r *Repository) ListFolders(ctx context.Context) ([]ports.Folder, error) {
	var rows []folderModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.Folder, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.Folder{
			FolderID:  row.FolderID,
			Name:      row.Name,
			CreatedBy: row.CreatedBy,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) GetFolder(ctx context.Context, folderID string) (ports.Folder, error) {
	var row folderModel
	err := r.db.WithContext(ctx).Where("folder_id = ?", folderID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Folder{}, domainerrors.ErrFolderNotFound
		}
		return ports.Folder{}, err
	}
	return ports.Folder{
		FolderID:  row.FolderID,
		Name:      row.Name,
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *Repository) DeleteFolder(ctx context.Context, folderID string) error {
	result := r.db.WithContext(ctx).Where("folder_id = ?", folderID).Delete(&folderModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrFolderNotFound
	}
	return nil
}

func (r *Repository) DetachFolderDocuments(ctx context.Context, folderID string) error {
	return r.db.WithContext(ctx).
		Model(&documentModel{}).
		Where("folder_id = ?", folderID).
		Update("folder_id", "").
		Error
}

func toDocumentModel(document ports.Document) *documentModel {
	return &documentModel{
		DocumentID: document.DocumentID,
		Name:       document.Name,
		Type:       document.Type,
		Size:       document.Size,
		FolderID:   document.FolderID,
		Tags:       encodeStrings(document.Tags),
		URL:        document.URL,
		Status:     document.Status,
		Priority:   document.Priority,
		Category:   document.Category,
		UploadedBy: document.UploadedBy,
		SharedWith: encodeStrings(document.SharedWith),
		CreatedAt:  document.CreatedAt,
		UpdatedAt:  document.UpdatedAt,
	}
}

func (m documentModel) toEntity() ports.Document {
	return ports.Document{
		DocumentID: m.DocumentID,
		Name:       m.Name,
		Type:       m.Type,
		Size:       m.Size,
		FolderID:   m.FolderID,
		Tags:       decodeStrings(m.Tags),
		URL:        m.URL,
		Status:     m.Status,
		Priority:   m.Priority,
		Category:   m.Category,
		UploadedBy: m.UploadedBy,
		SharedWith: decodeStrings(m.SharedWith),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
