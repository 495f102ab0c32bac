package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"deskflow/contexts/workspace/document-service/application"
	"deskflow/contexts/workspace/document-service/ports"
	httptransport "deskflow/contexts/workspace/document-service/transport/http"
	"deskflow/internal/shared/events"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// UploadDocumentHandler godoc
// @Summary Upload a document
// @Description Stores a document record, auto-tags it from the file name and notifies the automation webhook.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body httptransport.UploadDocumentRequest true "Document metadata"
// @Success 200 {object} httptransport.UploadDocumentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/documents [post]
func (h Handler) UploadDocumentHandler(ctx context.Context, actor events.Actor, req httptransport.UploadDocumentRequest) (httptransport.UploadDocumentResponse, error) {
	document, err := h.Service.UploadDocument(ctx, actor, ports.UploadDocumentInput{
		Name:     req.Name,
		Type:     req.Type,
		Size:     req.Size,
		FolderID: req.FolderID,
		URL:      req.URL,
		Priority: req.Priority,
		Tags:     req.Tags,
	})
	if err != nil {
		return httptransport.UploadDocumentResponse{}, err
	}
	return httptransport.UploadDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

// UploadProposalHandler godoc
// @Summary Upload a proposal
// @Tags documents
// @Accept json
// @Produce json
// @Param request body httptransport.UploadDocumentRequest true "Proposal metadata"
// @Success 200 {object} httptransport.UploadDocumentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/proposals [post]
func (h Handler) UploadProposalHandler(ctx context.Context, actor events.Actor, req httptransport.UploadDocumentRequest) (httptransport.UploadDocumentResponse, error) {
	document, err := h.Service.UploadProposal(ctx, actor, ports.UploadDocumentInput{
		Name:     req.Name,
		Type:     req.Type,
		Size:     req.Size,
		FolderID: req.FolderID,
		URL:      req.URL,
		Priority: req.Priority,
		Tags:     req.Tags,
	})
	if err != nil {
		return httptransport.UploadDocumentResponse{}, err
	}
	return httptransport.UploadDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

// ListDocumentsHandler godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Param folder_id query string false "Folder filter"
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Success 200 {object} httptransport.ListDocumentsResponse
// @Router /api/documents [get]
func (h Handler) ListDocumentsHandler(ctx context.Context, req httptransport.ListDocumentsRequest) (httptransport.ListDocumentsResponse, error) {
	items, err := h.Service.ListDocuments(ctx, ports.DocumentFilter{
		FolderID: req.FolderID,
		Status:   req.Status,
		Type:     req.Type,
		Category: req.Category,
	})
	if err != nil {
		return httptransport.ListDocumentsResponse{}, err
	}
	resp := httptransport.ListDocumentsResponse{Status: "success", Data: make([]httptransport.DocumentDTO, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, toDocumentDTO(item))
	}
	return resp, nil
}

func (h Handler) GetDocumentHandler(ctx context.Context, documentID string) (httptransport.GetDocumentResponse, error) {
	document, err := h.Service.GetDocument(ctx, documentID)
	if err != nil {
		return httptransport.GetDocumentResponse{}, err
	}
	return httptransport.GetDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

// ViewDocumentHandler records a document view and returns the record.
func (h Handler) ViewDocumentHandler(ctx context.Context, actor events.Actor, documentID string) (httptransport.GetDocumentResponse, error) {
	document, err := h.Service.ViewDocument(ctx, actor, documentID)
	if err != nil {
		return httptransport.GetDocumentResponse{}, err
	}
	return httptransport.GetDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

// DownloadDocumentHandler godoc
// @Summary Download a document
// @Tags documents
// @Produce json
// @Param document_id path string true "Document id"
// @Success 200 {object} httptransport.DownloadDocumentResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/documents/{document_id}/download [post]
func (h Handler) DownloadDocumentHandler(ctx context.Context, actor events.Actor, documentID string) (httptransport.DownloadDocumentResponse, error) {
	document, err := h.Service.DownloadDocument(ctx, actor, documentID)
	if err != nil {
		return httptransport.DownloadDocumentResponse{}, err
	}
	return httptransport.DownloadDocumentResponse{Status: "success", DownloadURL: document.URL}, nil
}

func (h Handler) EditDocumentHandler(ctx context.Context, actor events.Actor, documentID string, req httptransport.EditDocumentRequest) (httptransport.GetDocumentResponse, error) {
	document, err := h.Service.EditDocument(ctx, actor, documentID, req.Changes)
	if err != nil {
		return httptransport.GetDocumentResponse{}, err
	}
	return httptransport.GetDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

func (h Handler) ChangeStatusHandler(ctx context.Context, actor events.Actor, documentID string, req httptransport.ChangeStatusRequest) (httptransport.GetDocumentResponse, error) {
	document, err := h.Service.ChangeStatus(ctx, actor, documentID, req.Status)
	if err != nil {
		return httptransport.GetDocumentResponse{}, err
	}
	return httptransport.GetDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

func (h Handler) ShareDocumentHandler(ctx context.Context, actor events.Actor, documentID string, req httptransport.ShareDocumentRequest) (httptransport.GetDocumentResponse, error) {
	document, err := h.Service.ShareDocument(ctx, actor, documentID, req.SharedWith)
	if err != nil {
		return httptransport.GetDocumentResponse{}, err
	}
	return httptransport.GetDocumentResponse{Status: "success", Data: toDocumentDTO(document)}, nil
}

func (h Handler) DeleteDocumentHandler(ctx context.Context, actor events.Actor, documentID string) error {
	return h.Service.DeleteDocument(ctx, actor, documentID)
}

func (h Handler) CreateFolderHandler(ctx context.Context, actor events.Actor, req httptransport.CreateFolderRequest) (httptransport.CreateFolderResponse, error) {
	folder, err := h.Service.CreateFolder(ctx, actor, req.Name)
	if err != nil {
		return httptransport.CreateFolderResponse{}, err
	}
	return httptransport.CreateFolderResponse{Status: "success", Data: toFolderDTO(folder)}, nil
}

func (h Handler) ListFoldersHandler(ctx context.Context) (httptransport.ListFoldersResponse, error) {
	items, err := h.Service.ListFolders(ctx)
	if err != nil {
		return httptransport.ListFoldersResponse{}, err
	}
	resp := httptransport.ListFoldersResponse{Status: "success", Data: make([]httptransport.FolderDTO, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, toFolderDTO(item))
	}
	return resp, nil
}

func (h Handler) DeleteFolderHandler(ctx context.Context, actor events.Actor, folderID string) error {
	return h.Service.DeleteFolder(ctx, actor, folderID)
}

func toDocumentDTO(document ports.Document) httptransport.DocumentDTO {
	return httptransport.DocumentDTO{
		DocumentID: document.DocumentID,
		Name:       document.Name,
		Type:       document.Type,
		Size:       document.Size,
		FolderID:   document.FolderID,
		Tags:       document.Tags,
		URL:        document.URL,
		Status:     document.Status,
		Priority:   document.Priority,
		Category:   document.Category,
		UploadedBy: document.UploadedBy,
		SharedWith: document.SharedWith,
		CreatedAt:  document.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  document.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toFolderDTO(folder ports.Folder) httptransport.FolderDTO {
	return httptransport.FolderDTO{
		FolderID:  folder.FolderID,
		Name:      folder.Name,
		CreatedBy: folder.CreatedBy,
		CreatedAt: folder.CreatedAt.UTC().Format(time.RFC3339),
	}
}
