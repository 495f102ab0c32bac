package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DocumentDTO struct {
	DocumentID string   `json:"document_id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Size       int64    `json:"size"`
	FolderID   string   `json:"folder_id,omitempty"`
	Tags       []string `json:"tags"`
	URL        string   `json:"url"`
	Status     string   `json:"status"`
	Priority   string   `json:"priority"`
	Category   string   `json:"category"`
	UploadedBy string   `json:"uploaded_by"`
	SharedWith []string `json:"shared_with,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type FolderDTO struct {
	FolderID  string `json:"folder_id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type UploadDocumentRequest struct {
	Name     string   `json:"name"`
	Type     string   `json:"type,omitempty"`
	Size     int64    `json:"size"`
	FolderID string   `json:"folder_id,omitempty"`
	URL      string   `json:"url,omitempty"`
	Priority string   `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UploadDocumentResponse struct {
	Status string      `json:"status"`
	Data   DocumentDTO `json:"data"`
}

type ListDocumentsRequest struct {
	FolderID string
	Status   string
	Type     string
	Category string
}

type ListDocumentsResponse struct {
	Status string        `json:"status"`
	Data   []DocumentDTO `json:"data"`
}

type GetDocumentResponse struct {
	Status string      `json:"status"`
	Data   DocumentDTO `json:"data"`
}

type DownloadDocumentResponse struct {
	Status      string `json:"status"`
	DownloadURL string `json:"download_url"`
}

type EditDocumentRequest struct {
	Changes map[string]any `json:"changes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type ShareDocumentRequest struct {
	SharedWith []string `json:"shared_with"`
}

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type CreateFolderResponse struct {
	Status string    `json:"status"`
	Data   FolderDTO `json:"data"`
}

type ListFoldersResponse struct {
	Status string      `json:"status"`
	Data   []FolderDTO `json:"data"`
}
