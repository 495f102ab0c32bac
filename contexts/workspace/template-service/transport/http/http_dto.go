package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TemplateDTO struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Content    string `json:"content,omitempty"`
	UseCount   int    `json:"use_count"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  string `json:"created_at"`
}

type CreateTemplateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Content  string `json:"content,omitempty"`
}

type CreateTemplateResponse struct {
	Status string      `json:"status"`
	Data   TemplateDTO `json:"data"`
}

type ListTemplatesResponse struct {
	Status string        `json:"status"`
	Data   []TemplateDTO `json:"data"`
}

type UseTemplateRequest struct {
	DocumentName string `json:"document_name,omitempty"`
}

type UseTemplateResponse struct {
	Status string `json:"status"`
	Data   struct {
		DocumentID   string `json:"document_id"`
		DocumentName string `json:"document_name"`
		TemplateID   string `json:"template_id"`
		CreatedAt    string `json:"created_at"`
	} `json:"data"`
}
