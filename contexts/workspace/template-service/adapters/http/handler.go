package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"deskflow/contexts/workspace/template-service/application"
	"deskflow/contexts/workspace/template-service/ports"
	httptransport "deskflow/contexts/workspace/template-service/transport/http"
	"deskflow/internal/shared/events"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateTemplateHandler godoc
// @Summary Create a template
// @Tags templates
// @Accept json
// @Produce json
// @Param request body httptransport.CreateTemplateRequest true "Template fields"
// @Success 200 {object} httptransport.CreateTemplateResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/templates [post]
func (h Handler) CreateTemplateHandler(ctx context.Context, actor events.Actor, req httptransport.CreateTemplateRequest) (httptransport.CreateTemplateResponse, error) {
	template, err := h.Service.CreateTemplate(ctx, actor, ports.CreateTemplateInput{
		Name:     req.Name,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		return httptransport.CreateTemplateResponse{}, err
	}
	return httptransport.CreateTemplateResponse{Status: "success", Data: toTemplateDTO(template)}, nil
}

func (h Handler) ListTemplatesHandler(ctx context.Context, category string) (httptransport.ListTemplatesResponse, error) {
	items, err := h.Service.ListTemplates(ctx, category)
	if err != nil {
		return httptransport.ListTemplatesResponse{}, err
	}
	resp := httptransport.ListTemplatesResponse{Status: "success", Data: make([]httptransport.TemplateDTO, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, toTemplateDTO(item))
	}
	return resp, nil
}

func (h Handler) UseTemplateHandler(ctx context.Context, actor events.Actor, templateID string, req httptransport.UseTemplateRequest) (httptransport.UseTemplateResponse, error) {
	instance, err := h.Service.UseTemplate(ctx, actor, templateID, req.DocumentName)
	if err != nil {
		return httptransport.UseTemplateResponse{}, err
	}
	resp := httptransport.UseTemplateResponse{Status: "success"}
	resp.Data.DocumentID = instance.DocumentID
	resp.Data.DocumentName = instance.DocumentName
	resp.Data.TemplateID = instance.TemplateID
	resp.Data.CreatedAt = instance.CreatedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func (h Handler) DeleteTemplateHandler(ctx context.Context, actor events.Actor, templateID string) error {
	return h.Service.DeleteTemplate(ctx, actor, templateID)
}

func toTemplateDTO(template ports.Template) httptransport.TemplateDTO {
	return httptransport.TemplateDTO{
		TemplateID: template.TemplateID,
		Name:       template.Name,
		Category:   template.Category,
		Content:    template.Content,
		UseCount:   template.UseCount,
		CreatedBy:  template.CreatedBy,
		CreatedAt:  template.CreatedAt.UTC().Format(time.RFC3339),
	}
}
