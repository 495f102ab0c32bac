package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "deskflow/contexts/workspace/template-service/domain/errors"
	"deskflow/contexts/workspace/template-service/ports"
)

type Store struct {
	mu        sync.RWMutex
	templates map[string]ports.Template
}

func NewStore() *Store {
	now := time.Now().UTC()
	templates := map[string]ports.Template{
		"tpl_001": {
			TemplateID: "tpl_001",
			Name:       "Standard NDA",
			Category:   "legal",
			Content:    "This Non-Disclosure Agreement is entered into between...",
			UseCount:   12,
			CreatedBy:  "user_001",
			CreatedAt:  now.Add(-90 * 24 * time.Hour),
		},
		"tpl_002": {
			TemplateID: "tpl_002",
			Name:       "Project Proposal",
			Category:   "sales",
			Content:    "Executive summary\n\nScope\n\nTimeline\n\nBudget",
			UseCount:   5,
			CreatedBy:  "user_002",
			CreatedAt:  now.Add(-30 * 24 * time.Hour),
		},
	}
	return &Store{templates: templates}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

func (s *Store) CreateTemplate(ctx context.Context, template ports.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[template.TemplateID] = template
	return nil
}

func (s *Store) ListTemplates(ctx context.Context, category string) ([]ports.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Template, 0, len(s.templates))
	for _, item := range s.templates {
		if category != "" && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetTemplate(ctx context.Context, templateID string) (ports.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	template, ok := s.templates[templateID]
	if !ok {
		return ports.Template{}, domainerrors.ErrTemplateNotFound
	}
	return template, nil
}

func (s *Store) UpdateTemplate(ctx context.Context, template ports.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[template.TemplateID]; !ok {
		return domainerrors.ErrTemplateNotFound
	}
	s.templates[template.TemplateID] = template
	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[templateID]; !ok {
		return domainerrors.ErrTemplateNotFound
	}
	delete(s.templates, templateID)
	return nil
}
