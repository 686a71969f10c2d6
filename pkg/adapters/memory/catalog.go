package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// Catalog implements ports.TemplateCatalog from an in-memory template set.
// It backs offline runs and tests; the production catalog lives behind HTTP.
type Catalog struct {
	templates map[string]domain.TemplateSpec
	mu        sync.RWMutex
}

// NewCatalog creates a catalog seeded with the given templates.
func NewCatalog(templates ...domain.TemplateSpec) *Catalog {
	c := &Catalog{templates: make(map[string]domain.TemplateSpec)}
	for _, t := range templates {
		c.templates[t.ID] = t
	}
	return c
}

// Add registers or replaces a template.
func (c *Catalog) Add(t domain.TemplateSpec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates[t.ID] = t
}

// ListTemplates returns summaries sorted by ID for deterministic output.
func (c *Catalog) ListTemplates(ctx context.Context) ([]domain.TemplateSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.TemplateSummary, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, domain.TemplateSummary{
			ID:       t.ID,
			Name:     t.Name,
			Family:   t.Family,
			Duration: t.DurationBounds,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetTemplate returns the full spec for an ID.
func (c *Catalog) GetTemplate(ctx context.Context, id string) (*domain.TemplateSpec, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.templates[id]
	if !ok {
		return nil, &domain.ExternalServiceError{
			Service: "template_catalog",
			Op:      "get_template",
			Err:     errors.New("template not found: " + id),
		}
	}
	return &t, nil
}
