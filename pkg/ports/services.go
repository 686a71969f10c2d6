package ports

import (
	"context"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// TemplateCatalog is the remote template service. Both operations can fail
// (network error, timeout, malformed payload) and must return a typed
// *domain.ExternalServiceError rather than a partially populated spec.
type TemplateCatalog interface {
	ListTemplates(ctx context.Context) ([]domain.TemplateSummary, error)
	GetTemplate(ctx context.Context, id string) (*domain.TemplateSpec, error)
}

// Transcriber converts a stored voice note into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioRef string) (string, error)
}

// Mediator rewrites a raw transcript into clean, publishable text. The core
// is agnostic to how (LLM, rules, human).
type Mediator interface {
	Mediate(ctx context.Context, transcript string) (string, error)
}
