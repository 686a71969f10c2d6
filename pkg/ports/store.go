package ports

import (
	"context"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// RecordStore persists conversation records keyed by session. Implementations
// must provide atomic single-key replace; cross-key consistency is not
// required (sessions are independent).
type RecordStore interface {
	// Save replaces the record for a session key.
	Save(ctx context.Context, sessionID string, rec *domain.ConversationRecord) error

	// Load retrieves the record for a session key.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.ConversationRecord, error)

	// Delete removes the record for a session key.
	Delete(ctx context.Context, sessionID string) error

	// List returns the active session keys.
	List(ctx context.Context) ([]string, error)
}
