package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session key cannot be found in the
// record store.
var ErrSessionNotFound = errors.New("session not found")

// InvalidTransitionError reports an event that is not legal for the current
// state. It is never retried automatically and the record is left untouched;
// the transport decides user messaging.
type InvalidTransitionError struct {
	State ConversationState
	Event EventKind
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("event %q not available in state %q", e.Event, e.State)
}

// ExternalServiceError wraps a failure from a collaborator (template catalog,
// transcription, mediation). It is surfaced explicitly so the user gets an
// actionable retry-or-cancel message, never a silent fallback.
type ExternalServiceError struct {
	Service string // "template_catalog", "transcription", "mediation"
	Op      string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Service, e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
