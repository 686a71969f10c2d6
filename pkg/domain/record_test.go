package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macizomedia/editorBot/pkg/domain"
)

func TestWithTransition_AppendsAuditWithoutMutatingOriginal(t *testing.T) {
	rec := domain.NewRecord()

	next := rec.WithTransition(domain.KindVoiceReceived, domain.StateAudioReceived)

	assert.Equal(t, domain.StateIdle, rec.State, "original value untouched")
	assert.Empty(t, rec.History)

	assert.Equal(t, domain.StateAudioReceived, next.State)
	require.Len(t, next.History, 1)
	assert.Equal(t, domain.StateIdle, next.History[0].From)

	// Branching from the same record must not share history backing arrays.
	a := next.WithTransition(domain.KindCommandOk, domain.StateMediated)
	b := next.WithTransition(domain.KindCommandEditar, domain.StateEditingMediated)
	assert.Equal(t, domain.KindCommandOk, a.History[1].Event)
	assert.Equal(t, domain.KindCommandEditar, b.History[1].Event)
}

func TestTerminal(t *testing.T) {
	rec := domain.NewRecord()
	assert.False(t, rec.Terminal())

	rec.State = domain.StateReadyForRender
	assert.True(t, rec.Terminal())
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := &domain.InvalidTransitionError{State: domain.StateIdle, Event: domain.KindRenderApproved}

	assert.Contains(t, err.Error(), "idle")
	assert.Contains(t, err.Error(), "render_approved")

	var target *domain.InvalidTransitionError
	assert.True(t, errors.As(err, &target))
}

func TestExternalServiceError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &domain.ExternalServiceError{Service: "transcription", Op: "transcribe", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transcription")
}

func TestValidationResult(t *testing.T) {
	r := domain.NewValidationResult()
	assert.True(t, r.OK)
	assert.Empty(t, r.ErrorSummary())

	r.AddWarning("minor thing")
	assert.True(t, r.OK, "warnings never fail a result")

	r.AddError("broken")
	r.AddError("also broken")
	assert.False(t, r.OK)
	assert.Equal(t, "broken; also broken", r.ErrorSummary())
}
