// Package chat is the transport collaborator that turns user input into
// events and record contents into user-facing messages. All I/O with the
// transcription, mediation and catalog services happens here, before an
// event reaches the state machine.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/macizomedia/editorBot/internal/logging"
	"github.com/macizomedia/editorBot/internal/machine"
	"github.com/macizomedia/editorBot/internal/observability"
	"github.com/macizomedia/editorBot/pkg/domain"
	"github.com/macizomedia/editorBot/pkg/ports"
	"github.com/macizomedia/editorBot/pkg/session"
)

// Reply is what the bot sends back after handling one input.
type Reply struct {
	Text   string
	Record *domain.ConversationRecord
}

// Bot wires the state machine to its collaborators for one transport.
type Bot struct {
	sessions    *session.Manager
	machine     *machine.Machine
	catalog     ports.TemplateCatalog
	transcriber ports.Transcriber
	mediator    ports.Mediator
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// Option configures the Bot.
type Option func(*Bot)

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Bot) {
		b.metrics = m
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// New creates a Bot.
func New(sessions *session.Manager, m *machine.Machine, catalog ports.TemplateCatalog,
	transcriber ports.Transcriber, mediator ports.Mediator, opts ...Option) *Bot {

	b := &Bot{
		sessions:    sessions,
		machine:     m,
		catalog:     catalog,
		transcriber: transcriber,
		mediator:    mediator,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HandleVoice processes an incoming voice note: registers it, transcribes,
// mediates, and leaves the session in Mediated awaiting confirmation. Each
// collaborator failure surfaces as an explicit error — no silent fallback.
func (b *Bot) HandleVoice(ctx context.Context, sessionID, audioRef string) (*Reply, error) {
	rec, err := b.dispatch(ctx, sessionID, domain.VoiceReceived{Source: audioRef})
	if err != nil {
		return b.replyForError(rec, err)
	}

	transcript, err := b.transcriber.Transcribe(ctx, audioRef)
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: "transcription", Op: "transcribe", Err: err}
	}

	rec, err = b.dispatch(ctx, sessionID, domain.TranscriptionComplete{Text: transcript})
	if err != nil {
		return b.replyForError(rec, err)
	}

	return b.mediate(ctx, sessionID, rec)
}

// HandleText processes typed input: commands (ok, editar, cancelar,
// siguiente, plantilla <id>, musica <id>, generar, aprobar) or free text.
func (b *Bot) HandleText(ctx context.Context, sessionID, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	ev, err := b.eventForText(ctx, sessionID, text)
	if err != nil {
		var svcErr *domain.ExternalServiceError
		if errors.As(err, &svcErr) {
			return &Reply{Text: fmt.Sprintf("The %s service is unavailable (%v). Try again or send *cancelar*.",
				svcErr.Service, svcErr.Err)}, nil
		}
		return nil, err
	}

	rec, err := b.dispatch(ctx, sessionID, ev)
	if err != nil {
		return b.replyForError(rec, err)
	}

	// A session that just became Transcribed gets its text mediated before
	// the user sees anything.
	if rec.State == domain.StateTranscribed {
		return b.mediate(ctx, sessionID, rec)
	}

	return &Reply{Text: b.messageFor(rec), Record: rec}, nil
}

// Dispatch applies an already-constructed event and renders the reply. Used
// by transports that build events themselves (e.g. the HTTP API). Unlike
// HandleText it does not soften invalid transitions into chat replies; the
// caller maps the error taxonomy itself.
func (b *Bot) Dispatch(ctx context.Context, sessionID string, ev domain.Event) (*Reply, error) {
	rec, err := b.dispatch(ctx, sessionID, ev)
	if err != nil {
		return nil, err
	}
	if rec.State == domain.StateTranscribed {
		return b.mediate(ctx, sessionID, rec)
	}
	return &Reply{Text: b.messageFor(rec), Record: rec}, nil
}

// mediate runs the mediation collaborator over the transcript and feeds the
// result back as an ordinary TextReceived event.
func (b *Bot) mediate(ctx context.Context, sessionID string, rec *domain.ConversationRecord) (*Reply, error) {
	mediated, err := b.mediator.Mediate(ctx, rec.Transcript)
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: "mediation", Op: "mediate", Err: err}
	}

	rec, err = b.dispatch(ctx, sessionID, domain.TextReceived{Text: mediated})
	if err != nil {
		return b.replyForError(rec, err)
	}
	return &Reply{Text: b.messageFor(rec), Record: rec}, nil
}

func (b *Bot) eventForText(ctx context.Context, sessionID, text string) (domain.Event, error) {
	lower := strings.ToLower(text)
	cmd, arg, _ := strings.Cut(lower, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "ok":
		return domain.CommandOk{}, nil
	case "editar":
		return domain.CommandEditar{}, nil
	case "cancelar":
		return domain.CommandCancelar{}, nil
	case "siguiente", "next":
		return domain.CommandNext{}, nil
	case "plantilla":
		spec, err := b.catalog.GetTemplate(ctx, arg)
		if err != nil {
			return nil, err
		}
		return domain.TemplateSelected{ID: arg, Spec: spec}, nil
	case "musica":
		return domain.SoundtrackSelected{ID: arg}, nil
	case "generar":
		return domain.AssetsConfigured{}, nil
	case "aprobar":
		return domain.RenderApproved{}, nil
	default:
		// Free text: the original casing matters for scripts.
		return domain.TextReceived{Text: text}, nil
	}
}

// dispatch applies one event under the session lock and records metrics.
func (b *Bot) dispatch(ctx context.Context, sessionID string, ev domain.Event) (*domain.ConversationRecord, error) {
	var fromState domain.ConversationState
	start := time.Now()

	rec, err := b.sessions.Dispatch(ctx, sessionID, func(rec domain.ConversationRecord) (domain.ConversationRecord, error) {
		fromState = rec.State
		return b.machine.Apply(rec, ev)
	})

	b.observe(fromState, ev, err)
	if b.metrics != nil {
		if ev.Kind() == domain.KindAssetsConfigured && err == nil {
			b.metrics.PlanBuildSeconds.Observe(time.Since(start).Seconds())
		}
		if err == nil && rec.Validation != nil && !rec.Validation.OK {
			component := "compliance"
			if ev.Kind() == domain.KindAssetsConfigured {
				component = "render_plan"
			}
			b.metrics.ValidationFailures.WithLabelValues(component).Inc()
		}
	}

	if err != nil {
		b.logger.Warn("event rejected", "session_id", sessionID, "event", ev.Kind(), "err", err)
		return nil, err
	}

	b.logger.Info("event applied", "session_id", sessionID, "event", ev.Kind(), "state", rec.State)
	return rec, nil
}

func (b *Bot) observe(from domain.ConversationState, ev domain.Event, err error) {
	if b.metrics == nil {
		return
	}

	result := "accepted"
	var invalidErr *domain.InvalidTransitionError
	switch {
	case errors.As(err, &invalidErr):
		result = "invalid"
	case err != nil:
		result = "error"
	}
	b.metrics.Transitions.WithLabelValues(string(from), string(ev.Kind()), result).Inc()
}

func (b *Bot) replyForError(rec *domain.ConversationRecord, err error) (*Reply, error) {
	var invalidErr *domain.InvalidTransitionError
	if errors.As(err, &invalidErr) {
		return &Reply{Text: "That action is not available right now. Send *cancelar* to start over."}, nil
	}
	return nil, err
}
