// Package machine implements the conversation transition function. It is the
// only place that moves a record between states.
//
// Apply is pure: no I/O, no hidden state, no retries. The transition table
// is total — every (state, event) pair not explicitly handled returns
// *domain.InvalidTransitionError and the input record is returned unchanged.
// Accepted events produce a fully new record value; the input is never
// mutated.
package machine

import (
	"fmt"

	"github.com/macizomedia/editorBot/internal/compliance"
	"github.com/macizomedia/editorBot/internal/renderplan"
	"github.com/macizomedia/editorBot/internal/script"
	"github.com/macizomedia/editorBot/pkg/domain"
)

// ScriptService drafts a script from mediated text and reparses user edits.
// Both operations must be deterministic.
type ScriptService interface {
	Generate(mediated string) *domain.Script
	Reparse(text string) *domain.Script
}

// defaultScripts adapts the in-process script package.
type defaultScripts struct{}

func (defaultScripts) Generate(mediated string) *domain.Script { return script.Generate(mediated) }
func (defaultScripts) Reparse(text string) *domain.Script      { return script.Reparse(text) }

// Machine applies events to conversation records.
type Machine struct {
	scripts ScriptService
}

// Option configures the Machine.
type Option func(*Machine)

// WithScriptService overrides the default deterministic script drafting.
func WithScriptService(s ScriptService) Option {
	return func(m *Machine) {
		m.scripts = s
	}
}

// New creates a Machine with the default script service.
func New(opts ...Option) *Machine {
	m := &Machine{scripts: defaultScripts{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply runs one transition. On InvalidTransitionError the returned record
// is the input, observably unchanged.
func (m *Machine) Apply(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	// Cancel is legal from every state and deterministically resets the
	// session. It is an ordinary event, not out-of-band interruption.
	if _, ok := ev.(domain.CommandCancelar); ok {
		return domain.NewRecord().WithTransition(domain.KindCommandCancelar, domain.StateIdle), nil
	}

	switch rec.State {
	case domain.StateIdle:
		return m.applyIdle(rec, ev)
	case domain.StateAudioReceived:
		return m.applyAudioReceived(rec, ev)
	case domain.StateTranscribed:
		return m.applyTranscribed(rec, ev)
	case domain.StateMediated:
		return m.applyMediated(rec, ev)
	case domain.StateEditingMediated:
		return m.applyEditingMediated(rec, ev)
	case domain.StateScriptDrafted:
		return m.applyScriptDrafted(rec, ev)
	case domain.StateEditingScript:
		return m.applyEditingScript(rec, ev)
	case domain.StateFinalScript:
		return m.applyFinalScript(rec, ev)
	case domain.StateTemplateProposed:
		return m.applyTemplateProposed(rec, ev)
	case domain.StateSelectSoundtrack:
		return m.applySelectSoundtrack(rec, ev)
	case domain.StateAssetOptions:
		return m.applyAssetOptions(rec, ev)
	case domain.StateRenderPlanGenerated:
		return m.applyRenderPlanGenerated(rec, ev)
	}

	return rec, invalid(rec, ev)
}

func (m *Machine) applyIdle(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	switch e := ev.(type) {
	case domain.VoiceReceived:
		next := rec.WithTransition(e.Kind(), domain.StateAudioReceived)
		next.AudioSource = e.Source
		return next, nil
	case domain.TextReceived:
		next := rec.WithTransition(e.Kind(), domain.StateTranscribed)
		next.Transcript = e.Text
		return next, nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyAudioReceived(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	if e, ok := ev.(domain.TranscriptionComplete); ok {
		next := rec.WithTransition(e.Kind(), domain.StateTranscribed)
		next.Transcript = e.Text
		return next, nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyTranscribed(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	// Mediation happens upstream; the event text is the mediated rewrite of
	// the transcript.
	if e, ok := ev.(domain.TextReceived); ok {
		next := rec.WithTransition(e.Kind(), domain.StateMediated)
		next.MediatedText = e.Text
		return next, nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyMediated(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	switch ev.(type) {
	case domain.CommandOk:
		next := rec.WithTransition(ev.Kind(), domain.StateScriptDrafted)
		next.FinalScript = m.scripts.Generate(rec.MediatedText)
		return next, nil
	case domain.CommandEditar:
		return rec.WithTransition(ev.Kind(), domain.StateEditingMediated), nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyEditingMediated(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	if e, ok := ev.(domain.TextReceived); ok {
		next := rec.WithTransition(e.Kind(), domain.StateScriptDrafted)
		next.MediatedText = e.Text
		next.FinalScript = m.scripts.Generate(e.Text)
		return next, nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyScriptDrafted(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	switch ev.(type) {
	case domain.CommandOk:
		return rec.WithTransition(ev.Kind(), domain.StateFinalScript), nil
	case domain.CommandEditar:
		return rec.WithTransition(ev.Kind(), domain.StateEditingScript), nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyEditingScript(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	if e, ok := ev.(domain.TextReceived); ok {
		next := rec.WithTransition(e.Kind(), domain.StateFinalScript)
		next.FinalScript = m.scripts.Reparse(e.Text)
		return next, nil
	}
	return rec, invalid(rec, ev)
}

func (m *Machine) applyFinalScript(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	switch ev.(type) {
	case domain.CommandOk, domain.CommandNext:
		return rec.WithTransition(ev.Kind(), domain.StateTemplateProposed), nil
	}
	return rec, invalid(rec, ev)
}

// applyTemplateProposed runs template compliance on selection. Under strict
// enforcement a fatal finding keeps the session in TemplateProposed so the
// user can reselect or go back to editing; the findings are recorded either
// way.
func (m *Machine) applyTemplateProposed(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	e, ok := ev.(domain.TemplateSelected)
	if !ok {
		return rec, invalid(rec, ev)
	}
	if e.Spec == nil {
		return rec, fmt.Errorf("template %q selected without a resolved spec", e.ID)
	}

	result := compliance.Validate(rec.FinalScript, e.Spec)

	if !result.OK {
		next := rec.WithTransition(e.Kind(), domain.StateTemplateProposed)
		next.Validation = result
		return next, nil
	}

	next := rec.WithTransition(e.Kind(), domain.StateSelectSoundtrack)
	next.TemplateSpec = e.Spec
	next.Validation = result
	return next, nil
}

func (m *Machine) applySelectSoundtrack(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	e, ok := ev.(domain.SoundtrackSelected)
	if !ok {
		return rec, invalid(rec, ev)
	}

	next := rec.WithTransition(e.Kind(), domain.StateAssetOptions)
	cfg := domain.AssetConfig{}
	if rec.AssetConfig != nil {
		cfg = *rec.AssetConfig
	}
	cfg.SoundtrackID = e.ID
	cfg.SoundtrackSource = e.Source
	next.AssetConfig = &cfg
	return next, nil
}

// applyAssetOptions compiles and validates the render plan. A plan with
// fatal errors is discarded and the session stays in AssetOptions carrying
// the findings; a clean or warned plan moves to RenderPlanGenerated.
func (m *Machine) applyAssetOptions(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	e, ok := ev.(domain.AssetsConfigured)
	if !ok {
		return rec, invalid(rec, ev)
	}

	cfg := e.Config
	if rec.AssetConfig != nil {
		if cfg.SoundtrackID == "" {
			cfg.SoundtrackID = rec.AssetConfig.SoundtrackID
		}
		if cfg.SoundtrackSource == "" {
			cfg.SoundtrackSource = rec.AssetConfig.SoundtrackSource
		}
	}
	if cfg.NarrationSource == "" {
		cfg.NarrationSource = narrationSource(rec)
	}

	plan, err := renderplan.Build(rec.FinalScript, rec.TemplateSpec, &cfg)
	if err != nil {
		return rec, err
	}

	result := renderplan.Validate(plan)
	if !result.OK {
		next := rec.WithTransition(e.Kind(), domain.StateAssetOptions)
		next.AssetConfig = &cfg
		next.Validation = result
		next.RenderPlan = nil
		return next, nil
	}

	next := rec.WithTransition(e.Kind(), domain.StateRenderPlanGenerated)
	next.AssetConfig = &cfg
	next.Validation = result
	next.RenderPlan = plan
	return next, nil
}

func (m *Machine) applyRenderPlanGenerated(rec domain.ConversationRecord, ev domain.Event) (domain.ConversationRecord, error) {
	if _, ok := ev.(domain.RenderApproved); ok {
		return rec.WithTransition(ev.Kind(), domain.StateReadyForRender), nil
	}
	return rec, invalid(rec, ev)
}

// narrationSource prefers the uploaded voice note; text-first sessions get a
// synthesized-voice reference the render engine resolves downstream.
func narrationSource(rec domain.ConversationRecord) string {
	if rec.AudioSource != "" {
		return rec.AudioSource
	}
	return "tts://transcript"
}

func invalid(rec domain.ConversationRecord, ev domain.Event) error {
	return &domain.InvalidTransitionError{State: rec.State, Event: ev.Kind()}
}
