package domain

// EventKind identifies an event variant. It is what the transition table is
// keyed on, and what InvalidTransitionError reports.
type EventKind string

const (
	KindVoiceReceived         EventKind = "voice_received"
	KindTranscriptionComplete EventKind = "transcription_complete"
	KindTextReceived          EventKind = "text_received"
	KindCommandOk             EventKind = "command_ok"
	KindCommandEditar         EventKind = "command_editar"
	KindCommandCancelar       EventKind = "command_cancelar"
	KindCommandNext           EventKind = "command_next"
	KindTemplateSelected      EventKind = "template_selected"
	KindSoundtrackSelected    EventKind = "soundtrack_selected"
	KindAssetsConfigured      EventKind = "assets_configured"
	KindRenderApproved        EventKind = "render_approved"
)

// Event is the closed union of inputs the state machine accepts. Each variant
// carries its own strongly-typed payload; invalid payload/kind combinations
// are unrepresentable.
type Event interface {
	Kind() EventKind
}

// VoiceReceived signals that a voice note arrived. Source is an opaque
// reference to the stored audio (e.g. an object-store path).
type VoiceReceived struct {
	Source string
}

// TranscriptionComplete carries the text produced by the transcription
// collaborator.
type TranscriptionComplete struct {
	Text string
}

// TextReceived carries free text typed by the user, or mediated text fed back
// by the mediation collaborator.
type TextReceived struct {
	Text string
}

// CommandOk approves the content the bot last presented.
type CommandOk struct{}

// CommandEditar asks to edit the content the bot last presented.
type CommandEditar struct{}

// CommandCancelar aborts the session. It is legal from every state.
type CommandCancelar struct{}

// CommandNext advances past the final script to template selection.
type CommandNext struct{}

// TemplateSelected carries the chosen template. The transport resolves Spec
// through the template catalog before dispatching, so the machine never
// performs I/O (see ports.TemplateCatalog).
type TemplateSelected struct {
	ID   string
	Spec *TemplateSpec
}

// SoundtrackSelected carries the chosen soundtrack.
type SoundtrackSelected struct {
	ID     string
	Source string
}

// AssetsConfigured carries the full visual/audio asset configuration and
// triggers render plan compilation.
type AssetsConfigured struct {
	Config AssetConfig
}

// RenderApproved confirms the generated plan may be handed to the render
// engine.
type RenderApproved struct{}

func (VoiceReceived) Kind() EventKind         { return KindVoiceReceived }
func (TranscriptionComplete) Kind() EventKind { return KindTranscriptionComplete }
func (TextReceived) Kind() EventKind          { return KindTextReceived }
func (CommandOk) Kind() EventKind             { return KindCommandOk }
func (CommandEditar) Kind() EventKind         { return KindCommandEditar }
func (CommandCancelar) Kind() EventKind       { return KindCommandCancelar }
func (CommandNext) Kind() EventKind           { return KindCommandNext }
func (TemplateSelected) Kind() EventKind      { return KindTemplateSelected }
func (SoundtrackSelected) Kind() EventKind    { return KindSoundtrackSelected }
func (AssetsConfigured) Kind() EventKind      { return KindAssetsConfigured }
func (RenderApproved) Kind() EventKind        { return KindRenderApproved }
