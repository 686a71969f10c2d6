package domain

// ConversationState is the closed set of positions a session can be in.
type ConversationState string

const (
	StateIdle                ConversationState = "idle"
	StateAudioReceived       ConversationState = "audio_received"
	StateTranscribed         ConversationState = "transcribed"
	StateMediated            ConversationState = "mediated"
	StateEditingMediated     ConversationState = "editing_mediated"
	StateScriptDrafted       ConversationState = "script_drafted"
	StateEditingScript       ConversationState = "editing_script"
	StateFinalScript         ConversationState = "final_script"
	StateTemplateProposed    ConversationState = "template_proposed"
	StateTemplateSelected    ConversationState = "template_selected"
	StateSelectSoundtrack    ConversationState = "select_soundtrack"
	StateAssetOptions        ConversationState = "asset_options"
	StateRenderPlanGenerated ConversationState = "render_plan_generated"
	StateReadyForRender      ConversationState = "ready_for_render"
)

// TransitionSnapshot is a compact audit entry appended to the record on every
// accepted transition.
type TransitionSnapshot struct {
	From  ConversationState `json:"from"`
	Event EventKind         `json:"event"`
	To    ConversationState `json:"to"`
}

// ConversationRecord is the per-session state container. Exactly one record
// exists per session key; transitions replace it wholesale and never mutate
// it in place, so a retained slice of records is a valid history.
type ConversationRecord struct {
	State ConversationState `json:"state"`

	// AudioSource references the uploaded voice note (if the session started
	// from voice). It feeds the narration track of the render plan.
	AudioSource string `json:"audio_source,omitempty"`

	Transcript   string `json:"transcript,omitempty"`
	MediatedText string `json:"mediated_text,omitempty"`

	FinalScript  *Script           `json:"final_script,omitempty"`
	TemplateSpec *TemplateSpec     `json:"template_spec,omitempty"`
	Validation   *ValidationResult `json:"validation,omitempty"`
	AssetConfig  *AssetConfig      `json:"asset_config,omitempty"`
	RenderPlan   *RenderPlan       `json:"render_plan,omitempty"`

	History []TransitionSnapshot `json:"history,omitempty"`
}

// NewRecord returns a fresh record in the initial Idle state.
func NewRecord() ConversationRecord {
	return ConversationRecord{State: StateIdle}
}

// WithTransition returns a copy of the record moved to the given state, with
// the audit trail extended. Field updates are applied by the caller on the
// returned value before it is persisted.
func (r ConversationRecord) WithTransition(event EventKind, to ConversationState) ConversationRecord {
	next := r
	next.History = append(append([]TransitionSnapshot(nil), r.History...), TransitionSnapshot{
		From:  r.State,
		Event: event,
		To:    to,
	})
	next.State = to
	return next
}

// Terminal reports whether the record reached the end of the guided flow.
// Rendering itself happens downstream.
func (r ConversationRecord) Terminal() bool {
	return r.State == StateReadyForRender
}
