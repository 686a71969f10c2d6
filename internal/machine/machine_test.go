package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macizomedia/editorBot/internal/machine"
	"github.com/macizomedia/editorBot/pkg/domain"
)

// flexTemplate accepts almost anything so happy-path tests can focus on the
// transition table rather than compliance.
func flexTemplate() *domain.TemplateSpec {
	return &domain.TemplateSpec{
		ID:                "explainer_60",
		Name:              "One-Minute Explainer",
		DurationBounds:    domain.DurationBounds{Min: 1, Target: 300, Max: 600},
		BeatCount:         domain.BeatCountBounds{Min: 1, Max: 100},
		Enforcement:       domain.EnforcementFlexible,
		MusicAllowed:      true,
		SubtitlesRequired: true,
		DefaultTransition: "crossfade",
	}
}

func strictTemplate() *domain.TemplateSpec {
	return &domain.TemplateSpec{
		ID:             "story_teaser",
		Name:           "Story Teaser",
		DurationBounds: domain.DurationBounds{Min: 1, Target: 15, Max: 600},
		BeatCount:      domain.BeatCountBounds{Min: 1, Max: 100},
		ForbiddenRoles: []string{"conclusion"},
		Enforcement:    domain.EnforcementStrict,
	}
}

// advance applies a sequence of events, failing the test on any rejection.
func advance(t *testing.T, m *machine.Machine, rec domain.ConversationRecord, events ...domain.Event) domain.ConversationRecord {
	t.Helper()
	for _, ev := range events {
		next, err := m.Apply(rec, ev)
		require.NoError(t, err, "event %s from state %s", ev.Kind(), rec.State)
		rec = next
	}
	return rec
}

func TestApply_VoiceFlowToRender(t *testing.T) {
	m := machine.New()
	rec := domain.NewRecord()

	rec = advance(t, m, rec, domain.VoiceReceived{Source: "audio://note-1.ogg"})
	assert.Equal(t, domain.StateAudioReceived, rec.State)
	assert.Equal(t, "audio://note-1.ogg", rec.AudioSource)

	rec = advance(t, m, rec, domain.TranscriptionComplete{Text: "Quiero hablar de Go. Es un lenguaje simple. Pruébenlo hoy."})
	assert.Equal(t, domain.StateTranscribed, rec.State)

	rec = advance(t, m, rec, domain.TextReceived{Text: "Quiero hablar de Go. Es un lenguaje simple. Pruébenlo hoy."})
	assert.Equal(t, domain.StateMediated, rec.State)
	assert.NotEmpty(t, rec.MediatedText)

	rec = advance(t, m, rec, domain.CommandOk{})
	assert.Equal(t, domain.StateScriptDrafted, rec.State)
	require.NotNil(t, rec.FinalScript)
	assert.Len(t, rec.FinalScript.Beats, 3)
	assert.Equal(t, "hook", rec.FinalScript.Beats[0].Role)
	assert.Equal(t, "conclusion", rec.FinalScript.Beats[2].Role)

	rec = advance(t, m, rec,
		domain.CommandOk{},
		domain.CommandNext{},
		domain.TemplateSelected{ID: "explainer_60", Spec: flexTemplate()},
	)
	assert.Equal(t, domain.StateSelectSoundtrack, rec.State)
	require.NotNil(t, rec.TemplateSpec)
	assert.True(t, rec.Validation.OK)

	rec = advance(t, m, rec, domain.SoundtrackSelected{ID: "lofi-01", Source: "music://lofi-01.mp3"})
	assert.Equal(t, domain.StateAssetOptions, rec.State)
	require.NotNil(t, rec.AssetConfig)
	assert.Equal(t, "lofi-01", rec.AssetConfig.SoundtrackID)

	rec = advance(t, m, rec, domain.AssetsConfigured{})
	assert.Equal(t, domain.StateRenderPlanGenerated, rec.State)
	require.NotNil(t, rec.RenderPlan)
	assert.True(t, rec.Validation.OK)

	// Narration comes from the uploaded voice note.
	require.NotEmpty(t, rec.RenderPlan.AudioTracks)
	assert.Equal(t, "audio://note-1.ogg", rec.RenderPlan.AudioTracks[0].Source)

	rec = advance(t, m, rec, domain.RenderApproved{})
	assert.Equal(t, domain.StateReadyForRender, rec.State)
	assert.True(t, rec.Terminal())
}

func TestApply_TextFirstFlowUsesSynthesizedNarration(t *testing.T) {
	m := machine.New()

	rec := advance(t, m, domain.NewRecord(),
		domain.TextReceived{Text: "Una idea corta pero completa para el video."},
		domain.TextReceived{Text: "Una idea corta pero completa para el video."},
		domain.CommandOk{},
		domain.CommandOk{},
		domain.CommandNext{},
		domain.TemplateSelected{ID: "explainer_60", Spec: flexTemplate()},
		domain.SoundtrackSelected{ID: "lofi-01"},
		domain.AssetsConfigured{},
	)

	assert.Equal(t, domain.StateRenderPlanGenerated, rec.State)
	require.NotEmpty(t, rec.RenderPlan.AudioTracks)
	assert.Equal(t, "tts://transcript", rec.RenderPlan.AudioTracks[0].Source)
}

func TestApply_InvalidTransitionLeavesRecordUnchanged(t *testing.T) {
	m := machine.New()

	cases := []struct {
		state domain.ConversationState
		event domain.Event
	}{
		{domain.StateIdle, domain.CommandOk{}},
		{domain.StateIdle, domain.RenderApproved{}},
		{domain.StateAudioReceived, domain.TextReceived{Text: "x"}},
		{domain.StateMediated, domain.CommandNext{}},
		{domain.StateFinalScript, domain.CommandEditar{}},
		{domain.StateSelectSoundtrack, domain.RenderApproved{}},
		{domain.StateReadyForRender, domain.CommandOk{}},
	}

	for _, tc := range cases {
		rec := domain.NewRecord()
		rec.State = tc.state
		rec.Transcript = "preserved"

		got, err := m.Apply(rec, tc.event)

		var invalidErr *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr, "state %s event %s", tc.state, tc.event.Kind())
		assert.Equal(t, tc.state, invalidErr.State)
		assert.Equal(t, tc.event.Kind(), invalidErr.Event)
		assert.Equal(t, rec, got, "rejected event must not change the record")
	}
}

func TestApply_CancelResetsFromAnyState(t *testing.T) {
	m := machine.New()

	for _, state := range []domain.ConversationState{
		domain.StateIdle,
		domain.StateTranscribed,
		domain.StateScriptDrafted,
		domain.StateAssetOptions,
		domain.StateReadyForRender,
	} {
		rec := domain.NewRecord()
		rec.State = state
		rec.Transcript = "old"
		rec.FinalScript = &domain.Script{Beats: []domain.Beat{{Text: "old", DurationSeconds: 2}}}

		got, err := m.Apply(rec, domain.CommandCancelar{})
		require.NoError(t, err, "cancel from %s", state)
		assert.Equal(t, domain.StateIdle, got.State)
		assert.Empty(t, got.Transcript)
		assert.Nil(t, got.FinalScript)
	}
}

func TestApply_StrictTemplateViolationBlocksSelection(t *testing.T) {
	m := machine.New()

	rec := advance(t, m, domain.NewRecord(),
		domain.TextReceived{Text: "Primera frase. Segunda frase. Tercera frase."},
		domain.TextReceived{Text: "Primera frase. Segunda frase. Tercera frase."},
		domain.CommandOk{}, // drafts hook/argument/conclusion
		domain.CommandOk{},
		domain.CommandNext{},
	)
	require.Equal(t, domain.StateTemplateProposed, rec.State)

	// The draft carries a conclusion beat, which this template forbids.
	rec = advance(t, m, rec, domain.TemplateSelected{ID: "story_teaser", Spec: strictTemplate()})

	assert.Equal(t, domain.StateTemplateProposed, rec.State, "strict violation keeps the session in template selection")
	assert.Nil(t, rec.TemplateSpec)
	require.NotNil(t, rec.Validation)
	assert.False(t, rec.Validation.OK)

	// A compatible template is still selectable afterwards.
	rec = advance(t, m, rec, domain.TemplateSelected{ID: "explainer_60", Spec: flexTemplate()})
	assert.Equal(t, domain.StateSelectSoundtrack, rec.State)
	assert.True(t, rec.Validation.OK)
}

func TestApply_TemplateSelectedWithoutSpecFails(t *testing.T) {
	m := machine.New()
	rec := domain.NewRecord()
	rec.State = domain.StateTemplateProposed
	rec.FinalScript = &domain.Script{Beats: []domain.Beat{{Text: "a", DurationSeconds: 3}}}

	_, err := m.Apply(rec, domain.TemplateSelected{ID: "ghost"})
	assert.Error(t, err)
}

// brokenScripts drafts a script with a zero-duration beat, which the plan
// validator rejects as fatal.
type brokenScripts struct{}

func (brokenScripts) Generate(string) *domain.Script {
	return &domain.Script{
		Beats: []domain.Beat{
			{Text: "instant", DurationSeconds: 0, Role: "hook"},
			{Text: "rest", DurationSeconds: 3, Role: "conclusion"},
		},
		StructureType: "explainer",
	}
}

func (b brokenScripts) Reparse(text string) *domain.Script { return b.Generate(text) }

func TestApply_FatalPlanValidationStaysInAssetOptions(t *testing.T) {
	m := machine.New(machine.WithScriptService(brokenScripts{}))

	rec := advance(t, m, domain.NewRecord(),
		domain.TextReceived{Text: "idea"},
		domain.TextReceived{Text: "idea"},
		domain.CommandOk{},
		domain.CommandOk{},
		domain.CommandNext{},
		domain.TemplateSelected{ID: "explainer_60", Spec: flexTemplate()},
		domain.SoundtrackSelected{ID: "lofi-01"},
		domain.AssetsConfigured{},
	)

	assert.Equal(t, domain.StateAssetOptions, rec.State, "fatal plan findings must not advance the session")
	assert.Nil(t, rec.RenderPlan, "a failed plan is discarded, never stored")
	require.NotNil(t, rec.Validation)
	assert.False(t, rec.Validation.OK)
}

func TestApply_AssetConfigMergesSoundtrackChoice(t *testing.T) {
	m := machine.New()

	rec := advance(t, m, domain.NewRecord(),
		domain.TextReceived{Text: "Una frase para el video."},
		domain.TextReceived{Text: "Una frase para el video."},
		domain.CommandOk{},
		domain.CommandOk{},
		domain.CommandNext{},
		domain.TemplateSelected{ID: "explainer_60", Spec: flexTemplate()},
		domain.SoundtrackSelected{ID: "lofi-01", Source: "music://lofi-01.mp3"},
		domain.AssetsConfigured{Config: domain.AssetConfig{Style: "minimal"}},
	)

	require.NotNil(t, rec.AssetConfig)
	assert.Equal(t, "lofi-01", rec.AssetConfig.SoundtrackID, "earlier soundtrack choice survives asset configuration")
	assert.Equal(t, "minimal", rec.AssetConfig.Style)
}

func TestApply_HistoryRecordsEveryAcceptedTransition(t *testing.T) {
	m := machine.New()

	rec := advance(t, m, domain.NewRecord(),
		domain.VoiceReceived{Source: "audio://a"},
		domain.TranscriptionComplete{Text: "hola"},
	)

	require.Len(t, rec.History, 2)
	assert.Equal(t, domain.TransitionSnapshot{
		From:  domain.StateIdle,
		Event: domain.KindVoiceReceived,
		To:    domain.StateAudioReceived,
	}, rec.History[0])
	assert.Equal(t, domain.TransitionSnapshot{
		From:  domain.StateAudioReceived,
		Event: domain.KindTranscriptionComplete,
		To:    domain.StateTranscribed,
	}, rec.History[1])
}

func TestApply_EditPathsRegenerateScript(t *testing.T) {
	m := machine.New()

	rec := advance(t, m, domain.NewRecord(),
		domain.TextReceived{Text: "Texto original. Segunda parte."},
		domain.TextReceived{Text: "Texto original. Segunda parte."},
		domain.CommandEditar{},
	)
	assert.Equal(t, domain.StateEditingMediated, rec.State)

	rec = advance(t, m, rec, domain.TextReceived{Text: "Texto corregido. Mejor final."})
	assert.Equal(t, domain.StateScriptDrafted, rec.State)
	assert.Equal(t, "Texto corregido. Mejor final.", rec.MediatedText)

	rec = advance(t, m, rec, domain.CommandEditar{})
	assert.Equal(t, domain.StateEditingScript, rec.State)

	rec = advance(t, m, rec, domain.TextReceived{Text: "[hook] Nueva apertura (4.0s)\n[conclusion] Cierre"})
	assert.Equal(t, domain.StateFinalScript, rec.State)
	require.Len(t, rec.FinalScript.Beats, 2)
	assert.Equal(t, "hook", rec.FinalScript.Beats[0].Role)
	assert.InDelta(t, 4.0, rec.FinalScript.Beats[0].DurationSeconds, 1e-9)
}
