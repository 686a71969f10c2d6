package domain

// AssetConfig captures the user's asset choices: soundtrack, visual strategy
// parameters, and per-beat prompt overrides. It is assembled incrementally
// (soundtrack first, then the rest) and handed to the plan builder whole.
type AssetConfig struct {
	SoundtrackID     string `json:"soundtrack_id,omitempty"`
	SoundtrackSource string `json:"soundtrack_source,omitempty"`

	// NarrationSource references the voice audio for the narration track.
	// The transport fills it from the record's AudioSource, falling back to
	// a synthesized-voice reference when the session started from text.
	NarrationSource string `json:"narration_source,omitempty"`

	Style string `json:"style,omitempty"`
	Seed  int64  `json:"seed,omitempty"`

	// PromptOverrides maps beat index to an image-generation prompt.
	PromptOverrides map[int]string `json:"prompt_overrides,omitempty"`
}
