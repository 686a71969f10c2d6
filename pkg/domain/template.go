package domain

// Enforcement controls whether template violations block progression or only
// warn. A single mode applies to the whole template; per-rule granularity is
// a possible future extension.
type Enforcement string

const (
	EnforcementStrict   Enforcement = "strict"
	EnforcementFlexible Enforcement = "flexible"
)

// DurationBounds constrain the script's total duration in seconds. Target is
// advisory: exceeding it within Max only warns.
type DurationBounds struct {
	Min    float64 `json:"min_seconds"`
	Target float64 `json:"target_seconds"`
	Max    float64 `json:"max_seconds"`
}

// BeatCountBounds constrain how many beats a script may have.
type BeatCountBounds struct {
	Min int `json:"min_beats"`
	Max int `json:"max_beats"`
}

// TemplateSpec is a named bundle of structural constraints a script must
// satisfy to use a given visual template, plus the render defaults the plan
// builder reads (formats, transition, audio policy).
type TemplateSpec struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Family      string `json:"template_family,omitempty"`
	Description string `json:"description,omitempty"`

	DurationBounds DurationBounds  `json:"duration"`
	StructureType  string          `json:"structure_type,omitempty"`
	BeatCount      BeatCountBounds `json:"beat_count"`

	RequiredRoles  []string `json:"required_roles,omitempty"`
	OptionalRoles  []string `json:"optional_roles,omitempty"`
	ForbiddenRoles []string `json:"forbidden_roles,omitempty"`

	Enforcement Enforcement `json:"enforcement"`

	// Render defaults consumed by the plan builder.
	AllowedFormats    []string `json:"allowed_formats,omitempty"`
	MusicAllowed      bool     `json:"music_allowed"`
	SubtitlesRequired bool     `json:"subtitles_required"`
	DefaultTransition string   `json:"default_transition,omitempty"`
}

// Strict reports whether violations of this template block progression.
func (t *TemplateSpec) Strict() bool {
	return t.Enforcement == EnforcementStrict
}

// TemplateSummary is the lightweight listing shape returned by the catalog.
type TemplateSummary struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Family   string         `json:"template_family,omitempty"`
	Duration DurationBounds `json:"duration"`
}
