package domain

// Resolution is the output frame geometry and rate.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	FPS    int `json:"fps"`
}

// AudioTrack is one layer of the final mix. Duration 0 means "play to its
// natural end"; when set, StartTime+Duration must not exceed the plan's
// total duration.
type AudioTrack struct {
	ID        string  `json:"id"`
	Source    string  `json:"source"`
	Volume    float64 `json:"volume"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration,omitempty"`
	FadeIn    float64 `json:"fade_in,omitempty"`
	FadeOut   float64 `json:"fade_out,omitempty"`
}

// VisualSpec describes what a scene shows.
type VisualSpec struct {
	Type            string `json:"type"` // "image" | "solid_color"
	Source          string `json:"source"`
	Prompt          string `json:"prompt,omitempty"`
	Motion          string `json:"motion,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// Overlay is a timed visual element positioned inside its scene's window.
// Times are absolute (plan timeline), not scene-relative.
type Overlay struct {
	Type      string  `json:"type"` // "text"
	Content   string  `json:"content"`
	Position  string  `json:"position,omitempty"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
	Style     string  `json:"style,omitempty"`
	Animation string  `json:"animation,omitempty"`
}

// SceneTransition is the effect applied leaving a scene into the next one.
type SceneTransition struct {
	Type     string  `json:"type"` // "cut" | "crossfade" | ...
	Duration float64 `json:"duration"`
}

// Scene is a time-boxed visual unit, one per script beat. Scenes are
// contiguous: each starts exactly where the previous one ends.
type Scene struct {
	ID         string          `json:"id"`
	StartTime  float64         `json:"start_time"`
	Duration   float64         `json:"duration"`
	Visual     VisualSpec      `json:"visual"`
	Overlays   []Overlay       `json:"overlays,omitempty"`
	Transition SceneTransition `json:"transition"`
}

// SubtitleSegment is one displayed caption window.
type SubtitleSegment struct {
	Text      string   `json:"text"`
	StartTime float64  `json:"start_time"`
	EndTime   float64  `json:"end_time"`
	Highlight []string `json:"highlight,omitempty"`
}

// Output is the encoding target derived from the template's platform profile.
type Output struct {
	Filename        string `json:"filename"`
	Container       string `json:"container"`
	Codec           string `json:"codec"`
	Bitrate         string `json:"bitrate"`
	PlatformProfile string `json:"platform_profile"`
}

// RenderPlan is the fully specified, machine-consumable instruction set the
// render engine receives. It is built once per session and immutable
// thereafter; reconfiguring assets produces a whole new plan.
type RenderPlan struct {
	ID            string            `json:"id"`
	TotalDuration float64           `json:"total_duration"`
	Resolution    Resolution        `json:"resolution"`
	AudioTracks   []AudioTrack      `json:"audio_tracks"`
	Scenes        []Scene           `json:"scenes"`
	Subtitles     []SubtitleSegment `json:"subtitles,omitempty"`
	Output        Output            `json:"output"`
}
