// Package renderplan compiles a final script, template and asset choices
// into the instruction set the render engine consumes, and validates the
// structural invariants of the result. Building is deterministic: identical
// inputs produce a structurally identical plan; the plan ID is the only
// generated field.
package renderplan

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/macizomedia/editorBot/pkg/domain"
)

const (
	voiceVolume      = 1.0
	soundtrackVolume = 0.25 // ducked under narration
	soundtrackFadeIn = 1.5

	overlayLeadIn  = 0.3 // breathing room after scene start
	overlayLeadOut = 0.5 // breathing room before scene end
	minOverlayable = 1.0 // beats shorter than this get no overlay
)

type formatProfile struct {
	width, height, fps int
	container, codec   string
	bitrate, platform  string
}

// Platform requirements are stable, so the mapping is compiled in.
var formatProfiles = map[string]formatProfile{
	"REEL_VERTICAL":  {1080, 1920, 30, "mp4", "h264", "6M", "instagram_reel"},
	"LANDSCAPE_16_9": {1920, 1080, 30, "mp4", "h264", "8M", "youtube_landscape"},
	"SQUARE_1_1":     {1080, 1080, 30, "mp4", "h264", "6M", "instagram_square"},
	"PORTRAIT_4_5":   {1080, 1350, 30, "mp4", "h264", "6M", "instagram_portrait"},
}

const defaultFormat = "REEL_VERTICAL"

// Solid-color fallbacks per beat role when no prompt override exists.
var roleColors = map[string]string{
	"hook":       "#1a1a1a",
	"argument":   "#2a2a2a",
	"conclusion": "#3a3a3a",
}

// Build compiles the render plan. TotalDuration is set once from the script;
// scene timing is derived from it by cumulative sum, never the reverse, so
// contiguity holds by construction.
func Build(script *domain.Script, template *domain.TemplateSpec, assets *domain.AssetConfig) (*domain.RenderPlan, error) {
	if script == nil || len(script.Beats) == 0 {
		return nil, errors.New("render plan requires a script with at least one beat")
	}
	if template == nil {
		return nil, errors.New("render plan requires a template spec")
	}
	if assets == nil {
		assets = &domain.AssetConfig{}
	}

	totalDuration := script.TotalDuration()
	if totalDuration <= 0 {
		return nil, errors.New("script has zero or negative total duration")
	}

	profile := profileFor(template)

	plan := &domain.RenderPlan{
		ID:            "rp-" + uuid.NewString(),
		TotalDuration: totalDuration,
		Resolution: domain.Resolution{
			Width:  profile.width,
			Height: profile.height,
			FPS:    profile.fps,
		},
		AudioTracks: buildAudioTracks(totalDuration, template, assets),
		Scenes:      buildScenes(script, template, assets),
		Subtitles:   buildSubtitles(script, template),
		Output: domain.Output{
			Filename:        fmt.Sprintf("editorbot_%s_%s.mp4", template.ID, profile.platform),
			Container:       profile.container,
			Codec:           profile.codec,
			Bitrate:         profile.bitrate,
			PlatformProfile: profile.platform,
		},
	}

	return plan, nil
}

func profileFor(template *domain.TemplateSpec) formatProfile {
	format := defaultFormat
	if len(template.AllowedFormats) > 0 {
		format = template.AllowedFormats[0]
	}
	if p, ok := formatProfiles[format]; ok {
		return p
	}
	return formatProfiles[defaultFormat]
}

func buildAudioTracks(totalDuration float64, template *domain.TemplateSpec, assets *domain.AssetConfig) []domain.AudioTrack {
	var tracks []domain.AudioTrack

	if assets.NarrationSource != "" {
		tracks = append(tracks, domain.AudioTrack{
			ID:        "voice",
			Source:    assets.NarrationSource,
			Volume:    voiceVolume,
			StartTime: 0,
			Duration:  totalDuration,
		})
	}

	if assets.SoundtrackID != "" && template.MusicAllowed {
		source := assets.SoundtrackSource
		if source == "" {
			source = assets.SoundtrackID
		}
		fadeOut := totalDuration * 0.1
		if fadeOut > 2.0 {
			fadeOut = 2.0
		}
		tracks = append(tracks, domain.AudioTrack{
			ID:        "soundtrack",
			Source:    source,
			Volume:    soundtrackVolume,
			StartTime: 0,
			Duration:  totalDuration,
			FadeIn:    soundtrackFadeIn,
			FadeOut:   fadeOut,
		})
	}

	return tracks
}

func buildScenes(script *domain.Script, template *domain.TemplateSpec, assets *domain.AssetConfig) []domain.Scene {
	scenes := make([]domain.Scene, 0, len(script.Beats))
	cursor := 0.0

	for i, beat := range script.Beats {
		scene := domain.Scene{
			ID:         fmt.Sprintf("scene_%d", i+1),
			StartTime:  cursor,
			Duration:   beat.DurationSeconds,
			Visual:     buildVisual(beat, assets, i),
			Overlays:   buildOverlays(beat, cursor),
			Transition: transitionFor(template, i, len(script.Beats)),
		}
		scenes = append(scenes, scene)
		cursor += beat.DurationSeconds
	}

	return scenes
}

func buildVisual(beat domain.Beat, assets *domain.AssetConfig, index int) domain.VisualSpec {
	if prompt, ok := assets.PromptOverrides[index]; ok && prompt != "" {
		return domain.VisualSpec{
			Type:            "image",
			Source:          "ai_generated",
			Prompt:          prompt,
			Motion:          "slow_zoom_in",
			BackgroundColor: "#000000",
		}
	}

	color, ok := roleColors[beat.Role]
	if !ok {
		color = "#000000"
	}
	return domain.VisualSpec{
		Type:            "solid_color",
		Source:          color,
		BackgroundColor: color,
	}
}

// buildOverlays places a keyword overlay inside the scene window, delayed at
// the start and released before the end. Short beats get none so the overlay
// never escapes its scene.
func buildOverlays(beat domain.Beat, sceneStart float64) []domain.Overlay {
	if len(beat.Keywords) == 0 || beat.DurationSeconds < minOverlayable {
		return nil
	}

	duration := beat.DurationSeconds - overlayLeadIn - overlayLeadOut
	if duration <= 0 {
		return nil
	}

	return []domain.Overlay{{
		Type:      "text",
		Content:   joinKeywords(beat.Keywords),
		Position:  "center",
		StartTime: sceneStart + overlayLeadIn,
		Duration:  duration,
		Style:     "bold_caps",
		Animation: "fade_in_up",
	}}
}

func joinKeywords(keywords []string) string {
	out := ""
	for i, k := range keywords {
		if i > 0 {
			out += " · "
		}
		out += k
	}
	return out
}

func transitionFor(template *domain.TemplateSpec, index, total int) domain.SceneTransition {
	// The last scene has nothing to transition into.
	if index == total-1 {
		return domain.SceneTransition{Type: "cut"}
	}

	kind := template.DefaultTransition
	if kind == "" {
		kind = "cut"
	}
	duration := 0.0
	if kind != "cut" {
		duration = 0.3
	}
	return domain.SceneTransition{Type: kind, Duration: duration}
}

func buildSubtitles(script *domain.Script, template *domain.TemplateSpec) []domain.SubtitleSegment {
	if !template.SubtitlesRequired {
		return nil
	}

	var segments []domain.SubtitleSegment
	cursor := 0.0

	for _, beat := range script.Beats {
		if beat.Text != "" {
			segments = append(segments, domain.SubtitleSegment{
				Text:      beat.Text,
				StartTime: cursor,
				EndTime:   cursor + beat.DurationSeconds,
				Highlight: beat.Keywords,
			})
		}
		cursor += beat.DurationSeconds
	}

	return segments
}
