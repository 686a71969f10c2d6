package renderplan

import (
	"fmt"

	"github.com/macizomedia/editorBot/pkg/domain"
)

const (
	// Tolerance absorbs float accumulation over the scene timeline.
	Tolerance = 1e-3

	minSceneSeconds    = 0.5
	maxSubtitleSeconds = 7.0
	maxComfortDuration = 600.0
	maxSafeVolume      = 2.0
)

var standardFPS = map[int]bool{24: true, 25: true, 30: true, 60: true}

// Validate checks the structural and timing invariants of a built plan. It
// never mutates the plan; it only reports. A plan with any fatal error must
// not be handed to the render engine.
//
// Validation is idempotent: an already-valid plan yields the same empty
// result on every call.
func Validate(plan *domain.RenderPlan) *domain.ValidationResult {
	result := domain.NewValidationResult()

	validateFormat(plan, result)
	validateScenes(plan, result)
	validateAudio(plan, result)
	validateSubtitles(plan, result)

	return result
}

func validateFormat(plan *domain.RenderPlan, result *domain.ValidationResult) {
	if plan.TotalDuration <= 0 {
		result.AddError(fmt.Sprintf("invalid_duration: total duration %.3fs must be positive", plan.TotalDuration))
	}
	if plan.TotalDuration > maxComfortDuration {
		result.AddWarning(fmt.Sprintf("duration_very_long: total duration %.1fs exceeds %.0fs", plan.TotalDuration, maxComfortDuration))
	}

	res := plan.Resolution
	if res.Width <= 0 || res.Height <= 0 {
		result.AddError(fmt.Sprintf("invalid_resolution: %dx%d dimensions must be positive", res.Width, res.Height))
	} else if res.Width%2 != 0 || res.Height%2 != 0 {
		result.AddWarning(fmt.Sprintf("odd_resolution: %dx%d should use even dimensions for codec compatibility", res.Width, res.Height))
	}

	if res.FPS <= 0 {
		result.AddError(fmt.Sprintf("invalid_fps: fps %d must be positive", res.FPS))
	} else if !standardFPS[res.FPS] {
		result.AddWarning(fmt.Sprintf("unusual_fps: fps %d is non-standard (expected 24/25/30/60)", res.FPS))
	}
}

func validateScenes(plan *domain.RenderPlan, result *domain.ValidationResult) {
	if len(plan.Scenes) == 0 {
		result.AddError("no_scenes: render plan must have at least one scene")
		return
	}

	first := plan.Scenes[0]
	if first.StartTime > Tolerance || first.StartTime < -Tolerance {
		result.AddError(fmt.Sprintf("scenes_start_late: first scene starts at %.3fs, expected 0", first.StartTime))
	}

	for i, scene := range plan.Scenes {
		loc := fmt.Sprintf("scenes[%d]", i)

		if scene.StartTime < -Tolerance {
			result.AddError(fmt.Sprintf("negative_start_time: %s starts at %.3fs", loc, scene.StartTime))
		}
		if scene.Duration <= 0 {
			result.AddError(fmt.Sprintf("invalid_scene_duration: %s duration %.3fs must be positive", loc, scene.Duration))
		} else if scene.Duration < minSceneSeconds {
			result.AddWarning(fmt.Sprintf("scene_too_short: %s duration %.2fs may be jarring", loc, scene.Duration))
		}

		if i > 0 {
			prev := plan.Scenes[i-1]
			prevEnd := prev.StartTime + prev.Duration
			diff := scene.StartTime - prevEnd
			if diff > Tolerance {
				result.AddError(fmt.Sprintf("scene_gap: %.3fs gap between scenes[%d] and %s", diff, i-1, loc))
			} else if diff < -Tolerance {
				result.AddError(fmt.Sprintf("scene_overlap: %s starts %.3fs before scenes[%d] ends", loc, -diff, i-1))
			}
		}

		for j, overlay := range scene.Overlays {
			oloc := fmt.Sprintf("%s.overlays[%d]", loc, j)
			if overlay.StartTime < scene.StartTime-Tolerance {
				result.AddError(fmt.Sprintf("overlay_out_of_window: %s starts at %.3fs before scene start %.3fs",
					oloc, overlay.StartTime, scene.StartTime))
			}
			sceneEnd := scene.StartTime + scene.Duration
			if overlay.StartTime+overlay.Duration > sceneEnd+Tolerance {
				result.AddError(fmt.Sprintf("overlay_out_of_window: %s ends at %.3fs after scene end %.3fs",
					oloc, overlay.StartTime+overlay.Duration, sceneEnd))
			}
		}
	}

	last := plan.Scenes[len(plan.Scenes)-1]
	lastEnd := last.StartTime + last.Duration
	if diff := lastEnd - plan.TotalDuration; diff > Tolerance || diff < -Tolerance {
		result.AddError(fmt.Sprintf("duration_mismatch: scenes end at %.3fs but total duration is %.3fs",
			lastEnd, plan.TotalDuration))
	}
}

func validateAudio(plan *domain.RenderPlan, result *domain.ValidationResult) {
	if len(plan.AudioTracks) == 0 {
		result.AddWarning("no_audio: render plan has no audio tracks")
	}

	for i, track := range plan.AudioTracks {
		loc := fmt.Sprintf("audio_tracks[%d]", i)

		if track.Volume < 0 {
			result.AddError(fmt.Sprintf("negative_volume: %s volume %.2f", loc, track.Volume))
		} else if track.Volume > maxSafeVolume {
			result.AddWarning(fmt.Sprintf("high_volume: %s volume %.2f may cause clipping", loc, track.Volume))
		}

		if track.StartTime < 0 {
			result.AddError(fmt.Sprintf("negative_audio_start: %s starts at %.3fs", loc, track.StartTime))
		}
		if track.FadeIn < 0 || track.FadeOut < 0 {
			result.AddError(fmt.Sprintf("negative_fade: %s has a negative fade duration", loc))
		}

		if track.Duration > 0 {
			if end := track.StartTime + track.Duration; end > plan.TotalDuration+Tolerance {
				result.AddError(fmt.Sprintf("audio_overrun: %s ends at %.3fs beyond total duration %.3fs",
					loc, end, plan.TotalDuration))
			}
		} else if track.StartTime > plan.TotalDuration+Tolerance {
			result.AddError(fmt.Sprintf("audio_overrun: %s starts at %.3fs beyond total duration %.3fs",
				loc, track.StartTime, plan.TotalDuration))
		}
	}
}

func validateSubtitles(plan *domain.RenderPlan, result *domain.ValidationResult) {
	for i, seg := range plan.Subtitles {
		loc := fmt.Sprintf("subtitles[%d]", i)

		if seg.StartTime < 0 || seg.EndTime <= seg.StartTime {
			result.AddError(fmt.Sprintf("invalid_subtitle_window: %s window %.3fs-%.3fs", loc, seg.StartTime, seg.EndTime))
			continue
		}
		if seg.EndTime > plan.TotalDuration+Tolerance {
			result.AddError(fmt.Sprintf("subtitle_overrun: %s ends at %.3fs beyond total duration %.3fs",
				loc, seg.EndTime, plan.TotalDuration))
		}
		if seg.EndTime-seg.StartTime > maxSubtitleSeconds {
			result.AddWarning(fmt.Sprintf("subtitle_too_long: %s shows for %.1fs, harder to read past %.0fs",
				loc, seg.EndTime-seg.StartTime, maxSubtitleSeconds))
		}
	}
}
