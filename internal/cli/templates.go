package cli

import "github.com/macizomedia/editorBot/pkg/domain"

// SeedTemplates is the built-in catalog used when no remote catalog URL is
// configured. The set mirrors the production catalog closely enough for
// offline demos and the chat simulator.
func SeedTemplates() []domain.TemplateSpec {
	return []domain.TemplateSpec{
		{
			ID:          "reel_opinion",
			Name:        "Opinion Reel",
			Family:      "reel",
			Description: "Short vertical opinion piece: hook, argument, conclusion.",
			DurationBounds: domain.DurationBounds{
				Min:    15,
				Target: 30,
				Max:    45,
			},
			StructureType:     "hook-argument-conclusion",
			BeatCount:         domain.BeatCountBounds{Min: 3, Max: 6},
			RequiredRoles:     []string{"hook", "conclusion"},
			OptionalRoles:     []string{"argument"},
			Enforcement:       domain.EnforcementStrict,
			AllowedFormats:    []string{"REEL_VERTICAL"},
			MusicAllowed:      true,
			SubtitlesRequired: true,
			DefaultTransition: "crossfade",
		},
		{
			ID:          "explainer_60",
			Name:        "One-Minute Explainer",
			Family:      "explainer",
			Description: "Relaxed explainer for any platform, up to a minute.",
			DurationBounds: domain.DurationBounds{
				Min:    20,
				Target: 60,
				Max:    75,
			},
			BeatCount:         domain.BeatCountBounds{Min: 2, Max: 10},
			Enforcement:       domain.EnforcementFlexible,
			AllowedFormats:    []string{"LANDSCAPE_16_9", "REEL_VERTICAL"},
			MusicAllowed:      true,
			SubtitlesRequired: false,
			DefaultTransition: "cut",
		},
		{
			ID:          "story_teaser",
			Name:        "Story Teaser",
			Family:      "reel",
			Description: "Fast teaser with no spoken conclusion, music forward.",
			DurationBounds: domain.DurationBounds{
				Min:    8,
				Target: 15,
				Max:    20,
			},
			BeatCount:         domain.BeatCountBounds{Min: 1, Max: 4},
			ForbiddenRoles:    []string{"conclusion"},
			Enforcement:       domain.EnforcementStrict,
			AllowedFormats:    []string{"SQUARE_1_1", "REEL_VERTICAL"},
			MusicAllowed:      true,
			SubtitlesRequired: true,
			DefaultTransition: "slide",
		},
	}
}
