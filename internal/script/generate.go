// Package script turns mediated text into a beat-structured draft and parses
// user-edited script text back into the same shape. Both operations are
// deterministic: identical input text always yields the identical script.
// The LLM-backed version of drafting is an external collaborator; this is
// the in-process fallback the state machine calls directly.
package script

import (
	"strings"
	"unicode"

	"github.com/macizomedia/editorBot/pkg/domain"
)

const (
	// wordsPerSecond approximates a comfortable narration pace.
	wordsPerSecond = 2.5
	minBeatSeconds = 2.0
	maxKeywords    = 3
)

// Generate drafts a script from mediated text. Each sentence becomes a beat;
// the first beat is tagged "hook", the last "conclusion", everything between
// "argument". Durations are estimated from word count at narration pace.
func Generate(mediated string) *domain.Script {
	sentences := splitSentences(mediated)
	if len(sentences) == 0 {
		return &domain.Script{StructureType: "monologue"}
	}

	s := &domain.Script{}
	for i, text := range sentences {
		s.Beats = append(s.Beats, domain.Beat{
			Text:            text,
			DurationSeconds: estimateDuration(text),
			Role:            roleFor(i, len(sentences)),
			Keywords:        extractKeywords(text),
		})
	}

	if len(s.Beats) == 1 {
		s.StructureType = "monologue"
	} else {
		s.StructureType = "explainer"
	}
	return s
}

func roleFor(i, n int) string {
	switch {
	case i == 0:
		return "hook"
	case i == n-1 && n > 1:
		return "conclusion"
	default:
		return "argument"
	}
}

func splitSentences(text string) []string {
	var out []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			out = append(out, s)
		}
		b.Reset()
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return out
}

func estimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	d := float64(words) / wordsPerSecond
	if d < minBeatSeconds {
		return minBeatSeconds
	}
	// Round to a tenth so durations survive JSON round trips exactly.
	return float64(int(d*10+0.5)) / 10
}

func extractKeywords(text string) []string {
	var keywords []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len([]rune(w)) > 6 {
			keywords = append(keywords, strings.ToLower(w))
		}
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
