package script

import (
	"strconv"
	"strings"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// Reparse converts a user-edited script text back into a Script. The format
// mirrors what the bot prints for review, one beat per line:
//
//	[hook] This is the opening line (3.5s)
//	[argument] The main point goes here
//
// The role prefix and duration suffix are both optional; a missing duration
// falls back to the narration-pace estimate.
func Reparse(text string) *domain.Script {
	s := &domain.Script{}

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		beat := domain.Beat{}

		if strings.HasPrefix(line, "[") {
			if end := strings.Index(line, "]"); end > 0 {
				beat.Role = strings.TrimSpace(line[1:end])
				line = strings.TrimSpace(line[end+1:])
			}
		}

		if d, rest, ok := trailingDuration(line); ok {
			beat.DurationSeconds = d
			line = rest
		}

		beat.Text = line
		if beat.DurationSeconds <= 0 {
			beat.DurationSeconds = estimateDuration(line)
		}
		beat.Keywords = extractKeywords(line)

		s.Beats = append(s.Beats, beat)
	}

	if len(s.Beats) <= 1 {
		s.StructureType = "monologue"
	} else {
		s.StructureType = "explainer"
	}
	return s
}

// trailingDuration strips a "(3.5s)" suffix, returning the parsed seconds and
// the remaining line.
func trailingDuration(line string) (float64, string, bool) {
	if !strings.HasSuffix(line, ")") {
		return 0, line, false
	}
	open := strings.LastIndex(line, "(")
	if open < 0 {
		return 0, line, false
	}

	inner := strings.TrimSuffix(line[open+1:len(line)-1], "s")
	d, err := strconv.ParseFloat(strings.TrimSpace(inner), 64)
	if err != nil || d <= 0 {
		return 0, line, false
	}
	return d, strings.TrimSpace(line[:open]), true
}
