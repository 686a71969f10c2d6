// Package tui holds the terminal presentation helpers for the interactive
// chat command.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown for the terminal.
// When stdout is not a TTY (piped output, CI) the markdown passes through
// unstyled so logs stay grep-able.
func NewRenderer() func(string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func(markdown string) string { return markdown }
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark background
		glamour.WithWordWrap(rendererWidth()),
	)
	if err != nil {
		return func(markdown string) string { return markdown }
	}

	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}

func rendererWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > 100 {
		return 100
	}
	return width
}
