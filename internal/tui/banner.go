package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner for the chat command.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	lines := []termenv.Style{
		termenv.String("           _ _ _             ____        _   ").Foreground(p.Color("#818cf8")),
		termenv.String("   ___  __| (_) |_ ___  _ __| __ )  ___ | |_ ").Foreground(p.Color("#a78bfa")),
		termenv.String("  / _ \\/ _` | | __/ _ \\| '__|  _ \\ / _ \\| __|").Foreground(p.Color("#c084fc")),
		termenv.String(" |  __/ (_| | | || (_) | |  | |_) | (_) | |_ ").Foreground(p.Color("#e879f9")),
		termenv.String("  \\___|\\__,_|_|\\__\\___/|_|  |____/ \\___/ \\__|").Foreground(p.Color("#f472b6")),
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Println(termenv.String("  voice to render plan · v" + version).Foreground(p.Color("#fb7185")))
	fmt.Println()
}
