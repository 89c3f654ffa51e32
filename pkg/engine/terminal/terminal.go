// Package terminal probes the hosting terminal for size and interactivity.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin is attached to a terminal.
// When it is not, the game falls back to a render-once, analyze-only run.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// FitsMap reports whether a map of the given dimensions can be drawn in the
// current terminal, leaving headroom for the metrics and message lines.
func FitsMap(mapWidth, mapHeight int) bool {
	const statusLines = 10
	w, h := GetSize()
	return mapWidth <= w && mapHeight+statusLines <= h
}
