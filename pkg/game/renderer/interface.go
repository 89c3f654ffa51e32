// Package renderer defines the pluggable rendering surface for the game.
package renderer

import (
	"labyrinth/pkg/game/director"
	"labyrinth/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// The terminal renderer is the only backend in-tree; a graphical one can
// plug in behind the same interface.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the map, the metrics
	// line when the director supplied one, and the message log
	RenderFrame(g *state.Game, metrics *director.Metrics)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game, metrics *director.Metrics) {
	if Current != nil {
		Current.RenderFrame(g, metrics)
	}
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
