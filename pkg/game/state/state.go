// Package state holds the session state for The Labyrinth of Chaos.
package state

import (
	"labyrinth/pkg/engine/world"
)

// Game represents one exploration session: a generated map, the player and
// exit positions, and the message log shown under the map.
type Game struct {
	Grid *world.Grid

	Player world.Coord
	Exit   world.Coord

	// MapType is the generator that produced the grid (dungeon or cavern)
	MapType string

	// UseDirector records whether the exit was placed strategically
	UseDirector bool

	Messages []string

	// MapsCleared counts how many exits the player has reached this run
	MapsCleared int
}

// NewGame creates an empty game session
func NewGame() *Game {
	return &Game{
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
