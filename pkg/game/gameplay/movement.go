// Package gameplay provides core game logic for player movement and win
// detection.
package gameplay

import (
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
)

// CanEnter checks if the player can enter a position: it must be in bounds
// and a floor tile. Out-of-bounds positions read as wall, so the single
// IsFloor test covers both conditions.
func CanEnter(g *state.Game, pos world.Coord) bool {
	if g.Grid == nil {
		return false
	}
	return g.Grid.IsFloor(pos.X, pos.Y)
}

// TryMove attempts to move the player one step in the given direction.
// Returns true if the move was committed.
func TryMove(g *state.Game, dir world.Direction) bool {
	if !dir.IsValid() {
		return false
	}
	next := g.Player.Step(dir)
	if !CanEnter(g, next) {
		return false
	}
	g.Player = next
	return true
}

// AtExit returns true if the player stands on the exit tile
func AtExit(g *state.Game) bool {
	return g.Player == g.Exit
}
