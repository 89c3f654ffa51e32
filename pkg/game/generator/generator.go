// Package generator provides the map generation algorithms for the game.
package generator

import (
	"labyrinth/pkg/engine/world"
)

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	// Generate builds a fresh grid; each call produces a new map
	Generate() *world.Grid

	// Name returns the display name of this generator
	Name() string

	// SetSeed reseeds the generator for reproducible maps
	SetSeed(seed int64)
}

// Map type identifiers accepted by New
const (
	TypeDungeon = "dungeon"
	TypeCavern  = "cavern"
)

// New returns the generator for the given map type at the given dimensions.
// Unknown types fall back to the dungeon generator.
func New(mapType string, width, height int) MapGenerator {
	if mapType == TypeCavern {
		return NewCavernGenerator(width, height)
	}
	return NewDungeonGenerator(width, height)
}
