// Package setup assembles a playable session from a generated map: it runs
// the chosen generator, drops the player on a random floor tile and sites
// the exit, either strategically through the director or at random.
package setup

import (
	"math/rand"
	"time"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/director"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/state"
)

// DefaultMinExitDistance is how far (in steps) the director tries to place
// the exit from the player
const DefaultMinExitDistance = 15

// Config describes one session to build
type Config struct {
	// MapType selects the generator: generator.TypeDungeon or TypeCavern
	MapType string

	Width  int
	Height int

	// UseDirector places the exit strategically instead of uniformly
	UseDirector bool

	// MinExitDistance only applies when UseDirector is set;
	// zero means DefaultMinExitDistance
	MinExitDistance int

	// Seed makes the whole session reproducible; zero picks a random seed
	Seed int64
}

// NewSession generates a map and places the player and exit on it
func NewSession(cfg Config) *state.Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	minDistance := cfg.MinExitDistance
	if minDistance == 0 {
		minDistance = DefaultMinExitDistance
	}

	gen := generator.New(cfg.MapType, cfg.Width, cfg.Height)
	gen.SetSeed(seed)
	grid := gen.Generate()

	g := state.NewGame()
	g.Grid = grid
	g.MapType = cfg.MapType
	g.UseDirector = cfg.UseDirector

	rng := rand.New(rand.NewSource(seed))

	// Generators always leave at least one floor tile.
	floors := grid.AllFloorTiles()
	g.Player = floors[rng.Intn(len(floors))]
	g.Exit = placeExit(g, floors, minDistance, seed, rng)

	return g
}

// placeExit sites the exit for the session. With the director enabled it
// asks for a strategic position and only falls back to a random tile when
// none exists; otherwise any floor tile other than the player's will do.
// A single-tile map leaves the exit on the player.
func placeExit(g *state.Game, floors []world.Coord, minDistance int, seed int64, rng *rand.Rand) world.Coord {
	if g.UseDirector {
		d := director.NewDirector(g.Grid)
		d.SetSeed(seed)
		if exit, ok := d.FindStrategicExit(g.Player, minDistance); ok {
			return exit
		}
	}

	var candidates []world.Coord
	for _, c := range floors {
		if c != g.Player {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return g.Player
	}
	return candidates[rng.Intn(len(candidates))]
}
