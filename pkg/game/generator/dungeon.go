package generator

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// DungeonGenerator builds maze-like maps with long winding corridors using
// randomized iterative DFS. The carved region forms a spanning tree: one
// connected component, no cycles, many dead ends.
type DungeonGenerator struct {
	width  int
	height int
	rng    *rand.Rand
}

// NewDungeonGenerator creates a dungeon generator for the given dimensions.
// Even dimensions are coerced up to the next odd value; the carving scheme
// steps between odd coordinates and needs an odd-sized grid to keep a wall
// border on all sides. Callers should read the effective size back from the
// generated grid.
func NewDungeonGenerator(width, height int) *DungeonGenerator {
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	return &DungeonGenerator{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Name returns the name of this generator
func (g *DungeonGenerator) Name() string {
	return "Dungeon (DFS)"
}

// SetSeed allows setting a specific seed for reproducible maps
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// carveSteps are the four candidate moves, two cells away in each direction.
var carveSteps = [4]world.Coord{
	{X: 0, Y: -2},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Generate creates a new dungeon map
func (g *DungeonGenerator) Generate() *world.Grid {
	grid := world.NewGrid(g.width, g.height)

	start := world.Coord{
		X: g.randomOdd(g.width),
		Y: g.randomOdd(g.height),
	}

	// Explicit stack instead of recursion to stay clear of call-stack
	// depth limits on large grids
	stack := []world.Coord{start}
	visited := mapset.New[world.Coord]()
	visited.Put(start)
	grid.Set(start.X, start.Y, world.Floor)

	for len(stack) > 0 {
		current := stack[len(stack)-1] // peek, not pop

		// Candidates two cells away that are in bounds and unvisited.
		// Cells are marked visited the moment they are carved, so an
		// unvisited candidate is always still wall.
		var candidates []world.Coord
		for _, step := range carveSteps {
			next := world.Coord{X: current.X + step.X, Y: current.Y + step.Y}
			if grid.InBounds(next.X, next.Y) && !visited.Has(next) {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		next := candidates[g.rng.Intn(len(candidates))]

		// Carve the wall between current and the candidate, then the
		// candidate itself.
		grid.Set((current.X+next.X)/2, (current.Y+next.Y)/2, world.Floor)
		grid.Set(next.X, next.Y, world.Floor)

		visited.Put(next)
		stack = append(stack, next)
	}

	return grid
}

// randomOdd picks a uniformly random odd coordinate in [1, size-2]
func (g *DungeonGenerator) randomOdd(size int) int {
	return 1 + 2*g.rng.Intn((size-1)/2)
}
