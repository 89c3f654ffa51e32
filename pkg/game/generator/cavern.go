package generator

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// Default cavern tuning
const (
	// DefaultWallProbability is the chance of an interior cell seeding as wall
	DefaultWallProbability = 0.45
	// DefaultSmoothingIterations is the number of cellular automata passes
	DefaultSmoothingIterations = 4
)

// Cellular automata smoothing thresholds: a wall with wallBecomesFloorAt or
// fewer wall neighbors opens up; a floor with floorBecomesWallAt or more
// closes over.
const (
	wallBecomesFloorAt = 4
	floorBecomesWallAt = 5
)

// CavernGenerator builds open, organic cave systems using cellular automata
// seeding and smoothing, then keeps only the largest connected floor region.
type CavernGenerator struct {
	width               int
	height              int
	wallProbability     float64
	smoothingIterations int
	rng                 *rand.Rand
}

// NewCavernGenerator creates a cavern generator with default tuning
func NewCavernGenerator(width, height int) *CavernGenerator {
	return NewTunedCavernGenerator(width, height, DefaultWallProbability, DefaultSmoothingIterations)
}

// NewTunedCavernGenerator creates a cavern generator with explicit wall
// probability (0.0-1.0) and smoothing iteration count
func NewTunedCavernGenerator(width, height int, wallProbability float64, smoothingIterations int) *CavernGenerator {
	return &CavernGenerator{
		width:               width,
		height:              height,
		wallProbability:     wallProbability,
		smoothingIterations: smoothingIterations,
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Name returns the name of this generator
func (g *CavernGenerator) Name() string {
	return "Cavern (BFS)"
}

// SetSeed allows setting a specific seed for reproducible maps
func (g *CavernGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate creates a new cavern map
func (g *CavernGenerator) Generate() *world.Grid {
	grid := world.NewGrid(g.width, g.height)

	g.randomSeed(grid)

	for i := 0; i < g.smoothingIterations; i++ {
		g.smooth(grid)
	}

	g.ensureConnectivity(grid)

	return grid
}

// randomSeed randomly opens interior cells. The border rows and columns are
// never touched and stay wall for the life of the map.
func (g *CavernGenerator) randomSeed(grid *world.Grid) {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.rng.Float64() > g.wallProbability {
				grid.Set(x, y, world.Floor)
			}
		}
	}
}

// smooth applies one cellular automata pass. Every cell is decided from a
// snapshot of the pre-pass grid; smoothing in place would make the outcome
// depend on scan order.
func (g *CavernGenerator) smooth(grid *world.Grid) {
	snapshot := grid.Clone()

	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			walls := snapshot.CountWallNeighbors(x, y, 1)

			if snapshot.IsWall(x, y) {
				if walls <= wallBecomesFloorAt {
					grid.Set(x, y, world.Floor)
				}
			} else {
				if walls >= floorBecomesWallAt {
					grid.Set(x, y, world.Wall)
				}
			}
		}
	}
}

// ensureConnectivity keeps only the largest connected floor region, filling
// every smaller pocket back in with wall. A map that ended up with no floor
// at all gets a single floor cell carved at the center so the result is
// always playable.
func (g *CavernGenerator) ensureConnectivity(grid *world.Grid) {
	largest := world.LargestFloorComponent(grid)
	if largest == nil {
		center := grid.CenterPosition()
		grid.Set(center.X, center.Y, world.Floor)
		return
	}

	keep := mapset.New[world.Coord]()
	for _, c := range largest {
		keep.Put(c)
	}

	grid.ForEachCell(func(x, y int, c world.Cell) {
		if c == world.Floor && !keep.Has(world.Coord{X: x, Y: y}) {
			grid.Set(x, y, world.Wall)
		}
	})
}
