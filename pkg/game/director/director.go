// Package director analyzes generated maps and makes placement decisions:
// shortest paths, dead-end counts, openness scoring and strategic exit
// placement.
package director

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// NoPath is returned by ShortestPathLength when the endpoints are not
// connected by floor tiles (or are not floor at all).
const NoPath = -1

// Metrics bundles the map analysis results
type Metrics struct {
	// PathComplexity is the shortest path length between player and exit,
	// or NoPath if the exit is unreachable
	PathComplexity int

	// DeadEnds is the number of floor tiles with exactly one floor neighbor
	DeadEnds int

	// Openness is the percentage of all grid cells that are floor (0-100)
	Openness float64
}

// Director analyzes a completed map. It only reads the grid and never
// mutates it; all randomness goes through its own rng.
type Director struct {
	grid *world.Grid
	rng  *rand.Rand
}

// NewDirector creates a director for the given map
func NewDirector(grid *world.Grid) *Director {
	return &Director{
		grid: grid,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible placement decisions
func (d *Director) SetSeed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
}

// ShortestPathLength returns the length in steps of the shortest floor path
// between start and end, or NoPath if either endpoint is not floor or no
// path connects them. BFS over unit-weight edges visits cells in
// non-decreasing distance order, so the first time end is dequeued its
// distance is minimal.
func (d *Director) ShortestPathLength(start, end world.Coord) int {
	if !d.grid.IsFloor(start.X, start.Y) || !d.grid.IsFloor(end.X, end.Y) {
		return NoPath
	}

	type entry struct {
		pos  world.Coord
		dist int
	}

	visited := mapset.New[world.Coord]()
	queue := []entry{{start, 0}}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.pos == end {
			return current.dist
		}

		for _, dir := range world.AllDirections() {
			next := current.pos.Step(dir)
			if !d.grid.IsFloor(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, entry{next, current.dist + 1})
		}
	}

	return NoPath
}

// CountDeadEnds returns the number of dead-end tiles: floor tiles with
// exactly one floor neighbor among the four axis-aligned neighbors
func (d *Director) CountDeadEnds() int {
	count := 0
	d.grid.ForEachCell(func(x, y int, c world.Cell) {
		if c == world.Floor && d.grid.FloorNeighbors(x, y) == 1 {
			count++
		}
	})
	return count
}

// OpennessScore returns the percentage of all cells that are floor.
// A zero-area grid scores 0.
func (d *Director) OpennessScore() float64 {
	w, h := d.grid.Dimensions()
	total := w * h
	if total == 0 {
		return 0.0
	}
	return float64(d.grid.CountFloorTiles()) / float64(total) * 100
}

// distanceMap runs a full BFS from the source and returns the step distance
// to every reachable floor tile, the source included at distance 0
func (d *Director) distanceMap(source world.Coord) map[world.Coord]int {
	distances := map[world.Coord]int{source: 0}
	queue := []world.Coord{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			next := current.Step(dir)
			if !d.grid.IsFloor(next.X, next.Y) {
				continue
			}
			if _, seen := distances[next]; seen {
				continue
			}
			distances[next] = distances[current] + 1
			queue = append(queue, next)
		}
	}

	return distances
}

// FindStrategicExit picks an exit position far from the player: a uniformly
// random reachable tile at least minDistance steps away. If nothing is that
// far, the farthest reachable tile is used as a best effort. The player's
// own tile is never chosen; ok is false when the player has no reachable
// neighbors at all.
func (d *Director) FindStrategicExit(player world.Coord, minDistance int) (pos world.Coord, ok bool) {
	distances := d.distanceMap(player)

	// Collect candidates in row-major tile order rather than map order so
	// a seeded director makes reproducible choices.
	var far []world.Coord
	best := player
	bestDist := 0
	for _, c := range d.grid.AllFloorTiles() {
		dist, reachable := distances[c]
		if !reachable || c == player {
			continue
		}
		if dist >= minDistance {
			far = append(far, c)
		}
		if dist > bestDist {
			best, bestDist = c, dist
		}
	}

	if len(far) > 0 {
		return far[d.rng.Intn(len(far))], true
	}

	// Best effort: the farthest tile we can actually reach.
	if best == player {
		return world.Coord{}, false
	}
	return best, true
}

// Analyze returns all metrics for the given player and exit placement
func (d *Director) Analyze(player, exit world.Coord) Metrics {
	return Metrics{
		PathComplexity: d.ShortestPathLength(player, exit),
		DeadEnds:       d.CountDeadEnds(),
		Openness:       d.OpennessScore(),
	}
}
