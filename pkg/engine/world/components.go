package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FloorComponents returns every connected component of floor tiles under
// 4-directional adjacency. Components are discovered by scanning the grid in
// row-major order and flooding each unvisited floor tile with BFS, so the
// component containing the topmost-leftmost floor tile comes first.
func FloorComponents(g *Grid) [][]Coord {
	visited := mapset.New[Coord]()
	var components [][]Coord

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			start := Coord{x, y}
			if !g.IsFloor(x, y) || visited.Has(start) {
				continue
			}
			components = append(components, floodComponent(g, start, &visited))
		}
	}
	return components
}

// floodComponent collects all floor tiles reachable from start via BFS.
// Tiles are marked in visited as they are enqueued, so each tile is
// enqueued at most once across the whole scan.
func floodComponent(g *Grid, start Coord, visited *mapset.Set[Coord]) []Coord {
	component := []Coord{start}
	queue := []Coord{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir)
			if !g.IsFloor(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			component = append(component, next)
			queue = append(queue, next)
		}
	}
	return component
}

// LargestFloorComponent returns the floor component with the most tiles.
// Ties go to the component found first in scan order. Returns nil if the
// grid has no floor tiles.
func LargestFloorComponent(g *Grid) []Coord {
	var largest []Coord
	for _, component := range FloorComponents(g) {
		if len(component) > len(largest) {
			largest = component
		}
	}
	return largest
}
