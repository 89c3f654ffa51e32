// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents the state of a single tile in the grid.
type Cell int

// Cell states
const (
	Wall Cell = iota
	Floor
)

// String returns the map character for a cell
func (c Cell) String() string {
	if c == Floor {
		return "."
	}
	return "#"
}

// Walkable returns true if the cell can be entered
func (c Cell) Walkable() bool {
	return c == Floor
}

// Coord is a zero-based grid coordinate. X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{c.X + dx, c.Y + dy}
}
