package world

// Grid represents the game map with encapsulated cell storage.
// It is created filled with Wall; generators carve it in place and hand it
// to the caller, after which nothing should mutate it.
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// NewGrid creates a new grid of the given dimensions, filled with Wall
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Dimensions returns the grid width and height
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set writes the cell at the given position. Out-of-bounds writes are a no-op.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// Get returns the cell at the given position.
// Out-of-bounds positions answer as Wall, so neighbor logic needs no
// boundary branches.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y][x]
}

// IsFloor checks if a position holds a walkable floor tile
func (g *Grid) IsFloor(x, y int) bool {
	return g.Get(x, y) == Floor
}

// IsWall checks if a position holds a wall (out-of-bounds counts as wall)
func (g *Grid) IsWall(x, y int) bool {
	return g.Get(x, y) == Wall
}

// CenterPosition returns the coordinate of the grid center
func (g *Grid) CenterPosition() Coord {
	return Coord{g.width / 2, g.height / 2}
}

// ForEachCell iterates over all cells in row-major order,
// calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// AllFloorTiles returns the coordinates of every floor tile in row-major
// order (y ascending, then x ascending)
func (g *Grid) AllFloorTiles() []Coord {
	var tiles []Coord
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == Floor {
				tiles = append(tiles, Coord{x, y})
			}
		}
	}
	return tiles
}

// CountFloorTiles returns the total number of floor tiles
func (g *Grid) CountFloorTiles() int {
	n := 0
	g.ForEachCell(func(x, y int, c Cell) {
		if c == Floor {
			n++
		}
	})
	return n
}

// CountWallNeighbors counts wall cells in the square neighborhood of side
// 2*radius+1 centered on (x,y), excluding the center itself.
// Out-of-bounds cells count as walls.
func (g *Grid) CountWallNeighbors(x, y, radius int) int {
	count := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsWall(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// FloorNeighbors returns how many of the four axis-aligned neighbors of
// (x,y) are floor tiles
func (g *Grid) FloorNeighbors(x, y int) int {
	n := 0
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if g.IsFloor(x+dx, y+dy) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		copy(c.cells[y], g.cells[y])
	}
	return c
}
