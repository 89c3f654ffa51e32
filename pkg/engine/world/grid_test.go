package world

import (
	"testing"
)

// plusGrid builds the 5x5 all-wall grid with a plus-shape of floor centered
// at (2,2): (2,1),(1,2),(2,2),(3,2),(2,3).
func plusGrid() *Grid {
	g := NewGrid(5, 5)
	for _, c := range []Coord{{2, 1}, {1, 2}, {2, 2}, {3, 2}, {2, 3}} {
		g.Set(c.X, c.Y, Floor)
	}
	return g
}

func TestNewGrid_FilledWithWall(t *testing.T) {
	g := NewGrid(4, 3)
	g.ForEachCell(func(x, y int, c Cell) {
		if c != Wall {
			t.Errorf("new grid cell (%d,%d) = %v, want Wall", x, y, c)
		}
	})
	w, h := g.Dimensions()
	if w != 4 || h != 3 {
		t.Errorf("Dimensions() = (%d,%d), want (4,3)", w, h)
	}
}

func TestNewGrid_PanicsOnNonPositiveDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5)
}

func TestGet_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Floor)
	cases := []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-10, -10}, {100, 100}}
	for _, c := range cases {
		if g.Get(c.X, c.Y) != Wall {
			t.Errorf("Get(%d,%d) out of bounds should be Wall", c.X, c.Y)
		}
		if !g.IsWall(c.X, c.Y) {
			t.Errorf("IsWall(%d,%d) out of bounds should be true", c.X, c.Y)
		}
		if g.IsFloor(c.X, c.Y) {
			t.Errorf("IsFloor(%d,%d) out of bounds should be false", c.X, c.Y)
		}
	}
}

func TestSet_OutOfBoundsIsNoOp(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0, Floor)
	g.Set(0, -1, Floor)
	g.Set(2, 0, Floor)
	g.Set(0, 2, Floor)
	if n := g.CountFloorTiles(); n != 0 {
		t.Errorf("out-of-bounds Set carved %d floor tiles, want 0", n)
	}
}

func TestAllFloorTiles_RowMajorOrder(t *testing.T) {
	g := plusGrid()
	want := []Coord{{2, 1}, {1, 2}, {2, 2}, {3, 2}, {2, 3}}
	got := g.AllFloorTiles()
	if len(got) != len(want) {
		t.Fatalf("AllFloorTiles() returned %d tiles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllFloorTiles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCountWallNeighbors_CenterOfPlus(t *testing.T) {
	g := plusGrid()
	// All four axis neighbors of the center are floor; the four diagonals are wall.
	if n := g.CountWallNeighbors(2, 2, 1); n != 4 {
		t.Errorf("CountWallNeighbors(2,2,1) = %d, want 4", n)
	}
}

func TestCountWallNeighbors_CornerCountsOutOfBoundsAsWall(t *testing.T) {
	g := NewGrid(3, 3)
	// 3x3 neighborhood of (0,0) has 8 neighbors, 5 of them out of bounds.
	if n := g.CountWallNeighbors(0, 0, 1); n != 8 {
		t.Errorf("CountWallNeighbors(0,0,1) on all-wall grid = %d, want 8", n)
	}
	g.Set(1, 0, Floor)
	g.Set(1, 1, Floor)
	if n := g.CountWallNeighbors(0, 0, 1); n != 6 {
		t.Errorf("CountWallNeighbors(0,0,1) = %d, want 6", n)
	}
}

func TestCountWallNeighbors_Radius2(t *testing.T) {
	g := NewGrid(5, 5)
	// 5x5 neighborhood minus center = 24 cells, all wall.
	if n := g.CountWallNeighbors(2, 2, 2); n != 24 {
		t.Errorf("CountWallNeighbors(2,2,2) = %d, want 24", n)
	}
}

func TestFloorNeighbors(t *testing.T) {
	g := plusGrid()
	if n := g.FloorNeighbors(2, 2); n != 4 {
		t.Errorf("FloorNeighbors(2,2) = %d, want 4", n)
	}
	if n := g.FloorNeighbors(2, 1); n != 1 {
		t.Errorf("FloorNeighbors(2,1) = %d, want 1 (arm tip)", n)
	}
	if n := g.FloorNeighbors(0, 0); n != 0 {
		t.Errorf("FloorNeighbors(0,0) = %d, want 0", n)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := plusGrid()
	c := g.Clone()
	c.Set(0, 0, Floor)
	if g.IsFloor(0, 0) {
		t.Error("mutating a clone changed the original grid")
	}
	if !c.IsFloor(2, 2) {
		t.Error("clone lost floor tile at (2,2)")
	}
}

func TestCoordStep(t *testing.T) {
	c := Coord{3, 3}
	if got := c.Step(North); got != (Coord{3, 2}) {
		t.Errorf("Step(North) = %v, want (3,2)", got)
	}
	if got := c.Step(East); got != (Coord{4, 3}) {
		t.Errorf("Step(East) = %v, want (4,3)", got)
	}
	if got := c.Step(South); got != (Coord{3, 4}) {
		t.Errorf("Step(South) = %v, want (3,4)", got)
	}
	if got := c.Step(West); got != (Coord{2, 3}) {
		t.Errorf("Step(West) = %v, want (2,3)", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("Opposite(Opposite(%v)) != %v", dir, dir)
		}
	}
}
