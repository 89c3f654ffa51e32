package world

import (
	"testing"
)

func TestFloorComponents_EmptyGrid(t *testing.T) {
	g := NewGrid(4, 4)
	if comps := FloorComponents(g); len(comps) != 0 {
		t.Errorf("all-wall grid returned %d components, want 0", len(comps))
	}
	if largest := LargestFloorComponent(g); largest != nil {
		t.Errorf("LargestFloorComponent on all-wall grid = %v, want nil", largest)
	}
}

func TestFloorComponents_SingleRegion(t *testing.T) {
	g := plusGrid()
	comps := FloorComponents(g)
	if len(comps) != 1 {
		t.Fatalf("plus shape returned %d components, want 1", len(comps))
	}
	if len(comps[0]) != 5 {
		t.Errorf("component has %d tiles, want 5", len(comps[0]))
	}
}

func TestFloorComponents_TwoRegions(t *testing.T) {
	g := NewGrid(7, 3)
	// Two horizontal strips separated by a wall column at x=3.
	for _, x := range []int{0, 1, 2} {
		g.Set(x, 1, Floor)
	}
	for _, x := range []int{4, 5} {
		g.Set(x, 1, Floor)
	}
	comps := FloorComponents(g)
	if len(comps) != 2 {
		t.Fatalf("returned %d components, want 2", len(comps))
	}
	// Row-major scan finds the left strip first.
	if len(comps[0]) != 3 || len(comps[1]) != 2 {
		t.Errorf("component sizes = (%d,%d), want (3,2)", len(comps[0]), len(comps[1]))
	}
	largest := LargestFloorComponent(g)
	if len(largest) != 3 {
		t.Errorf("LargestFloorComponent size = %d, want 3", len(largest))
	}
}

func TestFloorComponents_DiagonalsAreNotAdjacent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, Floor)
	g.Set(1, 1, Floor)
	if comps := FloorComponents(g); len(comps) != 2 {
		t.Errorf("diagonal tiles returned %d components, want 2 (4-directional adjacency)", len(comps))
	}
}

func TestLargestFloorComponent_TieKeepsFirstFound(t *testing.T) {
	g := NewGrid(5, 1)
	g.Set(0, 0, Floor)
	g.Set(2, 0, Floor)
	largest := LargestFloorComponent(g)
	if len(largest) != 1 || largest[0] != (Coord{0, 0}) {
		t.Errorf("tie should keep the first component in scan order, got %v", largest)
	}
}

func TestFloorComponents_CoverAllFloorTilesOnce(t *testing.T) {
	g := NewGrid(6, 6)
	for _, c := range []Coord{{1, 1}, {2, 1}, {1, 2}, {4, 4}, {4, 3}, {3, 0}} {
		g.Set(c.X, c.Y, Floor)
	}
	total := 0
	seen := make(map[Coord]bool)
	for _, comp := range FloorComponents(g) {
		for _, c := range comp {
			if seen[c] {
				t.Errorf("tile %v appears in more than one component", c)
			}
			seen[c] = true
			total++
		}
	}
	if total != g.CountFloorTiles() {
		t.Errorf("components cover %d tiles, grid has %d floor tiles", total, g.CountFloorTiles())
	}
}
