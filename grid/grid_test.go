package grid_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/voxmaze/grid"
)

// TestNew_Errors verifies that sub-unit dimensions are rejected.
func TestNew_Errors(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-1, 3, 3}} {
		if _, err := grid.New(dims[0], dims[1], dims[2]); !errors.Is(err, grid.ErrDimension) {
			t.Errorf("New(%v): want ErrDimension, got %v", dims, err)
		}
	}
}

// TestAt_Bounds covers in-range lookup and the nil out-of-range contract.
func TestAt_Bounds(t *testing.T) {
	g, err := grid.New(3, 4, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := g.At(2, 3, 4)
	if c == nil {
		t.Fatal("At(2,3,4) = nil; want cell")
	}
	if got := c.Coord(); got != (grid.Coord{X: 2, Y: 3, Z: 4}) {
		t.Errorf("Coord = %v; want (2,3,4)", got)
	}
	for _, bad := range []grid.Coord{{X: 3}, {Y: 4}, {Z: 5}, {X: -1}, {Y: -1}, {Z: -1}} {
		if got := g.AtCoord(bad); got != nil {
			t.Errorf("AtCoord(%v) = %v; want nil", bad, got.Coord())
		}
	}
}

// TestDirection_Opposite checks the three axis pairings both ways.
func TestDirection_Opposite(t *testing.T) {
	pairs := map[grid.Direction]grid.Direction{
		grid.East:  grid.West,
		grid.Up:    grid.Down,
		grid.North: grid.South,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v; want %v", d, got, want)
		}
		if got := want.Opposite(); got != d {
			t.Errorf("%v.Opposite() = %v; want %v", want, got, d)
		}
	}
}

// TestRawNeighbors_CountsAndOrder checks corner/center neighbor counts and
// the fixed east,west,up,down,north,south emission order.
func TestRawNeighbors_CountsAndOrder(t *testing.T) {
	g, _ := grid.New(3, 3, 3)

	corner := g.At(0, 0, 0)
	if n := g.RawNeighbors(corner); len(n) != 3 {
		t.Errorf("corner neighbors = %d; want 3", len(n))
	}

	center := g.At(1, 1, 1)
	got := make([]grid.Coord, 0, 6)
	for _, n := range g.RawNeighbors(center) {
		got = append(got, n.Coord())
	}
	want := []grid.Coord{
		{X: 2, Y: 1, Z: 1}, // east
		{X: 0, Y: 1, Z: 1}, // west
		{X: 1, Y: 2, Z: 1}, // up
		{X: 1, Y: 0, Z: 1}, // down
		{X: 1, Y: 1, Z: 2}, // north
		{X: 1, Y: 1, Z: 0}, // south
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("center neighbor order = %v; want %v", got, want)
	}
}

// TestRemoveWallBetween_Symmetry verifies that both faces open atomically.
func TestRemoveWallBetween_Symmetry(t *testing.T) {
	g, _ := grid.New(2, 1, 1)
	a, b := g.At(0, 0, 0), g.At(1, 0, 0)

	if !a.WallTo(b) || !b.WallTo(a) {
		t.Fatal("fresh grid: expected walls on both sides")
	}
	g.RemoveWallBetween(a, b)
	if a.WallTo(b) || b.WallTo(a) {
		t.Error("after removal: expected both sides open")
	}
	if a.Walls[grid.East] || b.Walls[grid.West] {
		t.Error("expected east/west flag pair cleared")
	}
}

// TestRemoveWallBetween_NonAdjacentPanics checks the fatal-invariant path.
func TestRemoveWallBetween_NonAdjacentPanics(t *testing.T) {
	g, _ := grid.New(3, 1, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-adjacent cells")
		}
	}()
	g.RemoveWallBetween(g.At(0, 0, 0), g.At(2, 0, 0))
}

// TestWallTo_NonNeighbor treats distant cells as walled.
func TestWallTo_NonNeighbor(t *testing.T) {
	g, _ := grid.New(3, 3, 3)
	if !g.At(0, 0, 0).WallTo(g.At(2, 2, 2)) {
		t.Error("non-neighbors must read as walled")
	}
}

// TestPassableNeighbors honors walls and the Blocked marking.
func TestPassableNeighbors(t *testing.T) {
	g, _ := grid.New(3, 1, 1)
	a, b, c := g.At(0, 0, 0), g.At(1, 0, 0), g.At(2, 0, 0)

	if n := g.PassableNeighbors(b); len(n) != 0 {
		t.Errorf("all-walled: passable = %d; want 0", len(n))
	}

	g.RemoveWallBetween(a, b)
	g.RemoveWallBetween(b, c)
	got := g.PassableNeighbors(b)
	if len(got) != 2 || got[0] != c || got[1] != a {
		t.Errorf("passable of b = %v; want [c a] in direction order", got)
	}

	c.Blocked = true
	if n := g.PassableNeighbors(b); len(n) != 1 || n[0] != a {
		t.Errorf("blocked c: passable = %v; want [a]", n)
	}
}

// TestStats counts walls and openings with the double-count halved.
func TestStats(t *testing.T) {
	g, _ := grid.New(2, 1, 1)
	s := g.Stats()
	// 2 cells * 6 faces = 12 flags, all walls: 12/2 = 6.
	if s.Cells != 2 || s.Walls != 6 || s.Openings != 0 {
		t.Errorf("fresh stats = %+v; want 2 cells, 6 walls, 0 openings", s)
	}

	g.RemoveWallBetween(g.At(0, 0, 0), g.At(1, 0, 0))
	s = g.Stats()
	if s.Walls != 5 || s.Openings != 1 {
		t.Errorf("after one removal = %+v; want 5 walls, 1 opening", s)
	}
	if s.Dimensions != "2x1x1" {
		t.Errorf("Dimensions = %q; want 2x1x1", s.Dimensions)
	}
}

// TestResetPathfinding_Idempotent compares the scratch state after one and
// two consecutive resets.
func TestResetPathfinding_Idempotent(t *testing.T) {
	g, _ := grid.New(2, 2, 2)
	c := g.At(1, 1, 1)
	c.G, c.H, c.F, c.Dist = 3, 4, 7, 3
	c.Parent = g.At(0, 1, 1)

	g.ResetPathfinding()
	snapshot := *c
	g.ResetPathfinding()
	if *c != snapshot {
		t.Errorf("second reset changed state: %+v vs %+v", *c, snapshot)
	}
	if !math.IsInf(c.G, 1) || c.H != 0 || !math.IsInf(c.F, 1) || !math.IsInf(c.Dist, 1) || c.Parent != nil {
		t.Errorf("reset scratch state = %+v; want inf/0/inf/inf/nil", c)
	}
}

// TestResetGeneration restores the fully-walled unvisited state.
func TestResetGeneration(t *testing.T) {
	g, _ := grid.New(2, 1, 1)
	a, b := g.At(0, 0, 0), g.At(1, 0, 0)
	g.RemoveWallBetween(a, b)
	a.Visited = true

	g.ResetGeneration()
	if !a.WallTo(b) || !b.WallTo(a) {
		t.Error("expected walls restored")
	}
	if a.Visited {
		t.Error("expected Visited cleared")
	}
}

// TestIndex follows the z-major flattening used for DSU labels.
func TestIndex(t *testing.T) {
	g, _ := grid.New(3, 4, 5)
	c := g.At(2, 3, 4)
	if got, want := g.Index(c), 4*(3*4)+3*3+2; got != want {
		t.Errorf("Index = %d; want %d", got, want)
	}
}
