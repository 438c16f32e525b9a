package grid

import "math"

// Cell is a single addressable unit of the 3D grid. It owns six wall flags
// (all present by default), a Blocked marker, a Visited flag used only
// during maze generation, and per-search scratch fields mutated only by the
// search package and cleared by Grid.ResetPathfinding.
//
// Cells are created once when the Grid is built and live for the Grid's
// lifetime; identity is coordinate-based (see Coord).
type Cell struct {
	// X, Y, Z are the cell's coordinates within the owning Grid.
	X, Y, Z int

	// Walls holds one flag per Direction; true means the face is closed.
	Walls [NumDirections]bool

	// Blocked marks the cell impassable. Generators clear it on every
	// cell when they finish; after generation the wall flags are the sole
	// connectivity constraint.
	Blocked bool

	// Visited is generation-only bookkeeping.
	Visited bool

	// Pathfinding scratch state. G is accumulated step cost from the
	// start, H the heuristic estimate to the goal, F their sum, Dist the
	// uniform-cost distance. Parent links back along the discovered path.
	G, H, F float64
	Dist    float64
	Parent  *Cell
}

// Coord returns the cell's coordinate triple.
// Complexity: O(1).
func (c *Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y, Z: c.Z}
}

// WallTo reports whether a wall separates c from neighbor n, checked from
// c's side. Non-neighbors are reported as walled (impassable).
// Complexity: O(1).
func (c *Cell) WallTo(n *Cell) bool {
	d, ok := DirectionBetween(c.Coord(), n.Coord())
	if !ok {
		return true
	}
	return c.Walls[d]
}

// resetGeneration restores the fully-walled, unvisited initial state.
func (c *Cell) resetGeneration() {
	for d := East; d < NumDirections; d++ {
		c.Walls[d] = true
	}
	c.Visited = false
}

// resetPathfinding clears all search scratch state. Idempotent.
func (c *Cell) resetPathfinding() {
	c.G = math.Inf(1)
	c.H = 0
	c.F = math.Inf(1)
	c.Dist = math.Inf(1)
	c.Parent = nil
}
