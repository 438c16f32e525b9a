// Package grid owns the dense 3D cell collection used by the maze
// generators and the search algorithms. Adjacency is always computed from
// coordinates, never stored as pointers, so the structure holds exactly one
// cell per coordinate triple and no dangling references.
package grid

import "fmt"

// Grid owns a dense width x height x depth collection of Cells plus a label
// recording which generation algorithm last ran. Wall flags are mutated
// only by the mazegen package; search scratch state only by the search
// package. A Grid is exclusively owned by one logical caller at a time:
// searches mutate shared per-cell scratch fields in place, so concurrent
// searches over one Grid corrupt parent chains (serialize, or give each
// search private scratch storage, if that is ever needed).
type Grid struct {
	// Width, Height, Depth are the fixed dimensions (X, Y, Z extents).
	Width, Height, Depth int

	// Generator is the label of the generation algorithm that last ran.
	Generator string

	cells []Cell
}

// New constructs an all-walled Grid of the given dimensions.
// Returns ErrDimension if any dimension is smaller than one.
// Complexity: O(W*H*D) time and memory.
func New(width, height, depth int) (*Grid, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrDimension, width, height, depth)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Depth:  depth,
		cells:  make([]Cell, width*height*depth),
	}
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := &g.cells[g.index(x, y, z)]
				c.X, c.Y, c.Z = x, y, z
				c.resetGeneration()
				c.resetPathfinding()
			}
		}
	}
	return g, nil
}

// index maps (x,y,z) to the flattened slot: z*(W*H) + y*W + x.
// Complexity: O(1).
func (g *Grid) index(x, y, z int) int {
	return z*(g.Width*g.Height) + y*g.Width + x
}

// Index returns the flattened identifier of c, suitable for labeling cells
// in auxiliary structures such as a disjoint-set union.
// Complexity: O(1).
func (g *Grid) Index(c *Cell) int {
	return g.index(c.X, c.Y, c.Z)
}

// InBounds reports whether (x,y,z) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < g.Depth
}

// At returns the cell at (x,y,z), or nil when the coordinate is out of
// range. Out-of-range lookups are an expected case, not an error.
// Complexity: O(1).
func (g *Grid) At(x, y, z int) *Cell {
	if !g.InBounds(x, y, z) {
		return nil
	}
	return &g.cells[g.index(x, y, z)]
}

// AtCoord is At for a Coord triple.
func (g *Grid) AtCoord(c Coord) *Cell {
	return g.At(c.X, c.Y, c.Z)
}

// RawNeighbors returns the up-to-six axis-aligned neighbors of c within
// bounds, regardless of walls, in the fixed Direction order. Used only
// during generation.
// Complexity: O(1).
func (g *Grid) RawNeighbors(c *Cell) []*Cell {
	neighbors := make([]*Cell, 0, NumDirections)
	for d := East; d < NumDirections; d++ {
		dx, dy, dz := d.Delta()
		if n := g.At(c.X+dx, c.Y+dy, c.Z+dz); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// PassableNeighbors returns the neighbors reachable from c: in bounds, no
// wall between the pair (checked from c's side; RemoveWallBetween keeps the
// two sides symmetric), and not Blocked. Emitted in the fixed Direction
// order, which callers must not reorder: it determines exploration order
// and cost-tie resolution.
// Complexity: O(1).
func (g *Grid) PassableNeighbors(c *Cell) []*Cell {
	neighbors := make([]*Cell, 0, NumDirections)
	for d := East; d < NumDirections; d++ {
		if c.Walls[d] {
			continue
		}
		dx, dy, dz := d.Delta()
		n := g.At(c.X+dx, c.Y+dy, c.Z+dz)
		if n == nil || n.Blocked {
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// RemoveWallBetween clears the wall on both sides of the a-b face as one
// logical operation, preserving the symmetry invariant. Panics with
// ErrNotAdjacent if a and b are not axis-aligned unit-distance neighbors;
// the generators enumerate neighbors themselves, so that panic indicates a
// defect, never a runtime condition to recover from.
// Complexity: O(1).
func (g *Grid) RemoveWallBetween(a, b *Cell) {
	d, ok := DirectionBetween(a.Coord(), b.Coord())
	if !ok {
		panic(fmt.Sprintf("%v: %v and %v", ErrNotAdjacent, a.Coord(), b.Coord()))
	}
	a.Walls[d] = false
	b.Walls[d.Opposite()] = false
}

// ResetGeneration returns every cell to the fully-walled, unvisited state.
// Complexity: O(W*H*D).
func (g *Grid) ResetGeneration() {
	for i := range g.cells {
		g.cells[i].resetGeneration()
	}
}

// ResetPathfinding clears every cell's cost/heuristic/distance/parent
// scratch fields. It must run before each independent search; stale scores
// from a previous run corrupt results otherwise. This is a caller contract,
// not enforced internally. Idempotent.
// Complexity: O(W*H*D).
func (g *Grid) ResetPathfinding() {
	for i := range g.cells {
		g.cells[i].resetPathfinding()
	}
}

// ClearBlocked removes the impassable marking from every cell. Generators
// call it when they finish: generated mazes are corridor networks whose
// only connectivity constraint is the wall flags.
// Complexity: O(W*H*D).
func (g *Grid) ClearBlocked() {
	for i := range g.cells {
		g.cells[i].Blocked = false
	}
}

// Cells returns the number of cells in the grid.
func (g *Grid) Cells() int {
	return len(g.cells)
}

// EachCell invokes fn for every cell in flattened index order.
// Complexity: O(W*H*D).
func (g *Grid) EachCell(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Stats scans all six flags of every cell and reports wall/opening counts.
// Each internal face is stored on both adjacent cells, so the raw counts
// are halved.
// Complexity: O(W*H*D).
func (g *Grid) Stats() Stats {
	var walls, openings int
	for i := range g.cells {
		for d := East; d < NumDirections; d++ {
			if g.cells[i].Walls[d] {
				walls++
			} else {
				openings++
			}
		}
	}
	return Stats{
		Cells:      len(g.cells),
		Walls:      walls / 2,
		Openings:   openings / 2,
		Dimensions: fmt.Sprintf("%dx%dx%d", g.Width, g.Height, g.Depth),
		Generator:  g.Generator,
	}
}
