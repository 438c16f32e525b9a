// Package mazegen carves connected, wall-consistent mazes into a
// grid.Grid from an all-walled initial state.
package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/voxmaze/grid"
)

// Generate resets g to the all-walled state and carves a maze with the
// selected strategy, applying any number of functional Options.
//
// Both strategies produce a spanning tree of the grid graph, so the carved
// maze is perfect: fully connected with exactly one simple path between any
// two cells. Generation concludes by clearing every Blocked marking; after
// Generate, the wall flags are the sole connectivity constraint seen by the
// search package. The grid's Generator label records which strategy ran.
//
// Returns ErrNilGrid, ErrUnknownAlgorithm, or ErrOriginOutOfRange for
// invalid input; the grid is not mutated on error.
// Complexity: O(W*H*D) for either strategy.
func Generate(g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate before any mutation.
	var origin *grid.Cell
	switch o.Algorithm {
	case Backtracking:
		origin = g.AtCoord(o.Origin)
		if origin == nil {
			return ErrOriginOutOfRange
		}
	case Kruskal:
		// Kruskal ignores Origin.
	default:
		return ErrUnknownAlgorithm
	}

	g.ResetGeneration()
	rng := rngFromSeed(o.Seed)

	switch o.Algorithm {
	case Backtracking:
		carveBacktracking(g, origin, rng)
	case Kruskal:
		carveKruskal(g, rng)
	}

	// Mazes are corridor networks, not obstacle courses.
	g.ClearBlocked()
	g.Generator = o.Algorithm.String()

	return nil
}

// frame is one explicit work-stack entry of the backtracking carve:
// a cell plus its shuffled unvisited-at-entry neighbor list and a cursor.
type frame struct {
	cell      *grid.Cell
	neighbors []*grid.Cell
	next      int
}

// carveBacktracking is depth-first carving with an explicit stack instead
// of host recursion, so grid size is bounded by memory rather than by call
// stack depth. Each step either descends into a still-unvisited neighbor
// (removing the wall on the way) or pops back.
// Complexity: O(W*H*D) time, O(W*H*D) worst-case stack.
func carveBacktracking(g *grid.Grid, origin *grid.Cell, rng *rand.Rand) {
	stack := make([]frame, 0, g.Cells())
	origin.Visited = true
	stack = append(stack, frame{cell: origin, neighbors: shuffledUnvisited(g, origin, rng)})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		descended := false
		for top.next < len(top.neighbors) {
			n := top.neighbors[top.next]
			top.next++
			// Neighbors captured on entry may have been reached from a
			// deeper branch since; re-check before carving.
			if n.Visited {
				continue
			}
			g.RemoveWallBetween(top.cell, n)
			n.Visited = true
			stack = append(stack, frame{cell: n, neighbors: shuffledUnvisited(g, n, rng)})
			descended = true
			break
		}
		if !descended {
			stack = stack[:len(stack)-1]
		}
	}
}

// shuffledUnvisited returns c's unvisited raw neighbors in random order.
func shuffledUnvisited(g *grid.Grid, c *grid.Cell, rng *rand.Rand) []*grid.Cell {
	raw := g.RawNeighbors(c)
	unvisited := raw[:0]
	for _, n := range raw {
		if !n.Visited {
			unvisited = append(unvisited, n)
		}
	}
	shuffleCellsInPlace(unvisited, rng)
	return unvisited
}

// gridEdge is one candidate face between two adjacent cells.
type gridEdge struct {
	a, b *grid.Cell
}

// carveKruskal builds the full edge list in the east, up, and north
// directions only (each internal face once), shuffles it, and unions edge
// endpoints through a disjoint-set: a successful union removes the wall,
// a failed one is skipped to reject cycles. Processing every edge spans
// the whole grid by the standard MST argument.
// Complexity: O(E α(V)) after the O(E) shuffle, E ≈ 3*W*H*D.
func carveKruskal(g *grid.Grid, rng *rand.Rand) {
	edges := make([]gridEdge, 0, 3*g.Cells())
	g.EachCell(func(c *grid.Cell) {
		if n := g.At(c.X+1, c.Y, c.Z); n != nil {
			edges = append(edges, gridEdge{a: c, b: n})
		}
		if n := g.At(c.X, c.Y+1, c.Z); n != nil {
			edges = append(edges, gridEdge{a: c, b: n})
		}
		if n := g.At(c.X, c.Y, c.Z+1); n != nil {
			edges = append(edges, gridEdge{a: c, b: n})
		}
	})
	shuffleEdgesInPlace(edges, rng)

	uf := newDSU(g.Cells())
	for _, e := range edges {
		if uf.union(g.Index(e.a), g.Index(e.b)) {
			g.RemoveWallBetween(e.a, e.b)
			e.a.Visited = true
			e.b.Visited = true
		}
	}
}
