// Package search solves generated mazes with four interchangeable
// strategies dispatched through a single entry point.
package search

import (
	"fmt"

	"github.com/katalvlaran/voxmaze/grid"
)

// Solve runs the selected algorithm from start to goal over g.
//
// Validation happens before any mutation: ErrNilGrid for a nil grid,
// ErrOutOfRange when either endpoint lies outside the bounds,
// ErrUnknownAlgorithm for a selector outside the enumeration. An
// unreachable goal is NOT an error: the Result carries a nil Path plus the
// full exploration statistics.
//
// Every run begins with g.ResetPathfinding(), so stale scratch state from
// a previous run cannot leak in. Runs over one Grid must be serialized by
// the caller (see grid.Grid).
//
// When start equals goal every algorithm returns the single-cell path
// immediately, with no exploration beyond that cell.
func Solve(g *grid.Grid, start, goal grid.Coord, algo Algorithm) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	startCell := g.AtCoord(start)
	if startCell == nil {
		return nil, fmt.Errorf("%w: start %v in %dx%dx%d", ErrOutOfRange, start, g.Width, g.Height, g.Depth)
	}
	goalCell := g.AtCoord(goal)
	if goalCell == nil {
		return nil, fmt.Errorf("%w: goal %v in %dx%dx%d", ErrOutOfRange, goal, g.Width, g.Height, g.Depth)
	}

	g.ResetPathfinding()

	// Zero-length boundary: a single-cell path, one visited node, for
	// every algorithm.
	if start == goal {
		return &Result{
			Path:          []grid.Coord{start},
			NodesExplored: 1,
			VisitedCount:  1,
			VisitedOrder:  []grid.Coord{start},
		}, nil
	}

	switch algo {
	case AStarManhattan:
		return aStar(g, startCell, goalCell, manhattan3D), nil
	case AStarEuclidean:
		return aStar(g, startCell, goalCell, euclidean3D), nil
	case BFS:
		return breadthFirst(g, startCell, goalCell), nil
	case Dijkstra:
		return uniformCost(g, startCell, goalCell), nil
	case BidirectionalBFS:
		return bidirectional(g, startCell, goalCell), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// reconstructPath walks Parent links from goal back to start, collecting
// coordinate triples, then reverses into start-to-goal order.
// Complexity: O(path length).
func reconstructPath(goal *grid.Cell) []grid.Coord {
	path := make([]grid.Coord, 0, 16)
	for c := goal; c != nil; c = c.Parent {
		path = append(path, c.Coord())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
