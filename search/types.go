// Package search defines the algorithm enumeration, result type, and
// sentinel errors for pathfinding over a generated grid.Grid.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxmaze/grid"
)

// Sentinel errors for search invocation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Solve.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfRange is returned when the start or goal coordinate lies
	// outside the grid bounds. Reported before any search begins; no
	// partial mutation occurs.
	ErrOutOfRange = errors.New("search: coordinate outside grid bounds")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// declared enumeration, and by ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("search: unknown search algorithm")
)

// Algorithm is the tagged selector dispatched by Solve. An explicit
// enumeration replaces any name-to-function registry: library callers
// never go through strings, only the CLI boundary does (ParseAlgorithm).
type Algorithm int

const (
	// AStarManhattan is A* with the 3D Manhattan-distance heuristic.
	AStarManhattan Algorithm = iota
	// AStarEuclidean is A* with the 3D straight-line heuristic.
	AStarEuclidean
	// BFS is unweighted level-order search over a FIFO queue.
	BFS
	// Dijkstra is uniform-cost search with lazy finalized-skip.
	Dijkstra
	// BidirectionalBFS runs two alternating FIFO frontiers rooted at
	// start and goal, stitching the path at the first meeting cell.
	BidirectionalBFS
)

// Algorithms enumerates all selectable values in declaration order.
var Algorithms = []Algorithm{AStarManhattan, AStarEuclidean, BFS, Dijkstra, BidirectionalBFS}

// String returns the human-readable label used in run statistics.
func (a Algorithm) String() string {
	switch a {
	case AStarManhattan:
		return "A* (Manhattan)"
	case AStarEuclidean:
		return "A* (Euclidean)"
	case BFS:
		return "BFS"
	case Dijkstra:
		return "Dijkstra"
	case BidirectionalBFS:
		return "Bidirectional BFS"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a boundary-supplied selector name to an Algorithm.
// Accepted names: "astar", "astar_manhattan", "astar_euclidean", "bfs",
// "dijkstra", "bidirectional". Returns ErrUnknownAlgorithm otherwise.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "astar", "astar_manhattan":
		return AStarManhattan, nil
	case "astar_euclidean":
		return AStarEuclidean, nil
	case "bfs":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bidirectional":
		return BidirectionalBFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Result holds the outcome of one search run.
//
//   - Path: coordinate triples from start to goal inclusive, or nil when
//     the goal is unreachable (not an error; exploration statistics are
//     still populated).
//   - NodesExplored: cells popped/finalized during the search.
//   - VisitedCount: length of VisitedOrder. Kept alongside NodesExplored
//     because reporting consumers treat them as distinct columns.
//   - VisitedOrder: coordinates in the exact pop/finalize order. Consumed
//     by visualization only; deterministic for a fixed grid.
type Result struct {
	Path          []grid.Coord
	NodesExplored int
	VisitedCount  int
	VisitedOrder  []grid.Coord
}

// Found reports whether a path was discovered.
func (r *Result) Found() bool {
	return r.Path != nil
}

// PathLength returns the number of cells on the path, 0 if unreachable.
func (r *Result) PathLength() int {
	return len(r.Path)
}
