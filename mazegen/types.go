// Package mazegen defines the algorithm selector, tunable options, and
// sentinel errors for maze generation over a grid.Grid.
package mazegen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxmaze/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Generate.
	ErrNilGrid = errors.New("mazegen: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// declared enumeration, and by ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("mazegen: unknown generation algorithm")

	// ErrOriginOutOfRange is returned when the backtracking origin lies
	// outside the grid bounds.
	ErrOriginOutOfRange = errors.New("mazegen: origin outside grid bounds")
)

// Algorithm selects the maze-generation strategy. Both strategies carve a
// fully connected spanning tree out of an all-walled grid, so exactly one
// simple path exists between any two cells (a perfect maze).
type Algorithm int

const (
	// Backtracking is depth-first carving with an explicit work stack.
	Backtracking Algorithm = iota
	// Kruskal is randomized minimum-spanning-tree carving over a
	// disjoint-set union.
	Kruskal
)

// String returns the human-readable label recorded on the generated grid.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "Recursive Backtracking (DFS)"
	case Kruskal:
		return "Kruskal's Algorithm (MST)"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a boundary-supplied selector name to an Algorithm.
// Accepted names: "recursive_backtracking", "backtracking", "kruskal".
// Returns ErrUnknownAlgorithm for anything else. Intended for collaborator
// boundaries (CLI flags); library code dispatches on the enum directly.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "recursive_backtracking", "backtracking":
		return Backtracking, nil
	case "kruskal":
		return Kruskal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Options holds the parameters of one Generate invocation.
//
// Algorithm – which strategy carves the maze.
// Seed      – RNG seed; 0 selects the fixed default seed (reproducible).
// Origin    – starting cell for Backtracking; ignored by Kruskal.
type Options struct {
	Algorithm Algorithm
	Seed      int64
	Origin    grid.Coord
}

// Option configures maze generation via functional arguments.
type Option func(*Options)

// DefaultOptions returns the defaults: Backtracking from (0,0,0) with the
// deterministic default seed.
func DefaultOptions() Options {
	return Options{
		Algorithm: Backtracking,
		Seed:      0,
		Origin:    grid.Coord{},
	}
}

// WithAlgorithm selects the generation strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithSeed fixes the RNG seed. Same seed, same maze. A seed of 0 selects
// the stable default seed rather than a time-based source; no hidden
// nondeterminism.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOrigin sets the starting cell for Backtracking. Ignored by Kruskal.
// Validated against the grid bounds inside Generate.
func WithOrigin(c grid.Coord) Option {
	return func(o *Options) {
		o.Origin = c
	}
}
