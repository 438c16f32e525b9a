// Package mazegen - RNG utilities shared by both generators.
//
// Goals:
//   - Determinism: same seed, identical maze, across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Generate call owns its
//     own *rand.Rand and never shares it.
package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/voxmaze/grid"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 uses defaultRNGSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleCellsInPlace performs an in-place Fisher-Yates shuffle of cells.
// Complexity: O(n) time, O(1) extra space.
func shuffleCellsInPlace(cells []*grid.Cell, rng *rand.Rand) {
	for i := len(cells) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// shuffleEdgesInPlace performs an in-place Fisher-Yates shuffle of edges.
// Complexity: O(n) time, O(1) extra space.
func shuffleEdgesInPlace(edges []gridEdge, rng *rand.Rand) {
	for i := len(edges) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}
