package search

import (
	"math"

	"github.com/katalvlaran/voxmaze/grid"
)

// heuristicFunc estimates the remaining cost from a to b. Both supplied
// heuristics are admissible on the unit-cost grid: they never overestimate
// the true corridor distance, so A* stays optimal.
type heuristicFunc func(a, b *grid.Cell) float64

// manhattan3D is the sum of absolute coordinate differences.
// Complexity: O(1).
func manhattan3D(a, b *grid.Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y)) + math.Abs(float64(a.Z-b.Z))
}

// euclidean3D is the straight-line distance.
// Complexity: O(1).
func euclidean3D(a, b *grid.Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
