// Package mazegen carves perfect 3D mazes into a grid.Grid.
//
// What:
//
//   - Generate resets the grid to all-walled and runs one of two
//     interchangeable carving strategies.
//   - Backtracking: depth-first carving driven by an explicit work stack
//     of (cell, shuffled-neighbor-list) frames, so large grids never
//     exhaust the call stack.
//   - Kruskal: randomized minimum spanning tree; shuffled edge list plus
//     a disjoint-set union with path compression and union by rank.
//
// Why:
//
//   - Both strategies produce a spanning tree of the grid graph: fully
//     connected, cycle-free, exactly one simple path between any two
//     cells. For a W×H×D grid that means openings == cells - 1.
//   - Backtracking yields long winding corridors; Kruskal yields shorter,
//     more uniformly branching ones. Interchangeable behind one entry
//     point.
//
// Determinism:
//
//   - WithSeed pins the RNG; seed 0 selects a fixed default seed. Same
//     seed, same maze. No time-based randomness anywhere.
//
// Errors:
//
//   - ErrNilGrid:           nil grid passed to Generate.
//   - ErrUnknownAlgorithm:  selector outside the enumeration, or an
//     unknown name passed to ParseAlgorithm.
//   - ErrOriginOutOfRange:  backtracking origin outside grid bounds.
//
// Complexity: O(W×H×D) time for either strategy.
package mazegen
