// Package search finds paths through a carved maze with four
// interchangeable strategies behind a single Solve entry point.
//
// What:
//
//   - A* with a selectable heuristic (3D Manhattan or Euclidean), frontier
//     ordered by f = g + h, ties broken by insertion sequence.
//   - BFS: FIFO level-order, visited-at-enqueue, shortest path in edge
//     count by construction.
//   - Dijkstra: uniform-cost with lazy decrease-key; equivalent outcome to
//     BFS on the unit-cost grid, kept for its weighted-edge extensibility.
//   - Bidirectional BFS: two alternating frontiers meeting in the middle.
//
// Contract (shared by all four):
//
//   - Input is (grid, start, goal, algorithm); endpoints are validated
//     before any mutation.
//   - The first action is always grid.ResetPathfinding().
//   - Output is a Result: path (nil when unreachable), nodes-explored and
//     visited counts, and the exact pop/finalize order for visualization.
//   - start == goal returns the single-cell path immediately.
//   - An unreachable goal is a nil Path, never an error.
//
// Determinism:
//
//   - PassableNeighbors emits a fixed direction order and the frontier
//     tie-break is an insertion sequence number, so a fixed grid yields a
//     fixed VisitedOrder.
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfRange, ErrUnknownAlgorithm.
//
// Concurrency:
//
//   - Searches mutate per-cell scratch fields in place; never run two
//     searches over one Grid concurrently (see grid.Grid).
package search
