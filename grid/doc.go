// Package grid models a cubic lattice of cells with six-directional wall
// connectivity, the substrate shared by the mazegen and search packages.
//
// What:
//
//   - Grid owns a dense W×H×D array of Cells; one cell per coordinate
//     triple, adjacency computed from coordinates rather than stored.
//   - Cells carry six wall flags (all closed until a generator opens them),
//     a generation Visited flag, and per-search scratch fields.
//   - Neighbor queries come in two flavors: RawNeighbors (pure adjacency,
//     generation only) and PassableNeighbors (wall-respecting, used by all
//     search algorithms).
//
// Why:
//
//   - 3D maze generation: generators carve corridors by removing walls.
//   - Pathfinding: searches traverse the carved corridor network.
//   - Reporting: Stats summarizes the wall structure for callers.
//
// Invariants:
//
//   - Wall symmetry: the flag on one cell facing a neighbor always equals
//     the neighbor's flag facing back. RemoveWallBetween updates both sides
//     as one logical operation; nothing else mutates wall flags.
//   - Neighbor order: both neighbor queries emit cells in the fixed
//     Direction order East, West, Up, Down, North, South. Exploration
//     order and equal-cost tie-breaking depend on it.
//
// Complexity:
//
//   - At / RawNeighbors / PassableNeighbors / RemoveWallBetween: O(1).
//   - ResetGeneration / ResetPathfinding / ClearBlocked / Stats: O(W×H×D).
//
// Errors:
//
//   - ErrDimension: a requested dimension is smaller than one.
//   - ErrNotAdjacent: wall operation on non-neighbors; used as a panic
//     value because it signals an implementation bug.
//
// Concurrency:
//
//   - A Grid is single-owner. Searches mutate shared per-cell scratch
//     state in place; serialize searches over one Grid externally.
package grid
