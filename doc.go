// Package voxmaze is an in-memory toolkit for carving perfect 3D mazes
// and racing graph-search algorithms through them.
//
// What's inside:
//
//	grid/       the cubic lattice: cells, six-directional walls, neighbor
//	            queries, bulk resets, wall statistics
//	mazegen/    two interchangeable carvers: recursive backtracking (explicit
//	            work stack) and randomized Kruskal (disjoint-set union)
//	search/     A* (Manhattan/Euclidean), BFS, Dijkstra, and bidirectional
//	            BFS behind one Solve entry point
//	runstats/   duration-keyed binary search tree plus per-algorithm and
//	            overall aggregates: leaderboards, summaries, statistics
//	cmd/voxmaze CLI that generates, solves, and prints the comparison
//
// Typical flow: build a grid, carve it, solve it repeatedly (one search at
// a time per grid), record each run in a runstats.Tracker, then query the
// tracker for reporting.
//
//	g, _ := grid.New(10, 10, 10)
//	_ = mazegen.Generate(g, mazegen.WithSeed(42))
//	res, _ := search.Solve(g, grid.Coord{}, grid.Coord{X: 9, Y: 9, Z: 9}, search.BFS)
//	fmt.Println(len(res.Path), res.NodesExplored)
//
// Everything is deterministic under a fixed seed: same seed, same maze,
// same exploration order.
package voxmaze
