package search_test

import (
	"fmt"

	"github.com/katalvlaran/voxmaze/grid"
	"github.com/katalvlaran/voxmaze/mazegen"
	"github.com/katalvlaran/voxmaze/search"
)

// ExampleSolve carves a reproducible maze and races two algorithms from
// corner to corner.
func ExampleSolve() {
	g, _ := grid.New(5, 5, 5)
	_ = mazegen.Generate(g, mazegen.WithSeed(42))

	start := grid.Coord{}
	goal := grid.Coord{X: 4, Y: 4, Z: 4}

	bfs, _ := search.Solve(g, start, goal, search.BFS)
	astar, _ := search.Solve(g, start, goal, search.AStarManhattan)

	fmt.Println("same length:", bfs.PathLength() == astar.PathLength())
	fmt.Println("start:", bfs.Path[0])
	fmt.Println("goal:", bfs.Path[len(bfs.Path)-1])
	// Output:
	// same length: true
	// start: (0,0,0)
	// goal: (4,4,4)
}
