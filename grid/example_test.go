package grid_test

import (
	"fmt"

	"github.com/katalvlaran/voxmaze/grid"
)

// ExampleGrid_RemoveWallBetween carves a single corridor and inspects the
// resulting wall statistics.
func ExampleGrid_RemoveWallBetween() {
	g, _ := grid.New(2, 1, 1)
	a, b := g.At(0, 0, 0), g.At(1, 0, 0)

	g.RemoveWallBetween(a, b)

	s := g.Stats()
	fmt.Println("openings:", s.Openings)
	fmt.Println("a->b open:", !a.WallTo(b))
	fmt.Println("b->a open:", !b.WallTo(a))
	// Output:
	// openings: 1
	// a->b open: true
	// b->a open: true
}
