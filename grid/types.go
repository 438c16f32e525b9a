// Package grid defines core types and sentinel errors for the voxmaze
// grid subpackage of github.com/katalvlaran/voxmaze.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrDimension indicates a grid dimension smaller than one.
	ErrDimension = errors.New("grid: dimensions must be at least 1x1x1")
	// ErrNotAdjacent indicates a wall operation between cells that are not
	// axis-aligned unit-distance neighbors. It is used as a panic value:
	// the generators enumerate neighbors themselves, so hitting it signals
	// an implementation bug, not a recoverable runtime condition.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)

// Direction identifies one of the six axis-aligned neighbor directions.
// The enumeration order (East, West, Up, Down, North, South) is the fixed
// order in which RawNeighbors and PassableNeighbors emit cells; search
// algorithms rely on it only for deterministic exploration order.
type Direction int

const (
	// East is +X.
	East Direction = iota
	// West is -X.
	West
	// Up is +Y.
	Up
	// Down is -Y.
	Down
	// North is +Z.
	North
	// South is -Z.
	South

	// NumDirections is the number of axis-aligned directions.
	NumDirections
)

// directionDeltas maps each Direction to its unit coordinate offset.
var directionDeltas = [NumDirections][3]int{
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
	North: {0, 0, 1},
	South: {0, 0, -1},
}

// directionNames maps each Direction to its lowercase label.
var directionNames = [NumDirections]string{
	East:  "east",
	West:  "west",
	Up:    "up",
	Down:  "down",
	North: "north",
	South: "south",
}

// Delta returns the unit coordinate offset (dx, dy, dz) for d.
// Complexity: O(1).
func (d Direction) Delta() (dx, dy, dz int) {
	return directionDeltas[d][0], directionDeltas[d][1], directionDeltas[d][2]
}

// Opposite returns the direction facing back at d (East<->West, Up<->Down,
// North<->South). The pairing relies on the enumeration order: paired
// directions occupy adjacent even/odd slots.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// String returns the lowercase direction name, or "direction(n)" for an
// out-of-range value.
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Coord is an integer coordinate triple inside a Grid. Coord is comparable
// and is the container identity for cells: two cells are the same cell iff
// their Coords are equal.
type Coord struct {
	X, Y, Z int
}

// String formats the coordinate as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// DirectionBetween returns the Direction leading from a to b, and whether
// a and b are axis-aligned unit-distance neighbors at all.
// Complexity: O(1).
func DirectionBetween(a, b Coord) (Direction, bool) {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	for d := East; d < NumDirections; d++ {
		off := directionDeltas[d]
		if dx == off[0] && dy == off[1] && dz == off[2] {
			return d, true
		}
	}
	return 0, false
}

// Stats summarizes the wall structure of a generated Grid.
// Walls and Openings count internal faces once: every internal face is
// stored on both adjacent cells, so the per-cell scan is halved.
type Stats struct {
	Cells      int    // total number of cells (w*h*d)
	Walls      int    // closed faces, double-count halved
	Openings   int    // open faces, double-count halved
	Dimensions string // "WxHxD" label
	Generator  string // label of the generation algorithm that last ran
}
