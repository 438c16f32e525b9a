package search

import "github.com/katalvlaran/voxmaze/grid"

// bidiSide is one of the two frontiers of the bidirectional search. Each
// side owns its private visited-with-parent map instead of the shared
// Cell.Parent scratch field: the two waves would otherwise overwrite each
// other's parent chains.
type bidiSide struct {
	queue  []*grid.Cell
	parent map[grid.Coord]*grid.Cell // root maps to nil
}

// newBidiSide seeds a side with its root cell.
func newBidiSide(root *grid.Cell, capacity int) *bidiSide {
	s := &bidiSide{
		queue:  make([]*grid.Cell, 0, capacity),
		parent: make(map[grid.Coord]*grid.Cell, capacity),
	}
	s.queue = append(s.queue, root)
	s.parent[root.Coord()] = nil
	return s
}

// step pops one cell, expands it, and returns it so the caller can test
// for a meeting with the opposite side. Returns nil when the queue is
// empty. Visited-at-enqueue discipline, same as single-frontier BFS.
func (s *bidiSide) step(g *grid.Grid, visitedOrder *[]grid.Coord) *grid.Cell {
	if len(s.queue) == 0 {
		return nil
	}
	current := s.queue[0]
	s.queue = s.queue[1:]
	*visitedOrder = append(*visitedOrder, current.Coord())

	for _, neighbor := range g.PassableNeighbors(current) {
		if _, seen := s.parent[neighbor.Coord()]; seen {
			continue
		}
		s.parent[neighbor.Coord()] = current
		s.queue = append(s.queue, neighbor)
	}
	return current
}

// bidirectional runs two simultaneous FIFO frontiers, one rooted at start
// and one at goal, alternating one expansion step each. The search stops
// the instant a cell popped from one frontier is already present in the
// other frontier's visited set; the path is stitched from the two parent
// chains at that meeting cell.
//
// Complexity: O(C) time and memory, typically touching far fewer cells
// than one-sided BFS since each wave only grows to half the path depth.
func bidirectional(g *grid.Grid, start, goal *grid.Cell) *Result {
	forward := newBidiSide(start, g.Cells()/8)
	backward := newBidiSide(goal, g.Cells()/8)

	visitedOrder := make([]grid.Coord, 0, g.Cells()/4)

	for len(forward.queue) > 0 && len(backward.queue) > 0 {
		if met := forward.step(g, &visitedOrder); met != nil {
			if _, seen := backward.parent[met.Coord()]; seen {
				return stitch(met, forward, backward, visitedOrder)
			}
		}
		if met := backward.step(g, &visitedOrder); met != nil {
			if _, seen := forward.parent[met.Coord()]; seen {
				return stitch(met, forward, backward, visitedOrder)
			}
		}
	}

	return &Result{
		Path:          nil,
		NodesExplored: len(visitedOrder),
		VisitedCount:  len(visitedOrder),
		VisitedOrder:  visitedOrder,
	}
}

// stitch joins the two half-paths at the meeting cell: forward parents
// walked back to start and reversed, then the backward chain followed from
// the meeting cell's backward-parent onward to goal.
// Complexity: O(path length).
func stitch(meeting *grid.Cell, forward, backward *bidiSide, visitedOrder []grid.Coord) *Result {
	path := make([]grid.Coord, 0, 16)
	for c := meeting; c != nil; c = forward.parent[c.Coord()] {
		path = append(path, c.Coord())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for c := backward.parent[meeting.Coord()]; c != nil; c = backward.parent[c.Coord()] {
		path = append(path, c.Coord())
	}
	return &Result{
		Path:          path,
		NodesExplored: len(visitedOrder),
		VisitedCount:  len(visitedOrder),
		VisitedOrder:  visitedOrder,
	}
}
