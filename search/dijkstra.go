package search

import "github.com/katalvlaran/voxmaze/grid"

// uniformCost runs Dijkstra's algorithm from start to goal.
//
// The frontier is ordered by accumulated distance under the
// lazy-decrease-key pattern: an improved cell is pushed again and the
// stale entry is skipped at pop time via the finalized set, never by
// decreasing keys in place. On this unit-cost grid the outcome matches
// BFS; the relaxation discipline is kept distinct for its extensibility
// to weighted edges.
//
// Complexity: O(C log C) time over C reachable cells, O(C) memory.
func uniformCost(g *grid.Grid, start, goal *grid.Cell) *Result {
	start.Dist = 0

	pq := newFrontier(g.Cells() / 4)
	pq.push(start, 0)
	finalized := make(map[grid.Coord]bool, g.Cells()/4)

	visitedOrder := make([]grid.Coord, 0, g.Cells()/4)

	for pq.len() > 0 {
		current := pq.pop().cell
		if finalized[current.Coord()] {
			continue
		}
		finalized[current.Coord()] = true
		visitedOrder = append(visitedOrder, current.Coord())

		if current == goal {
			return &Result{
				Path:          reconstructPath(current),
				NodesExplored: len(visitedOrder),
				VisitedCount:  len(visitedOrder),
				VisitedOrder:  visitedOrder,
			}
		}

		for _, neighbor := range g.PassableNeighbors(current) {
			if finalized[neighbor.Coord()] {
				continue
			}
			next := current.Dist + 1
			if next < neighbor.Dist {
				neighbor.Dist = next
				neighbor.Parent = current
				pq.push(neighbor, next)
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
