package search

import "github.com/katalvlaran/voxmaze/grid"

// breadthFirst runs unweighted level-order search from start to goal.
//
// Cells are marked visited at enqueue time, not at dequeue, so no cell is
// ever enqueued twice. All edges cost 1, so the first time the goal is
// popped its level is the true shortest edge-count distance.
//
// Complexity: O(C) time and memory over C reachable cells.
func breadthFirst(g *grid.Grid, start, goal *grid.Cell) *Result {
	queue := make([]*grid.Cell, 0, g.Cells()/4)
	queue = append(queue, start)
	visited := make(map[grid.Coord]bool, g.Cells()/4)
	visited[start.Coord()] = true

	visitedOrder := make([]grid.Coord, 0, g.Cells()/4)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
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
			if visited[neighbor.Coord()] {
				continue
			}
			visited[neighbor.Coord()] = true
			neighbor.Parent = current
			queue = append(queue, neighbor)
		}
	}

	return &Result{
		Path:          nil,
		NodesExplored: len(visitedOrder),
		VisitedCount:  len(visitedOrder),
		VisitedOrder:  visitedOrder,
	}
}
