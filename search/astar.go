package search

import "github.com/katalvlaran/voxmaze/grid"

// aStar runs A* from start to goal with the given heuristic.
//
// The frontier is ordered by f = g + h with unit edge cost; ties in f are
// broken by insertion sequence (stable). A neighbor is relaxed only when
// the tentative g strictly improves on its current best, so a cell already
// finalized with a better g is never requeued and stale frontier entries
// fall through harmlessly. Terminates on popping the goal, or with a nil
// Path when the frontier empties.
//
// Complexity: O(C log C) time over C reachable cells, O(C) memory.
func aStar(g *grid.Grid, start, goal *grid.Cell, h heuristicFunc) *Result {
	start.G = 0
	start.H = h(start, goal)
	start.F = start.H

	open := newFrontier(g.Cells() / 4)
	open.push(start, start.F)
	inOpen := make(map[grid.Coord]bool, g.Cells()/4)
	inOpen[start.Coord()] = true

	visitedOrder := make([]grid.Coord, 0, g.Cells()/4)

	for open.len() > 0 {
		current := open.pop().cell
		delete(inOpen, current.Coord())
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
			tentative := current.G + 1
			if tentative >= neighbor.G {
				continue
			}
			neighbor.Parent = current
			neighbor.G = tentative
			neighbor.H = h(neighbor, goal)
			neighbor.F = neighbor.G + neighbor.H
			if !inOpen[neighbor.Coord()] {
				open.push(neighbor, neighbor.F)
				inOpen[neighbor.Coord()] = true
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
