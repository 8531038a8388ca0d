// Package astar computes least-cost routes between two cells of a
// terrain.Grid with the A* algorithm.
//
// Overview:
//
//   - Moves are the four orthogonal steps (up, down, left, right); no diagonals.
//   - Entering a cell costs CostTable.Cost(label); the impassable label is
//     never entered. The start cell itself is free and is not terrain-checked.
//   - The frontier is a min-heap ordered by f = g + h; equal f-scores are
//     broken by row, then column, so searches are reproducible.
//   - Stale frontier entries are tolerated and skipped once their node is closed.
//
// Heuristics:
//
//   - Manhattan (default): counts remaining steps. Admissible whenever every
//     passable label costs at least 1, as in the default table.
//   - ScaledManhattan / WithScaledHeuristic: Manhattan × cheapest passable cost.
//     Tighter when the cheapest cost exceeds 1, and still admissible when it
//     is below 1 (zero-cost labels).
//
// Results:
//
//   - Result.Path runs from start to end inclusive; empty (not an error) when
//     end is unreachable.
//   - Result.Cost is the sum of entered-cell costs.
//
// Errors:
//
//   - ErrNilGrid:             NewPathFinder(nil).
//   - terrain.ErrOutOfBounds: start or end outside the grid.
//   - ErrImpassable, ErrBrokenPath: PathCost validation.
//
// Thread safety:
//
//   - Each FindPath owns its frontier and score tables. Concurrent FindPath
//     calls are safe only while nobody mutates the grid.
//
// Example:
//
//	pf, _ := astar.NewPathFinder(grid)
//	res, err := pf.FindPath(terrain.Coord{Row: 0, Col: 0}, terrain.Coord{Row: 2, Col: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found() {
//	    fmt.Println("no route")
//	}
package astar
