package astar

import (
	"fmt"

	"github.com/katalvlaran/terrainroute/terrain"
)

// PathCost recomputes the traversal cost of path over g using costs: the sum
// of the costs of every cell after the first. An empty path costs 0.
//
// Errors:
//   - terrain.ErrOutOfBounds: a coordinate lies outside g.
//   - ErrBrokenPath:          consecutive cells are not orthogonal neighbors.
//   - ErrImpassable:          a cell after the first holds the impassable label.
func PathCost(g *terrain.Grid, costs terrain.CostTable, path []terrain.Coord) (int64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	var total int64
	for i, c := range path {
		label, err := g.TerrainAt(c)
		if err != nil {
			return 0, fmt.Errorf("astar: PathCost step %d: %w", i, err)
		}
		if i == 0 {
			continue
		}
		if terrain.Manhattan(path[i-1], c) != 1 {
			return 0, fmt.Errorf("%w: %v -> %v", ErrBrokenPath, path[i-1], c)
		}
		step, ok := costs.Cost(label)
		if !ok {
			return 0, fmt.Errorf("%w: %v is %v", ErrImpassable, c, label)
		}
		total = terrain.AddCost(total, step)
	}

	return total, nil
}
