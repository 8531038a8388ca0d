// SPDX-License-Identifier: MIT
// Package: terrainroute/terrain
//
// grid.go: fixed-size terrain store.

package terrain

import "fmt"

// neighborOffsets lists the orthogonal moves as (Δrow, Δcol): up, down, left, right.
// The order is part of the search's deterministic behavior.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rows×cols array of terrain labels stored row-major.
// It holds static terrain only and is not safe for concurrent mutation;
// keep it read-only while a search over it is running.
type Grid struct {
	rows, cols int
	cells      []Terrain
	costs      CostTable
}

// NewGrid builds a rows×cols grid whose labels are drawn independently from gen.
// A nil gen uses DefaultGenerator. Draws use the RNG from WithRand/WithSeed,
// or a fixed-seed RNG when neither is given.
//
// Returns ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0, and ErrInvalidTerrain
// if gen yields a label outside the enumeration.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int, gen Generator, opts ...GridOption) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if gen == nil {
		gen = DefaultGenerator()
	}
	cfg := newGridConfig(opts...)

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Terrain, rows*cols),
		costs: cfg.costs,
	}
	for i := range g.cells {
		t := gen(cfg.rng)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: generator produced %v", ErrInvalidTerrain, t)
		}
		g.cells[i] = t
	}

	return g, nil
}

// NewGridFromRows builds a grid from explicit labels, deep-copying the input.
// Returns ErrInvalidDimensions if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidTerrain on unknown labels.
func NewGridFromRows(values [][]Terrain, opts ...GridOption) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(values), len(values[0])
	cfg := newGridConfig(opts...)

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Terrain, 0, rows*cols),
		costs: cfg.costs,
	}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrInvalidTerrain, t, r, c)
			}
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Costs returns the grid's cost table.
func (g *Grid) Costs() CostTable { return g.costs }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index maps c to its row-major position: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Index returns the row-major index of c, or ErrOutOfBounds.
func (g *Grid) Index(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, g.outOfBounds("Index", c)
	}

	return g.index(c), nil
}

// TerrainAt returns the label at c.
func (g *Grid) TerrainAt(c Coord) (Terrain, error) {
	if !g.InBounds(c) {
		return Road, g.outOfBounds("TerrainAt", c)
	}

	return g.cells[g.index(c)], nil
}

// IsPassable reports whether c holds anything other than the impassable label.
func (g *Grid) IsPassable(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, g.outOfBounds("IsPassable", c)
	}

	return g.costs.IsPassable(g.cells[g.index(c)]), nil
}

// SetTerrain overwrites the label at c. Any label of the enumeration is
// accepted; restricting entry to obstacle labels is the caller's concern.
// On error no cell is modified.
func (g *Grid) SetTerrain(c Coord, t Terrain) error {
	if !g.InBounds(c) {
		return g.outOfBounds("SetTerrain", c)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: SetTerrain%v %v", ErrInvalidTerrain, c, t)
	}
	g.cells[g.index(c)] = t

	return nil
}

// ClearTerrain resets c to Road.
func (g *Grid) ClearTerrain(c Coord) error {
	if !g.InBounds(c) {
		return g.outOfBounds("ClearTerrain", c)
	}
	g.cells[g.index(c)] = Road

	return nil
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Terrain is not inspected.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Snapshot returns a deep copy of the labels as [row][col].
func (g *Grid) Snapshot() [][]Terrain {
	out := make([][]Terrain, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Terrain, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Terrain, len(g.cells))
	copy(cells, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cells, costs: g.costs}
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Terrain) int {
	n := 0
	for _, v := range g.cells {
		if v == t {
			n++
		}
	}

	return n
}
