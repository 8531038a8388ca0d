// SPDX-License-Identifier: MIT
// Package: terrainroute/terrain
//
// errors.go: sentinel errors for the terrain package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a grid with rows ≤ 0 or cols ≤ 0.
	ErrInvalidDimensions = errors.New("terrain: grid must have at least one row and one column")

	// ErrNonRectangular indicates fixture rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")

	// ErrInvalidTerrain indicates a label outside the fixed enumeration.
	ErrInvalidTerrain = errors.New("terrain: invalid terrain label")

	// ErrInvalidCost indicates a negative or missing traversal cost.
	ErrInvalidCost = errors.New("terrain: invalid traversal cost")

	// ErrInvalidWeights indicates negative generator weights or a zero total.
	ErrInvalidWeights = errors.New("terrain: invalid generator weights")
)

// outOfBounds wraps ErrOutOfBounds with the failing method and coordinate.
func (g *Grid) outOfBounds(method string, c Coord) error {
	return fmt.Errorf("%w: %s%v outside %dx%d grid", ErrOutOfBounds, method, c, g.rows, g.cols)
}
