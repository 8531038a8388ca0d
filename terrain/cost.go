// SPDX-License-Identifier: MIT
// Package: terrainroute/terrain
//
// cost.go: immutable terrain → traversal cost mapping.

package terrain

import (
	"fmt"
	"math"
)

// Infinite is the cost reported for the impassable label.
const Infinite = int64(math.MaxInt64)

// MaxCost is the largest cost NewCostTable accepts for a passable label.
// Sums of up to 2^31 such steps stay below Infinite.
const MaxCost = int64(math.MaxInt32)

// Default traversal costs.
const (
	DefaultRoadCost    = int64(1)
	DefaultWaterCost   = int64(5)
	DefaultBlockedCost = int64(7)
)

// CostTable maps every label to a non-negative traversal cost and designates
// exactly one label as impassable. The zero value is not usable; build one with
// DefaultCostTable or NewCostTable. Values are copied, never shared.
type CostTable struct {
	costs      [numTerrains]int64
	impassable Terrain
	ok         bool
}

// DefaultCostTable returns Road=1, Building=impassable, Water=5, Blocked=7.
func DefaultCostTable() CostTable {
	var ct CostTable
	ct.costs[Road] = DefaultRoadCost
	ct.costs[Building] = Infinite
	ct.costs[Water] = DefaultWaterCost
	ct.costs[Blocked] = DefaultBlockedCost
	ct.impassable = Building
	ct.ok = true

	return ct
}

// NewCostTable builds a table from costs for every passable label.
// The entry for impassable, if present, is ignored.
//
// Errors:
//   - ErrInvalidTerrain: impassable or a key of costs is outside the enumeration.
//   - ErrInvalidCost:    a passable label is missing, negative, or above MaxCost.
func NewCostTable(costs map[Terrain]int64, impassable Terrain) (CostTable, error) {
	if !impassable.Valid() {
		return CostTable{}, fmt.Errorf("%w: impassable label %v", ErrInvalidTerrain, impassable)
	}
	for t := range costs {
		if !t.Valid() {
			return CostTable{}, fmt.Errorf("%w: cost key %v", ErrInvalidTerrain, t)
		}
	}

	var ct CostTable
	for _, t := range All() {
		if t == impassable {
			ct.costs[t] = Infinite
			continue
		}
		c, found := costs[t]
		if !found {
			return CostTable{}, fmt.Errorf("%w: no cost for %v", ErrInvalidCost, t)
		}
		if c < 0 || c > MaxCost {
			return CostTable{}, fmt.Errorf("%w: %v cost %d", ErrInvalidCost, t, c)
		}
		ct.costs[t] = c
	}
	ct.impassable = impassable
	ct.ok = true

	return ct, nil
}

// Cost returns the cost of entering a cell labelled t and whether it may be
// entered at all. Unknown labels are reported as impassable.
func (ct CostTable) Cost(t Terrain) (int64, bool) {
	if !t.Valid() || t == ct.impassable {
		return Infinite, false
	}

	return ct.costs[t], true
}

// Impassable returns the label that is never entered.
func (ct CostTable) Impassable() Terrain {
	return ct.impassable
}

// IsPassable reports whether t may be entered.
func (ct CostTable) IsPassable(t Terrain) bool {
	_, ok := ct.Cost(t)
	return ok
}

// MinStepCost returns the smallest cost among passable labels.
func (ct CostTable) MinStepCost() int64 {
	lowest := Infinite
	for _, t := range All() {
		if c, ok := ct.Cost(t); ok && c < lowest {
			lowest = c
		}
	}

	return lowest
}

// Valid reports whether ct was produced by DefaultCostTable or NewCostTable.
func (ct CostTable) Valid() bool {
	return ct.ok
}

// AddCost returns a+b for non-negative operands, saturating at Infinite.
func AddCost(a, b int64) int64 {
	if a > Infinite-b {
		return Infinite
	}

	return a + b
}

// MulCost returns a×b for non-negative operands, saturating at Infinite.
func MulCost(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > Infinite/b {
		return Infinite
	}

	return a * b
}
