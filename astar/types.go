// Package astar defines options, heuristics, results and sentinel errors
// for the terrain-aware A* search.
package astar

import (
	"errors"

	"github.com/katalvlaran/terrainroute/terrain"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to NewPathFinder.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrImpassable indicates that a path steps onto the impassable label.
	ErrImpassable = errors.New("astar: path enters impassable terrain")

	// ErrBrokenPath indicates two consecutive path cells that are not orthogonal neighbors.
	ErrBrokenPath = errors.New("astar: path steps are not orthogonally adjacent")
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must be non-negative and deterministic.
type Heuristic func(from, goal terrain.Coord) int64

// Manhattan is the default heuristic: |Δrow| + |Δcol|. It counts steps, so it
// never overestimates as long as every passable label costs at least 1.
func Manhattan(from, goal terrain.Coord) int64 {
	return terrain.Manhattan(from, goal)
}

// ScaledManhattan multiplies the Manhattan distance by minStep, the cheapest
// passable cost of a table. The result never overestimates the true cost.
func ScaledManhattan(minStep int64) Heuristic {
	return func(from, goal terrain.Coord) int64 {
		return terrain.MulCost(terrain.Manhattan(from, goal), minStep)
	}
}

// Options configures a PathFinder.
//
// Costs      – cost table used for relaxation; zero value means "use the grid's".
// Heuristic  – remaining-cost estimate; nil means Manhattan.
// Scaled     – if true and Heuristic is nil, use ScaledManhattan(Costs.MinStepCost()).
type Options struct {
	Costs     terrain.CostTable
	Heuristic Heuristic
	Scaled    bool
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithCostTable overrides the grid's cost table for this finder.
// Panics if ct is the zero value.
func WithCostTable(ct terrain.CostTable) Option {
	if !ct.Valid() {
		panic("astar: WithCostTable requires a table from terrain.DefaultCostTable or terrain.NewCostTable")
	}
	return func(o *Options) {
		o.Costs = ct
	}
}

// WithHeuristic replaces the heuristic. Panics if h is nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithScaledHeuristic selects Manhattan scaled by the cost table's cheapest
// passable label instead of plain Manhattan.
func WithScaledHeuristic() Option {
	return func(o *Options) {
		o.Scaled = true
	}
}

// DefaultOptions returns the zero configuration: grid costs, plain Manhattan.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of a single FindPath call.
//
// Path     – coordinates from start to end inclusive; empty when unreachable.
// Cost     – sum of the costs of every entered cell (the start cell is free).
// Expanded – number of nodes closed during the search.
type Result struct {
	Path     []terrain.Coord
	Cost     int64
	Expanded int
}

// Found reports whether a path was produced.
func (r Result) Found() bool {
	return len(r.Path) > 0
}
