// Package astar implements A* over a terrain.Grid.
//
// Notes on implementation choices:
//
//   - Frontier is a container/heap min-heap keyed by (f, row, col).
//   - "Lazy" decrease-key: improved nodes are pushed again and stale entries
//     are skipped when popped after the node is closed.
//   - Cells holding the impassable label are never entered; the start cell is
//     never terrain-checked.
//   - Score tables are dense slices indexed row-major and live for one call.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/terrainroute/terrain"
)

// PathFinder runs least-cost searches over one grid.
// It keeps no state between calls; the grid must not change during FindPath.
type PathFinder struct {
	grid      *terrain.Grid
	costs     terrain.CostTable
	heuristic Heuristic
}

// NewPathFinder binds a grid and options. Returns ErrNilGrid if g is nil.
func NewPathFinder(g *terrain.Grid, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Costs.Valid() {
		cfg.Costs = g.Costs()
	}
	if cfg.Heuristic == nil {
		if cfg.Scaled {
			cfg.Heuristic = ScaledManhattan(cfg.Costs.MinStepCost())
		} else {
			cfg.Heuristic = Manhattan
		}
	}

	return &PathFinder{grid: g, costs: cfg.Costs, heuristic: cfg.Heuristic}, nil
}

// Costs returns the table used for relaxation.
func (pf *PathFinder) Costs() terrain.CostTable {
	return pf.costs
}

// FindPath computes a least-cost path from start to end.
//
// Preconditions and validation (in order):
//  1. start must lie inside the grid (terrain.ErrOutOfBounds).
//  2. end must lie inside the grid (terrain.ErrOutOfBounds).
//
// Passability of start and end is not checked: an impassable start is still
// searched from, an impassable end is never entered. Unreachability is not an
// error: the result then has an empty Path.
//
// Costs and f-scores saturate at terrain.Infinite instead of wrapping.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols (each cell pushes at most 4 entries).
//   - Space: O(N).
func (pf *PathFinder) FindPath(start, end terrain.Coord) (Result, error) {
	// 1) Validate both endpoints against the grid extent.
	if !pf.grid.InBounds(start) {
		return Result{}, fmt.Errorf("astar: start: %w: %v", terrain.ErrOutOfBounds, start)
	}
	if !pf.grid.InBounds(end) {
		return Result{}, fmt.Errorf("astar: end: %w: %v", terrain.ErrOutOfBounds, end)
	}

	// 2) Allocate per-call state, seed the frontier with start and run the main loop.
	r := newRunner(pf, start, end)
	r.init()
	goal, found := r.process()

	// 3) Frontier exhausted without closing end: report an empty path.
	if !found {
		return Result{Path: []terrain.Coord{}, Expanded: r.expanded}, nil
	}

	// 4) Otherwise rebuild the route from back-pointers.
	return Result{
		Path:     r.reconstruct(goal),
		Cost:     r.g[goal],
		Expanded: r.expanded,
	}, nil
}

// unseen marks cells without a known g-score or predecessor.
const unseen = -1

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	pf         *PathFinder // finder being run; grid is read-only here
	start, end int         // row-major endpoints
	endC       terrain.Coord
	g          []int64 // best known cost from start, row-major
	prev       []int   // predecessor index, unseen for none
	closed     []bool  // finalized cells
	pq         nodePQ  // min-heap of frontier entries, stale ones included
	expanded   int
}

// newRunner sizes every score table to the grid. Callers have already
// bounds-checked start and end.
func newRunner(pf *PathFinder, start, end terrain.Coord) *runner {
	n := pf.grid.Rows() * pf.grid.Cols()
	s, _ := pf.grid.Index(start)
	e, _ := pf.grid.Index(end)

	return &runner{
		pf:     pf,
		start:  s,
		end:    e,
		endC:   end,
		g:      make([]int64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		pq:     make(nodePQ, 0, n), // capacity N is a reasonable starting point
	}
}

// init marks every cell unseen and pushes the start with g = 0.
func (r *runner) init() {
	// 1) g = +∞ and no predecessor for every cell.
	for i := range r.g {
		r.g[i] = terrain.Infinite
		r.prev[i] = unseen
	}

	// 2) The start cell is free.
	r.g[r.start] = 0

	// 3) Seed the heap.
	heap.Init(&r.pq)
	r.push(r.start)
}

// process pops the lowest-f node until the goal is popped or the frontier
// runs dry. It reports the goal index and whether it was reached.
func (r *runner) process() (int, bool) {
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest (f, row, col).
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale entries of already finalized cells.
		if r.closed[u] {
			continue
		}

		// 3) Goal reached: its g is final.
		r.expanded++
		if u == r.end {
			return u, true
		}

		// 4) Finalize u and relax its orthogonal neighbors.
		r.closed[u] = true
		r.relax(u)
	}

	return unseen, false
}

// relax tries to improve every orthogonal neighbor of u.
// Assumes r.g[u] is final.
func (r *runner) relax(u int) {
	grid := r.pf.grid
	for _, nc := range grid.Neighbors(grid.Coordinate(u)) {
		v, _ := grid.Index(nc)
		if r.closed[v] {
			continue
		}

		// Impassable labels are never entered.
		label, _ := grid.TerrainAt(nc)
		step, ok := r.pf.costs.Cost(label)
		if !ok {
			continue
		}

		// Strictly better only; a saturated sum never beats an unseen cell.
		tentative := terrain.AddCost(r.g[u], step)
		if tentative >= r.g[v] {
			continue
		}
		r.g[v] = tentative
		r.prev[v] = u

		// Lazy decrease-key: the outdated entry stays and is skipped when popped.
		r.push(v)
	}
}

// push enqueues idx with f = g + h, saturating at terrain.Infinite.
func (r *runner) push(idx int) {
	c := r.pf.grid.Coordinate(idx)
	h := r.pf.heuristic(c, r.endC)
	if h < 0 {
		h = 0
	}
	heap.Push(&r.pq, &nodeItem{
		idx: idx,
		row: c.Row,
		col: c.Col,
		f:   terrain.AddCost(r.g[idx], h),
	})
}

// reconstruct follows predecessors from goal back to start and reverses.
func (r *runner) reconstruct(goal int) []terrain.Coord {
	var path []terrain.Coord
	for at := goal; at != unseen; at = r.prev[at] {
		path = append(path, r.pf.grid.Coordinate(at))
		if at == r.start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry.
type nodeItem struct {
	idx      int
	row, col int
	f        int64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then row, then col.
// The coordinate tie-break keeps equal-f expansions reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.row != b.row {
		return a.row < b.row
	}

	return a.col < b.col
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
