// Package terrainroute computes least-cost routes across rectangular terrain
// maps where every cell carries a traversal cost or is impassable.
//
// What is inside:
//
//	terrain/        Grid of terrain labels, CostTable, injectable label generators
//	astar/          A* PathFinder with deterministic tie-breaking and PathCost
//	cmd/routecalc   interactive prompt dialogue or HTTP service (-serve)
//
// Quick ASCII example (default costs: . road 1, ~ water 5, X blocked 7, # building):
//
//	S ~ F        S ~ F
//	. . .   →    * * *
//
// the four-step road detour (cost 4) beats crossing the water (cost 6).
//
//	go get github.com/katalvlaran/terrainroute
package terrainroute
