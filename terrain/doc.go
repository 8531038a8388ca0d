// Package terrain stores a rectangular map of terrain labels and answers
// passability and cost queries for route searches.
//
// What:
//
//   - Grid holds a fixed rows×cols array of Terrain labels (Road, Building,
//     Water, Blocked) and exposes bounds-checked read/write accessors.
//   - CostTable maps each label to a non-negative traversal cost and
//     designates one label as impassable (Building by default).
//   - Generator is an injectable strategy for initial labels; WeightedGenerator
//     draws from a categorical distribution, Constant yields a stub.
//
// Defaults:
//
//   - Costs:   Road=1, Building=impassable, Water=5, Blocked=7.
//   - Weights: Road 0.6, Building 0.1, Water 0.2, Blocked 0.1.
//   - RNG:     fixed seed unless WithSeed or WithRand is given.
//
// Errors:
//
//   - ErrInvalidDimensions: rows ≤ 0 or cols ≤ 0.
//   - ErrNonRectangular:    fixture rows of differing lengths.
//   - ErrOutOfBounds:       any accessor called outside the grid; never clamped.
//   - ErrInvalidTerrain:    label outside the enumeration.
//   - ErrInvalidCost:       negative, missing or above-MaxCost cost in NewCostTable.
//   - ErrInvalidWeights:    negative weights or zero total in WeightedGenerator.
//
// A failed SetTerrain or ClearTerrain leaves every cell untouched.
package terrain
