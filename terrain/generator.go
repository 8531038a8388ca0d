// SPDX-License-Identifier: MIT
// Package: terrainroute/terrain
//
// generator.go: injectable strategies for initial cell labels.
//
// A Generator receives the grid's RNG on every draw, so a fixed seed yields a
// reproducible map and a stub generator ignores randomness entirely.

package terrain

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator draws the initial label of a single cell.
type Generator func(rng *rand.Rand) Terrain

// Weights are the relative probabilities of each label in a weighted draw.
type Weights struct {
	Road     float64 `json:"road"`
	Building float64 `json:"building"`
	Water    float64 `json:"water"`
	Blocked  float64 `json:"blocked"`
}

// DefaultWeights returns Road 0.6, Building 0.1, Water 0.2, Blocked 0.1.
func DefaultWeights() Weights {
	return Weights{Road: 0.6, Building: 0.1, Water: 0.2, Blocked: 0.1}
}

func (w Weights) values() [numTerrains]float64 {
	return [numTerrains]float64{
		Road:     w.Road,
		Building: w.Building,
		Water:    w.Water,
		Blocked:  w.Blocked,
	}
}

// Validate fails with ErrInvalidWeights if any weight is negative or not
// finite, if all are zero, or if their sum overflows to +Inf.
func (w Weights) Validate() error {
	var total float64
	for i, v := range w.values() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v weight %g", ErrInvalidWeights, Terrain(i), v)
		}
		total += v
	}
	if total <= 0 {
		return fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}
	if math.IsInf(total, 0) {
		return fmt.Errorf("%w: weights sum overflows", ErrInvalidWeights)
	}

	return nil
}

// WeightedGenerator returns a categorical generator over the four labels.
func WeightedGenerator(w Weights) (Generator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	vals := w.values()
	var cumulative [numTerrains]float64
	var total float64
	for i, v := range vals {
		total += v
		cumulative[i] = total
	}

	return func(rng *rand.Rand) Terrain {
		x := rng.Float64() * total
		for i, edge := range cumulative {
			// zero-weight labels share their edge with the previous one and are never picked
			if x < edge && vals[i] > 0 {
				return Terrain(i)
			}
		}
		// x == total can only happen through float rounding; pick the last weighted label
		for i := numTerrains - 1; i >= 0; i-- {
			if vals[i] > 0 {
				return Terrain(i)
			}
		}

		return Road
	}, nil
}

// DefaultGenerator draws labels with DefaultWeights.
func DefaultGenerator() Generator {
	gen, _ := WeightedGenerator(DefaultWeights())
	return gen
}

// Constant returns a generator that always yields t.
func Constant(t Terrain) Generator {
	return func(*rand.Rand) Terrain { return t }
}
