package terrain_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainroute/terrain"
)

func TestWeightedGenerator_Errors(t *testing.T) {
	_, err := terrain.WeightedGenerator(terrain.Weights{Road: -0.1, Water: 1})
	assert.ErrorIs(t, err, terrain.ErrInvalidWeights)

	_, err = terrain.WeightedGenerator(terrain.Weights{})
	assert.ErrorIs(t, err, terrain.ErrInvalidWeights)

	// each weight finite, the sum overflows to +Inf
	_, err = terrain.WeightedGenerator(terrain.Weights{Road: 1e308, Building: 1e308, Water: 1e308, Blocked: 1e308})
	assert.ErrorIs(t, err, terrain.ErrInvalidWeights)

	_, err = terrain.WeightedGenerator(terrain.Weights{Road: math.NaN(), Water: 1})
	assert.ErrorIs(t, err, terrain.ErrInvalidWeights)

	_, err = terrain.WeightedGenerator(terrain.Weights{Road: math.Inf(1)})
	assert.ErrorIs(t, err, terrain.ErrInvalidWeights)
}

// TestWeightedGenerator_ZeroWeightNeverDrawn checks zero-weight labels are excluded.
func TestWeightedGenerator_ZeroWeightNeverDrawn(t *testing.T) {
	gen, err := terrain.WeightedGenerator(terrain.Weights{Water: 1, Blocked: 1})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		got := gen(rng)
		assert.Contains(t, []terrain.Terrain{terrain.Water, terrain.Blocked}, got)
	}
}

// TestDefaultGenerator_Distribution checks the default weights within a loose tolerance.
func TestDefaultGenerator_Distribution(t *testing.T) {
	const n = 20000
	gen := terrain.DefaultGenerator()
	rng := rand.New(rand.NewSource(11))

	counts := map[terrain.Terrain]int{}
	for i := 0; i < n; i++ {
		counts[gen(rng)]++
	}
	w := terrain.DefaultWeights()
	assert.InDelta(t, w.Road, float64(counts[terrain.Road])/n, 0.03)
	assert.InDelta(t, w.Building, float64(counts[terrain.Building])/n, 0.03)
	assert.InDelta(t, w.Water, float64(counts[terrain.Water])/n, 0.03)
	assert.InDelta(t, w.Blocked, float64(counts[terrain.Blocked])/n, 0.03)
}
