package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainroute/terrain"
)

// TestDefaultCostTable locks in the default costs.
func TestDefaultCostTable(t *testing.T) {
	ct := terrain.DefaultCostTable()
	require.True(t, ct.Valid())
	assert.Equal(t, terrain.Building, ct.Impassable())

	cases := []struct {
		label    terrain.Terrain
		cost     int64
		passable bool
	}{
		{terrain.Road, 1, true},
		{terrain.Building, terrain.Infinite, false},
		{terrain.Water, 5, true},
		{terrain.Blocked, 7, true},
		{terrain.Terrain(8), terrain.Infinite, false},
	}
	for _, tc := range cases {
		cost, ok := ct.Cost(tc.label)
		assert.Equal(t, tc.cost, cost, "Cost(%v)", tc.label)
		assert.Equal(t, tc.passable, ok, "Cost(%v) passable", tc.label)
	}
	assert.Equal(t, int64(1), ct.MinStepCost())
}

// TestNewCostTable_Errors covers every validation branch.
func TestNewCostTable_Errors(t *testing.T) {
	full := func() map[terrain.Terrain]int64 {
		return map[terrain.Terrain]int64{terrain.Road: 1, terrain.Water: 2, terrain.Blocked: 3}
	}

	_, err := terrain.NewCostTable(full(), terrain.Terrain(4))
	assert.ErrorIs(t, err, terrain.ErrInvalidTerrain, "impassable outside enumeration")

	bad := full()
	bad[terrain.Terrain(6)] = 1
	_, err = terrain.NewCostTable(bad, terrain.Building)
	assert.ErrorIs(t, err, terrain.ErrInvalidTerrain, "unknown key")

	missing := full()
	delete(missing, terrain.Water)
	_, err = terrain.NewCostTable(missing, terrain.Building)
	assert.ErrorIs(t, err, terrain.ErrInvalidCost, "missing cost")

	negative := full()
	negative[terrain.Road] = -1
	_, err = terrain.NewCostTable(negative, terrain.Building)
	assert.ErrorIs(t, err, terrain.ErrInvalidCost, "negative cost")
}

// TestNewCostTable_IgnoresImpassableEntry checks the impassable label is infinite
// regardless of the map entry.
func TestNewCostTable_IgnoresImpassableEntry(t *testing.T) {
	ct, err := terrain.NewCostTable(map[terrain.Terrain]int64{
		terrain.Road: 2, terrain.Building: 1, terrain.Water: 4, terrain.Blocked: 9,
	}, terrain.Building)
	require.NoError(t, err)

	assert.False(t, ct.IsPassable(terrain.Building))
	assert.Equal(t, int64(2), ct.MinStepCost())
}

// TestNewCostTable_MaxCost checks the accepted upper bound of a passable cost.
func TestNewCostTable_MaxCost(t *testing.T) {
	costs := map[terrain.Terrain]int64{terrain.Road: 1, terrain.Water: terrain.MaxCost, terrain.Blocked: 3}
	_, err := terrain.NewCostTable(costs, terrain.Building)
	require.NoError(t, err)

	costs[terrain.Water] = terrain.MaxCost + 1
	_, err = terrain.NewCostTable(costs, terrain.Building)
	assert.ErrorIs(t, err, terrain.ErrInvalidCost)
}

func TestAddMulCost_Saturate(t *testing.T) {
	assert.Equal(t, int64(5), terrain.AddCost(2, 3))
	assert.Equal(t, terrain.Infinite, terrain.AddCost(terrain.Infinite-1, 2))
	assert.Equal(t, terrain.Infinite, terrain.AddCost(terrain.Infinite, 0))
	assert.Equal(t, int64(12), terrain.MulCost(3, 4))
	assert.Equal(t, int64(0), terrain.MulCost(0, terrain.Infinite))
	assert.Equal(t, terrain.Infinite, terrain.MulCost(terrain.Infinite/2+1, 2))
}
