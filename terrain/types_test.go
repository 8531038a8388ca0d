package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainroute/terrain"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want terrain.Terrain
	}{
		{"road", terrain.Road},
		{"BUILDING", terrain.Building},
		{" water ", terrain.Water},
		{"Blocked", terrain.Blocked},
		{"#", terrain.Building},
		{"~", terrain.Water},
		{"X", terrain.Blocked},
		{".", terrain.Road},
	}
	for _, tc := range cases {
		got, err := terrain.Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}

	for _, in := range []string{"", "lava", "x", "E"} {
		_, err := terrain.Parse(in)
		assert.ErrorIs(t, err, terrain.ErrInvalidTerrain, "Parse(%q)", in)
	}
}

func TestTerrain_Labels(t *testing.T) {
	assert.Equal(t, "Water", terrain.Water.String())
	assert.Equal(t, "Terrain(9)", terrain.Terrain(9).String())
	assert.Equal(t, '?', terrain.Terrain(9).Symbol())
	assert.False(t, terrain.Road.IsObstacle())
	assert.True(t, terrain.Blocked.IsObstacle())
	assert.False(t, terrain.Terrain(4).IsObstacle())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, int64(0), terrain.Manhattan(terrain.Coord{Row: 1, Col: 1}, terrain.Coord{Row: 1, Col: 1}))
	assert.Equal(t, int64(7), terrain.Manhattan(terrain.Coord{Row: 0, Col: 5}, terrain.Coord{Row: 3, Col: 1}))
	assert.Equal(t, "(2,3)", terrain.Coord{Row: 2, Col: 3}.String())
}
