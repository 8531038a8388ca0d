package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainroute/internal/httpapi"
	"github.com/katalvlaran/terrainroute/terrain"
)

var terrainWeightsRoadOnly = terrain.Weights{Road: 1}

func post(t *testing.T, h http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/route", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) httpapi.RouteResponse {
	t.Helper()
	var resp httpapi.RouteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func TestHealth(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListTerrain(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/terrain", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []httpapi.TerrainDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 4)
	assert.Equal(t, httpapi.TerrainDTO{Name: "Building", Symbol: "#", Passable: false}, out[1])
	assert.Equal(t, httpapi.TerrainDTO{Name: "Water", Symbol: "~", Cost: 5, Passable: true}, out[2])
}

func TestFindRoute_Cells(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := post(t, h, httpapi.RouteRequest{
		Cells: []string{". ~ .", ". . ."},
		Start: httpapi.CoordDTO{Row: 0, Col: 0},
		End:   httpapi.CoordDTO{Row: 0, Col: 2},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	assert.True(t, resp.Found)
	assert.Equal(t, int64(4), resp.Cost)
	assert.Len(t, resp.Path, 5)
	assert.Equal(t, []string{"S ~ F", "* * *"}, resp.Grid)
}

func TestFindRoute_GeneratedWithObstacles(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := post(t, h, httpapi.RouteRequest{
		Rows: 1, Cols: 4, Seed: 3,
		Weights: &terrainWeightsRoadOnly,
		Obstacles: []httpapi.ObstacleDTO{
			{Row: 0, Col: 2, Terrain: "blocked"},
		},
		Start: httpapi.CoordDTO{Row: 0, Col: 0},
		End:   httpapi.CoordDTO{Row: 0, Col: 3},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	assert.True(t, resp.Found)
	assert.Equal(t, int64(1+7+1), resp.Cost)
	assert.Equal(t, []string{"S * * F"}, resp.Grid)
}

func TestFindRoute_Unreachable(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := post(t, h, httpapi.RouteRequest{
		Cells: []string{".#."},
		Start: httpapi.CoordDTO{Row: 0, Col: 0},
		End:   httpapi.CoordDTO{Row: 0, Col: 2},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Path)
}

func TestFindRoute_BlockedEndpoint(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := post(t, h, httpapi.RouteRequest{
		Cells: []string{"..#"},
		Start: httpapi.CoordDTO{Row: 0, Col: 0},
		End:   httpapi.CoordDTO{Row: 0, Col: 2},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.True(t, decode(t, rec).Blocked)
}

func TestFindRoute_Errors(t *testing.T) {
	h := httpapi.NewRouter(100)
	cases := []struct {
		name   string
		req    httpapi.RouteRequest
		status int
	}{
		{"ZeroRows", httpapi.RouteRequest{Rows: 0, Cols: 3}, http.StatusBadRequest},
		{"TooLarge", httpapi.RouteRequest{Rows: 20, Cols: 20}, http.StatusRequestEntityTooLarge},
		{"RaggedCells", httpapi.RouteRequest{Cells: []string{"..", "."}}, http.StatusBadRequest},
		{"UnknownSymbol", httpapi.RouteRequest{Cells: []string{".?"}}, http.StatusBadRequest},
		{"EndOutside", httpapi.RouteRequest{Cells: []string{".."}, End: httpapi.CoordDTO{Row: 0, Col: 5}}, http.StatusBadRequest},
		{"RoadObstacle", httpapi.RouteRequest{
			Cells:     []string{".."},
			Obstacles: []httpapi.ObstacleDTO{{Row: 0, Col: 1, Terrain: "road"}},
		}, http.StatusBadRequest},
		{"ObstacleOutside", httpapi.RouteRequest{
			Cells:     []string{".."},
			Obstacles: []httpapi.ObstacleDTO{{Row: 3, Col: 1, Terrain: "water"}},
		}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, tc.req)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}

func TestFindRoute_BadJSON(t *testing.T) {
	h := httpapi.NewRouter(100)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/route", bytes.NewReader([]byte("{"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestFindRoute_BodyTooLarge refuses a cells payload far beyond the area budget
// before any of it is parsed.
func TestFindRoute_BodyTooLarge(t *testing.T) {
	h := httpapi.NewRouter(1)
	rec := post(t, h, httpapi.RouteRequest{
		Cells: []string{strings.Repeat(".", 200<<10)},
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
}
