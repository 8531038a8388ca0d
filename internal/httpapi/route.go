package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/katalvlaran/terrainroute/astar"
	"github.com/katalvlaran/terrainroute/internal/console"
	"github.com/katalvlaran/terrainroute/terrain"
)

// errTooLarge indicates a requested map above the configured area.
var errTooLarge = errors.New("httpapi: grid area exceeds limit")

// Request body budget: a fixed allowance plus a per-cell share covering a
// symbol in cells and one obstacle entry.
const (
	baseBodyBytes    = 64 << 10
	bodyBytesPerCell = 64
)

// CoordDTO is the wire form of terrain.Coord.
type CoordDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c CoordDTO) coord() terrain.Coord { return terrain.Coord{Row: c.Row, Col: c.Col} }

// ObstacleDTO places one obstacle label (name or symbol) on the map.
type ObstacleDTO struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Terrain string `json:"terrain"`
}

// RouteRequest describes a map and the endpoints to connect.
// Cells, when given, replaces random generation: one string of symbols per row,
// spaces between symbols optional.
type RouteRequest struct {
	Rows            int              `json:"rows"`
	Cols            int              `json:"cols"`
	Seed            int64            `json:"seed"`
	Weights         *terrain.Weights `json:"weights,omitempty"`
	Cells           []string         `json:"cells,omitempty"`
	Obstacles       []ObstacleDTO    `json:"obstacles,omitempty"`
	Start           CoordDTO         `json:"start"`
	End             CoordDTO         `json:"end"`
	ScaledHeuristic bool             `json:"scaled_heuristic,omitempty"`
}

// RouteResponse reports the search outcome and the map with the route drawn.
type RouteResponse struct {
	Found    bool       `json:"found"`
	Blocked  bool       `json:"blocked,omitempty"`
	Path     []CoordDTO `json:"path"`
	Cost     int64      `json:"cost"`
	Expanded int        `json:"expanded"`
	Grid     []string   `json:"grid"`
}

// TerrainDTO describes one label and its default cost.
type TerrainDTO struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Cost     int64  `json:"cost,omitempty"`
	Passable bool   `json:"passable"`
}

// RouteHandler serves route searches.
type RouteHandler struct {
	maxArea int
}

// NewRouteHandler creates a handler accepting maps up to maxArea cells.
func NewRouteHandler(maxArea int) *RouteHandler {
	return &RouteHandler{maxArea: maxArea}
}

// maxBodyBytes bounds the request body so oversized maps are refused before
// they are parsed.
func (h *RouteHandler) maxBodyBytes() int64 {
	return baseBodyBytes + int64(h.maxArea)*bodyBytesPerCell
}

// ListTerrain returns the label enumeration with default costs.
func (h *RouteHandler) ListTerrain(w http.ResponseWriter, r *http.Request) {
	ct := terrain.DefaultCostTable()
	out := make([]TerrainDTO, 0, len(terrain.All()))
	for _, t := range terrain.All() {
		cost, ok := ct.Cost(t)
		dto := TerrainDTO{Name: t.String(), Symbol: string(t.Symbol()), Passable: ok}
		if ok {
			dto.Cost = cost
		}
		out = append(out, dto)
	}
	respondJSON(w, http.StatusOK, out)
}

// FindRoute builds the requested map and runs the search.
func (h *RouteHandler) FindRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes())
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respondError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	g, err := h.buildGrid(req)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	start, end := req.Start.coord(), req.End.coord()

	// endpoints are vetoed here, the finder itself never refuses them
	startOK, err := g.IsPassable(start)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	endOK, err := g.IsPassable(end)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	if !startOK || !endOK {
		resp := RouteResponse{Blocked: true, Path: []CoordDTO{}}
		resp.Grid, _ = renderLines(g, nil, start, end)
		respondJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	var opts []astar.Option
	if req.ScaledHeuristic {
		opts = append(opts, astar.WithScaledHeuristic())
	}
	pf, err := astar.NewPathFinder(g, opts...)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	res, err := pf.FindPath(start, end)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	resp := RouteResponse{
		Found:    res.Found(),
		Path:     make([]CoordDTO, 0, len(res.Path)),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for _, c := range res.Path {
		resp.Path = append(resp.Path, CoordDTO{Row: c.Row, Col: c.Col})
	}
	if resp.Grid, err = renderLines(g, res.Path, start, end); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// buildGrid creates the map from explicit cells or from the seeded generator,
// then applies obstacles in order.
func (h *RouteHandler) buildGrid(req RouteRequest) (*terrain.Grid, error) {
	var (
		g   *terrain.Grid
		err error
	)
	if len(req.Cells) > 0 {
		g, err = h.gridFromCells(req.Cells)
	} else {
		g, err = h.generateGrid(req)
	}
	if err != nil {
		return nil, err
	}

	for i, o := range req.Obstacles {
		t, err := terrain.Parse(o.Terrain)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		if !t.IsObstacle() {
			return nil, fmt.Errorf("obstacle %d: %w: %v is not an obstacle", i, terrain.ErrInvalidTerrain, t)
		}
		if err = g.SetTerrain(terrain.Coord{Row: o.Row, Col: o.Col}, t); err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
	}

	return g, nil
}

func (h *RouteHandler) generateGrid(req RouteRequest) (*terrain.Grid, error) {
	if req.Rows > 0 && req.Cols > 0 && req.Rows > h.maxArea/req.Cols {
		return nil, fmt.Errorf("%w: %dx%d > %d cells", errTooLarge, req.Rows, req.Cols, h.maxArea)
	}
	gen := terrain.DefaultGenerator()
	if req.Weights != nil {
		var err error
		if gen, err = terrain.WeightedGenerator(*req.Weights); err != nil {
			return nil, err
		}
	}

	return terrain.NewGrid(req.Rows, req.Cols, gen, terrain.WithSeed(req.Seed))
}

func (h *RouteHandler) gridFromCells(lines []string) (*terrain.Grid, error) {
	rows := make([][]terrain.Terrain, len(lines))
	area := 0
	for r, line := range lines {
		for _, sym := range line {
			if unicode.IsSpace(sym) {
				continue
			}
			t, err := terrain.Parse(string(sym))
			if err != nil {
				return nil, fmt.Errorf("cells row %d: %w", r, err)
			}
			rows[r] = append(rows[r], t)
		}
		area += len(rows[r])
		if area > h.maxArea {
			return nil, fmt.Errorf("%w: more than %d cells", errTooLarge, h.maxArea)
		}
	}

	return terrain.NewGridFromRows(rows)
}

func renderLines(g *terrain.Grid, path []terrain.Coord, start, end terrain.Coord) ([]string, error) {
	var sb strings.Builder
	if err := console.RenderPath(&sb, g, path, start, end); err != nil {
		return nil, err
	}

	return strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n"), nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, terrain.ErrInvalidDimensions),
		errors.Is(err, terrain.ErrNonRectangular),
		errors.Is(err, terrain.ErrOutOfBounds),
		errors.Is(err, terrain.ErrInvalidTerrain),
		errors.Is(err, terrain.ErrInvalidWeights):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
