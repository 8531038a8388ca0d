// SPDX-License-Identifier: MIT
// Package: terrainroute/terrain
//
// types.go: terrain labels and cell coordinates.

package terrain

import (
	"fmt"
	"strings"
)

// Terrain is the label stored in a single grid cell.
type Terrain uint8

const (
	// Road is the default passable label (cost 1 in the default table).
	Road Terrain = iota
	// Building is impassable in the default table.
	Building
	// Water is passable but slow (cost 5 in the default table).
	Water
	// Blocked marks a temporarily obstructed area (cost 7 in the default table).
	Blocked

	numTerrains = 4
)

// terrainInfo holds the display metadata of every label, indexed by Terrain.
var terrainInfo = [numTerrains]struct {
	name   string
	symbol rune
}{
	Road:     {"Road", '.'},
	Building: {"Building", '#'},
	Water:    {"Water", '~'},
	Blocked:  {"Blocked", 'X'},
}

// All returns every label of the enumeration in declaration order.
func All() []Terrain {
	return []Terrain{Road, Building, Water, Blocked}
}

// Valid reports whether t is a member of the enumeration.
func (t Terrain) Valid() bool {
	return t < numTerrains
}

// IsObstacle reports whether t may be entered as an obstacle by a collaborator
// (every label except the default Road).
func (t Terrain) IsObstacle() bool {
	return t.Valid() && t != Road
}

// String returns the label name, or "Terrain(n)" for unknown values.
func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}

	return terrainInfo[t].name
}

// Symbol returns the one-rune display symbol of t, '?' for unknown values.
func (t Terrain) Symbol() rune {
	if !t.Valid() {
		return '?'
	}

	return terrainInfo[t].symbol
}

// Parse resolves a label from its name or display symbol, ignoring case and
// surrounding whitespace. Unknown text yields ErrInvalidTerrain.
func Parse(text string) (Terrain, error) {
	s := strings.TrimSpace(text)
	for i, info := range terrainInfo {
		if strings.EqualFold(s, info.name) || s == string(info.symbol) {
			return Terrain(i), nil
		}
	}

	return Road, fmt.Errorf("%w: %q", ErrInvalidTerrain, text)
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
