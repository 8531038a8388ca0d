package console

import (
	"bufio"
	"io"

	"github.com/katalvlaran/terrainroute/terrain"
)

// Overlay markers drawn over terrain symbols.
const (
	PathMark  = '*'
	StartMark = 'S'
	EndMark   = 'F'
)

// Render writes g one row per line, symbols separated by single spaces.
func Render(w io.Writer, g *terrain.Grid) error {
	return writeRows(w, symbols(g))
}

// RenderPath writes g with path cells marked '*', then start 'S' and end 'F'
// drawn on top. Coordinates outside g are ignored.
func RenderPath(w io.Writer, g *terrain.Grid, path []terrain.Coord, start, end terrain.Coord) error {
	rows := symbols(g)
	mark := func(c terrain.Coord, r rune) {
		if g.InBounds(c) {
			rows[c.Row][c.Col] = r
		}
	}
	for _, c := range path {
		mark(c, PathMark)
	}
	mark(start, StartMark)
	mark(end, EndMark)

	return writeRows(w, rows)
}

func symbols(g *terrain.Grid) [][]rune {
	snap := g.Snapshot()
	out := make([][]rune, len(snap))
	for r, row := range snap {
		out[r] = make([]rune, len(row))
		for c, t := range row {
			out[r][c] = t.Symbol()
		}
	}

	return out
}

func writeRows(w io.Writer, rows [][]rune) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for c, r := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteRune(r)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
