// Package session drives the interactive route calculation: map size,
// random terrain, start and end, obstacles, then the search.
package session

import (
	"fmt"
	"io"

	"github.com/katalvlaran/terrainroute/astar"
	"github.com/katalvlaran/terrainroute/internal/console"
	"github.com/katalvlaran/terrainroute/terrain"
)

// Outcome summarizes a finished session.
type Outcome struct {
	Grid       *terrain.Grid
	Start, End terrain.Coord
	Blocked    bool // start or end was impassable; no search ran
	Result     astar.Result
}

// Session holds the collaborators of one interactive run.
type Session struct {
	prompt *console.Prompter
	out    io.Writer
	gen    terrain.Generator
	opts   []terrain.GridOption
}

// New builds a session reading from in and writing to out. gen may be nil for
// the default weighted generator; opts are passed to terrain.NewGrid.
func New(in io.Reader, out io.Writer, gen terrain.Generator, opts ...terrain.GridOption) *Session {
	return &Session{
		prompt: console.NewPrompter(in, out),
		out:    out,
		gen:    gen,
		opts:   opts,
	}
}

// Run executes the full dialogue. Prompt errors (closed input) and grid
// errors are returned; an unreachable end is reported in the Outcome.
func (s *Session) Run() (Outcome, error) {
	rows, cols, err := s.prompt.AskDimensions()
	if err != nil {
		return Outcome{}, err
	}
	g, err := terrain.NewGrid(rows, cols, s.gen, s.opts...)
	if err != nil {
		return Outcome{}, err
	}
	fmt.Fprintln(s.out, "Generated map:")
	if err = console.Render(s.out, g); err != nil {
		return Outcome{}, err
	}

	o := Outcome{Grid: g}
	if o.Start, err = s.prompt.AskCoord("start", rows, cols); err != nil {
		return Outcome{}, err
	}
	if o.End, err = s.prompt.AskCoord("end", rows, cols); err != nil {
		return Outcome{}, err
	}
	if err = s.placeObstacles(g); err != nil {
		return Outcome{}, err
	}
	fmt.Fprintln(s.out, "Map with obstacles:")
	if err = console.Render(s.out, g); err != nil {
		return Outcome{}, err
	}

	startOK, err := g.IsPassable(o.Start)
	if err != nil {
		return Outcome{}, err
	}
	endOK, err := g.IsPassable(o.End)
	if err != nil {
		return Outcome{}, err
	}
	if !startOK || !endOK {
		o.Blocked = true
		fmt.Fprintln(s.out, "The start or end point is blocked.")
		return o, nil
	}

	pf, err := astar.NewPathFinder(g)
	if err != nil {
		return Outcome{}, err
	}
	if o.Result, err = pf.FindPath(o.Start, o.End); err != nil {
		return Outcome{}, err
	}
	if !o.Result.Found() {
		fmt.Fprintln(s.out, "No route found from start to end.")
		return o, nil
	}
	fmt.Fprintf(s.out, "Shortest route (cost %d): %v\n", o.Result.Cost, o.Result.Path)
	fmt.Fprintln(s.out, "Map with route:")
	if err = console.RenderPath(s.out, g, o.Result.Path, o.Start, o.End); err != nil {
		return Outcome{}, err
	}

	return o, nil
}

func (s *Session) placeObstacles(g *terrain.Grid) error {
	n, err := s.prompt.AskCount("Number of obstacles to add: ")
	if err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		fmt.Fprintf(s.out, "Adding obstacle %d of %d\n", i, n)
		t, err := s.prompt.AskObstacle()
		if err != nil {
			return err
		}
		at, err := s.prompt.AskCoord(fmt.Sprintf("obstacle %d", i), g.Rows(), g.Cols())
		if err != nil {
			return err
		}
		if err = g.SetTerrain(at, t); err != nil {
			return err
		}
	}

	return nil
}
