// Package console holds the line-oriented prompts and text rendering used by
// the interactive route calculator.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/terrainroute/terrain"
)

// ErrInputClosed indicates the input ended before a valid answer was read.
var ErrInputClosed = errors.New("console: input closed")

// Prompter asks questions on out and reads answers line by line from in,
// re-asking until an answer is valid.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("console: read: %w", err)
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// askInt re-asks until the answer parses as an integer.
func (p *Prompter) askInt(question string) (int, error) {
	for {
		line, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Please enter a valid number.")
	}
}

// AskDimensions reads a row and column count, both > 0.
func (p *Prompter) AskDimensions() (rows, cols int, err error) {
	for {
		if rows, err = p.askInt("Number of rows: "); err != nil {
			return 0, 0, err
		}
		if cols, err = p.askInt("Number of columns: "); err != nil {
			return 0, 0, err
		}
		if rows > 0 && cols > 0 {
			return rows, cols, nil
		}
		fmt.Fprintln(p.out, "Rows and columns must be greater than 0.")
	}
}

// AskCoord reads a coordinate inside a rows×cols grid.
func (p *Prompter) AskCoord(label string, rows, cols int) (terrain.Coord, error) {
	for {
		r, err := p.askInt(fmt.Sprintf("Row of %s (0-%d): ", label, rows-1))
		if err != nil {
			return terrain.Coord{}, err
		}
		c, err := p.askInt(fmt.Sprintf("Column of %s (0-%d): ", label, cols-1))
		if err != nil {
			return terrain.Coord{}, err
		}
		if r >= 0 && r < rows && c >= 0 && c < cols {
			return terrain.Coord{Row: r, Col: c}, nil
		}
		fmt.Fprintln(p.out, "Coordinates must lie inside the map.")
	}
}

// AskCount reads a non-negative count.
func (p *Prompter) AskCount(question string) (int, error) {
	for {
		n, err := p.askInt(question)
		if err != nil {
			return 0, err
		}
		if n >= 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "The count cannot be negative.")
	}
}

// AskObstacle reads an obstacle label: Building, Water or Blocked, by name
// or symbol. Road and unknown text are refused.
func (p *Prompter) AskObstacle() (terrain.Terrain, error) {
	question := fmt.Sprintf("Obstacle type (%s building, %s water, %s blocked): ",
		string(terrain.Building.Symbol()), string(terrain.Water.Symbol()), string(terrain.Blocked.Symbol()))
	for {
		line, err := p.ask(question)
		if err != nil {
			return terrain.Road, err
		}
		t, err := terrain.Parse(line)
		if err == nil && t.IsObstacle() {
			return t, nil
		}
		fmt.Fprintln(p.out, "Not a valid obstacle type.")
	}
}
