package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifegrid/rules"
)

const (
	// PatternRowSeparator separates rows in a seed pattern
	PatternRowSeparator = "#"

	AliveGlyph = '1'
	DeadGlyph  = '0'

	historySize = 5
)

// Grid is a bounded Game of Life board of rows x cols cells
type Grid struct {
	rows       int
	cols       int
	cells      [][]bool
	generation int
	history    []string // hashes of recent generations, newest last
}

// NewGrid creates a grid with every cell dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
	}, nil
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Dimensions returns the number of rows and columns
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Generation returns how many times NextGeneration has run
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfRange, "[IsAlive] (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = alive
	return nil
}

// PopulateFromPattern seeds the grid from rows of '1' (alive) and any other rune (dead),
// separated by '#'. Cells the pattern does not reach are dead.
func (g *Grid) PopulateFromPattern(pattern string) error {
	rows := strings.Split(pattern, PatternRowSeparator)
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) > g.rows {
		return errors.Wrapf(ErrPatternOutOfBounds, "[PopulateFromPattern] %d rows for a grid of %d", len(rows), g.rows)
	}

	parsed := make([][]rune, len(rows))
	for i, row := range rows {
		parsed[i] = []rune(row)
		if len(parsed[i]) > g.cols {
			return errors.Wrapf(ErrPatternOutOfBounds,
				"[PopulateFromPattern] row %d has %d columns for a grid of %d", i, len(parsed[i]), g.cols)
		}
	}

	for i := range g.rows {
		for j := range g.cols {
			g.cells[i][j] = i < len(parsed) && j < len(parsed[i]) && parsed[i][j] == AliveGlyph
		}
	}
	g.history = nil
	return nil
}

// Randomize sets each cell alive with probability 0.5
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.rows {
		for j := range g.cols {
			g.cells[i][j] = rng.Intn(2) == 1
		}
	}
	g.history = nil
}

// CountNeighbors counts living cells in the Moore neighborhood, ignoring positions off the grid
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// NextGeneration advances the grid one generation. The new state is computed from a
// snapshot of the current one and swapped in once complete.
func (g *Grid) NextGeneration() {
	next := newCells(g.rows, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			next[r][c] = rules.ApplyConwayRules(g.CountNeighbors(r, c), g.cells[r][c])
		}
	}

	g.updateHistory()
	g.cells = next
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:       g.rows,
		cols:       g.cols,
		cells:      newCells(g.rows, g.cols),
		generation: g.generation,
		history:    append([]string(nil), g.history...),
	}
	for r := range g.rows {
		copy(clone.cells[r], g.cells[r])
	}
	return clone
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current cell states
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (g *Grid) updateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// Period returns how many generations ago the grid last had its current state:
// 1 for a still life, 2 or more for an oscillator, 0 if it has not repeated recently.
func (g *Grid) Period() int {
	current := g.GetGridHash()
	for age := 1; age <= len(g.history); age++ {
		if g.history[len(g.history)-age] == current {
			return age
		}
	}
	return 0
}

// String renders the grid as rows of AliveGlyph and DeadGlyph
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				sb.WriteRune(AliveGlyph)
			} else {
				sb.WriteRune(DeadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
