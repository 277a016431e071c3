package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// randomDensity is the probability that a randomized cell starts alive.
const randomDensity = 0.5

// Grid is a fixed-size rectangular board of alive/dead cells stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool

	// Bounding box of living cells, used by the bounded stepper
	activeBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
	}
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrConfig, "[NewGrid] dimensions must be positive, got %dx%d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

// NewRandomGrid creates a grid where every cell is independently alive with
// probability 0.5, drawn from rng.
func NewRandomGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	g.Randomize(rng, randomDensity)
	return g, nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resizes the grid and clears every cell. Only the pool calls this;
// a grid handed out to callers never changes dimensions.
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.activeBounds.valid = false

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
	g.activeBounds.valid = false
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, indexError(row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return indexError(row, col, g.rows, g.cols)
	}
	g.cells[row][col] = alive
	g.activeBounds.valid = false
	return nil
}

// Toggle flips a single cell between alive and dead
func (g *Grid) Toggle(row, col int) error {
	if !g.inBounds(row, col) {
		return indexError(row, col, g.rows, g.cols)
	}
	g.cells[row][col] = !g.cells[row][col]
	g.activeBounds.valid = false
	return nil
}

// Randomize makes each cell alive with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = rng.Float64() < density
		}
	}
	g.activeBounds.valid = false
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := newGrid(g.rows, g.cols)
	g.copyInto(out)
	return out
}

func (g *Grid) copyInto(dst *Grid) {
	for r := range g.rows {
		copy(dst.cells[r], g.cells[r])
	}
	dst.activeBounds = g.activeBounds
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
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

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for r := range g.rows {
		for c := range g.cols {
			if !g.cells[r][c] {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minRow, g.activeBounds.maxRow = r, r
				g.activeBounds.minCol, g.activeBounds.maxCol = c, c
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minRow = min(g.activeBounds.minRow, r)
			g.activeBounds.maxRow = max(g.activeBounds.maxRow, r)
			g.activeBounds.minCol = min(g.activeBounds.minCol, c)
			g.activeBounds.maxCol = max(g.activeBounds.maxCol, c)
		}
	}
}

// BoundingBoxSize returns the area of the smallest rectangle holding every
// living cell, or 0 for an empty grid.
func (g *Grid) BoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxRow - g.activeBounds.minRow + 1) *
		(g.activeBounds.maxCol - g.activeBounds.minCol + 1)
}
