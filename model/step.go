package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Step returns the next generation of g. g is not modified.
func Step(g *Grid) *Grid {
	return g.NextGenerationSequential(nil)
}

// nextBuffer returns a dead grid of the same size for the next generation
func (g *Grid) nextBuffer(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.rows, g.cols)
	}
	return newGrid(g.rows, g.cols)
}

// NextGenerationSequential calculates the next generation on the calling goroutine
func (g *Grid) NextGenerationSequential(pool *GridPool) *Grid {
	next := g.nextBuffer(pool)
	g.stepRows(next, 0, g.rows, 0, g.cols-1)
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := g.nextBuffer(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		// Each worker owns a disjoint band of rows in next and only reads g
		eg.Go(func() error {
			g.stepRows(next, startRow, endRow, 0, g.cols-1)
			return nil
		})
	}

	// Workers never fail; Wait is the join.
	_ = eg.Wait()

	return next
}

// NextGenerationBounded calculates next generation only in active region
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next := g.nextBuffer(pool)

	// If no active cells, return empty grid
	if !g.activeBounds.valid {
		return next
	}

	// Process only the active region + 1 margin; nothing outside it can be born
	minRow := max(0, g.activeBounds.minRow-1)
	maxRow := min(g.rows-1, g.activeBounds.maxRow+1)
	minCol := max(0, g.activeBounds.minCol-1)
	maxCol := min(g.cols-1, g.activeBounds.maxCol+1)

	g.stepRows(next, minRow, maxRow+1, minCol, maxCol)

	next.calculateActiveBounds()
	return next
}

// NextGeneration calculates the next generation based on configuration
func (g *Grid) NextGeneration(config utils.Config, pool *GridPool) *Grid {
	switch {
	case config.UseBoundedGrid:
		return g.NextGenerationBounded(pool)
	case config.UseParallel:
		return g.NextGenerationParallel(pool)
	default:
		return g.NextGenerationSequential(pool)
	}
}

// stepRows writes rows [startRow, endRow) and columns [minCol, maxCol] of the
// next generation into next, which must start out all dead.
func (g *Grid) stepRows(next *Grid, startRow, endRow, minCol, maxCol int) {
	for r := startRow; r < endRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if rules.ApplyConwayRules(g.countNeighbors(r, c), g.cells[r][c]) {
				next.cells[r][c] = true
			}
		}
	}
}
