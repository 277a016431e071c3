package model

// CountLiveNeighbors counts the living cells in the Moore neighborhood of
// (row, col). Neighbors outside the grid count as dead; there is no wrap-around.
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, indexError(row, col, g.rows, g.cols)
	}
	return g.countNeighbors(row, col), nil
}

// countNeighbors is CountLiveNeighbors for coordinates already known to be valid
func (g *Grid) countNeighbors(row, col int) int {
	count := 0

	// Clamp the 3x3 window to the grid once instead of checking every offset
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for nr := minRow; nr <= maxRow; nr++ {
		for nc := minCol; nc <= maxCol; nc++ {
			if nr == row && nc == col {
				continue
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}

	return count
}
