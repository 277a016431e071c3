package model

import (
	"crypto/md5"
	"fmt"
)

// historyDepth is how many recent fingerprints are kept to detect cycles
const historyDepth = 5

// Fingerprint returns an MD5 hash of the grid's dimensions and cell states
func (g *Grid) Fingerprint() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	row := make([]byte, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			row[c] = 0
			if g.cells[r][c] {
				row[c] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History remembers recent generations to report short oscillation periods.
// It is informational only and plays no part in termination.
type History struct {
	hashes []string
}

// Record adds g as the newest generation
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Fingerprint())

	// Keep only the most recent states
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Period returns the smallest p such that the newest recorded generation equals
// the one recorded p generations earlier, or 0 if no cycle is visible. A still
// life has period 1.
func (h *History) Period() int {
	n := len(h.hashes)
	if n < 2 {
		return 0
	}
	current := h.hashes[n-1]
	for p := 1; p < n; p++ {
		if h.hashes[n-1-p] == current {
			return p
		}
	}
	return 0
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
