package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a small rectangular arrangement of cells, true meaning alive.
type Pattern [][]bool

var patterns = map[string]Pattern{
	"glider": {
		{false, true, false},
		{false, false, true},
		{true, true, true},
	},
	"blinker": {
		{true, true, true},
	},
	"block": {
		{true, true},
		{true, true},
	},
	"beehive": {
		{false, true, true, false},
		{true, false, false, true},
		{false, true, true, false},
	},
	"toad": {
		{false, true, true, true},
		{true, true, true, false},
	},
}

// LookupPattern returns the named seed pattern
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the known pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Height returns the number of pattern rows
func (p Pattern) Height() int { return len(p) }

// Width returns the number of pattern columns
func (p Pattern) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Stamp copies p onto g with its top-left corner at (row, col). Dead pattern
// cells overwrite live grid cells. The whole pattern must fit inside g.
func (g *Grid) Stamp(p Pattern, row, col int) error {
	if p.Height() == 0 {
		return nil
	}
	if !g.inBounds(row, col) || !g.inBounds(row+p.Height()-1, col+p.Width()-1) {
		return errors.Wrapf(ErrIndex, "[Stamp] %dx%d pattern at (%d,%d) does not fit %dx%d grid",
			p.Height(), p.Width(), row, col, g.rows, g.cols)
	}
	for r, line := range p {
		copy(g.cells[row+r][col:col+len(line)], line)
	}
	g.activeBounds.valid = false
	return nil
}

// StampCentered stamps p in the middle of g
func (g *Grid) StampCentered(p Pattern) error {
	return g.Stamp(p, (g.rows-p.Height())/2, (g.cols-p.Width())/2)
}
