package model

import "github.com/pkg/errors"

var (
	// ErrConfig indicates invalid session configuration: non-positive dimensions,
	// a negative generation cap, or a similar out-of-range setting.
	ErrConfig = errors.New("model: invalid configuration")
	// ErrFormat indicates malformed persisted grid text.
	ErrFormat = errors.New("model: malformed grid text")
	// ErrIndex indicates a cell coordinate outside the grid.
	ErrIndex = errors.New("model: cell coordinate out of range")
)

func indexError(row, col, rows, cols int) error {
	return errors.Wrapf(ErrIndex, "(%d,%d) not in %dx%d grid", row, col, rows, cols)
}
