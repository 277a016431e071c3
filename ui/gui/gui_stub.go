//go:build !ebiten

package gui

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrUnavailable is returned when the binary was built without the ebiten tag.
var ErrUnavailable = errors.New("gui: rebuild with -tags ebiten for the graphical front end")

// Run reports that the graphical front end is not compiled in.
func Run(*model.Life, int, time.Duration) error {
	return ErrUnavailable
}
