package ui

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clearScreen moves the cursor home and erases the display
	clearScreen = "\033[H\033[2J"
)

// PlainRenderer prints each frame as text blocks. It takes no input and is
// meant for non-interactive terminals and logs.
type PlainRenderer struct {
	w         io.Writer
	clear     bool
	stats     *utils.Stats
	lastFrame time.Time
}

// NewPlainRenderer writes frames to w, clearing the screen between frames
// when clear is set.
func NewPlainRenderer(w io.Writer, clear bool) *PlainRenderer {
	return &PlainRenderer{w: w, clear: clear, stats: utils.NewStats(), lastFrame: time.Now()}
}

// Render writes the status lines followed by the grid
func (r *PlainRenderer) Render(f Frame) error {
	now := time.Now()
	r.stats.Update(f.Generation, f.Population, now.Sub(r.lastFrame))
	r.lastFrame = now

	bw := bufio.NewWriter(r.w)
	if r.clear {
		bw.WriteString(clearScreen)
	}
	fmt.Fprintf(bw, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.Generation, f.Population, f.Density(), f.Status())
	fmt.Fprintf(bw, "Performance: %s\n", r.stats)

	for row := range f.Grid.Rows() {
		for col := range f.Grid.Cols() {
			if alive, _ := f.Grid.Alive(row, col); alive {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to write frame")
	}
	return nil
}

// ReportError prints a recoverable error between frames
func (r *PlainRenderer) ReportError(err error) {
	fmt.Fprintln(r.w, "Error:", err)
}
