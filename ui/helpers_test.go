package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func newTestLife(t *testing.T, maxGenerations int, rows ...string) *model.Life {
	t.Helper()
	grid, err := model.ParseGrid([]byte(strings.Join(rows, "\n")))
	require.NoError(t, err)

	cfg := utils.DefaultConfig()
	cfg.MaxGenerations = maxGenerations
	life, err := model.NewLifeFromGrid(grid, cfg)
	require.NoError(t, err)
	return life
}

// blinker oscillates forever and never becomes stable
func blinker(t *testing.T, maxGenerations int) *model.Life {
	return newTestLife(t, maxGenerations, "000", "111", "000")
}

// growingBlock changes once and then is stable
func growingBlock(t *testing.T) *model.Life {
	return newTestLife(t, 0, "0000", "0110", "0100", "0000")
}

type recordingRenderer struct {
	frames  []Frame
	errs    []error
	onFrame func(f Frame)
	fail    error
}

func (r *recordingRenderer) Render(f Frame) error {
	r.frames = append(r.frames, f)
	if r.onFrame != nil {
		r.onFrame(f)
	}
	return r.fail
}

func (r *recordingRenderer) ReportError(err error) {
	r.errs = append(r.errs, err)
}

func (r *recordingRenderer) generations() []int {
	out := make([]int, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Generation
	}
	return out
}

type chanInput chan Event

func (c chanInput) Events() <-chan Event { return c }
