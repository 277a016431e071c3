// Package ui holds what every front end shares: the input vocabulary, the
// frame handed to renderers, the controller that turns input into engine
// calls, and the frame-paced driver loop.
package ui

import (
	"fmt"

	"github.com/sheikhrachel/go-life/model"
)

// EventKind identifies a user action
type EventKind int

const (
	// EventTogglePause pauses or resumes automatic stepping
	EventTogglePause EventKind = iota + 1
	// EventStep advances exactly one generation
	EventStep
	// EventToggleCell flips the cell at Event.Row, Event.Col
	EventToggleCell
	// EventQuit ends the session
	EventQuit
)

// Event is one input action delivered by a front end
type Event struct {
	Kind     EventKind
	Row, Col int
}

// Frame is everything a renderer needs to draw one generation. Grid is a
// detached copy and may be kept.
type Frame struct {
	Grid       *model.Grid
	Generation int
	Population int
	Stable     bool
	Paused     bool
	Period     int
}

// Status summarises the frame in a word or two for status lines
func (f Frame) Status() string {
	switch {
	case f.Population == 0:
		return "Extinct"
	case f.Stable:
		return "Stable"
	case f.Period > 1:
		return fmt.Sprintf("Oscillating (period %d)", f.Period)
	case f.Paused:
		return "Paused"
	default:
		return "Active"
	}
}

// Density returns the share of living cells as a percentage
func (f Frame) Density() float64 {
	total := f.Grid.Rows() * f.Grid.Cols()
	if total == 0 {
		return 0
	}
	return float64(f.Population) / float64(total) * 100
}

// Renderer draws one frame
type Renderer interface {
	Render(f Frame) error
}

// InputSource delivers user input. The channel is drained once per frame.
type InputSource interface {
	Events() <-chan Event
}

// ErrorReporter is implemented by front ends that can show recoverable errors,
// such as a click outside the grid, without ending the session.
type ErrorReporter interface {
	ReportError(err error)
}
