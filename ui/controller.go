package ui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Controller applies input to a Life session and decides when it advances.
// It is not safe for concurrent use; a front end drives it from its own loop.
type Controller struct {
	life     *model.Life
	paused   bool
	stepOnce bool
	quit     bool
}

// NewController wraps life in a running (unpaused) controller
func NewController(life *model.Life) *Controller {
	return &Controller{life: life}
}

// Life returns the controlled session
func (c *Controller) Life() *model.Life {
	return c.life
}

// Paused reports whether automatic stepping is suspended
func (c *Controller) Paused() bool {
	return c.paused
}

// Handle applies one input event. A toggle outside the grid returns an error
// wrapping model.ErrIndex and leaves the session untouched.
func (c *Controller) Handle(ev Event) error {
	switch ev.Kind {
	case EventTogglePause:
		c.paused = !c.paused
	case EventStep:
		c.stepOnce = true
	case EventToggleCell:
		return c.life.ToggleCell(ev.Row, ev.Col)
	case EventQuit:
		c.quit = true
	default:
		return errors.Errorf("[Handle] unknown event kind %d", ev.Kind)
	}
	return nil
}

// Done reports whether the session should end: the user quit or the
// generation limit has been reached.
func (c *Controller) Done() bool {
	return c.quit || c.life.IsLimitReached()
}

// Tick advances the session at most once. A requested single step always
// runs; otherwise the session advances only while unpaused and still changing.
// It reports whether a transition happened.
func (c *Controller) Tick() bool {
	if c.Done() {
		return false
	}
	if c.stepOnce {
		c.stepOnce = false
		c.life.Advance()
		return true
	}
	if c.paused || c.life.IsStable() {
		return false
	}
	c.life.Advance()
	return true
}

// Frame captures the current state for rendering
func (c *Controller) Frame() Frame {
	grid := c.life.Snapshot()
	return Frame{
		Grid:       grid,
		Generation: c.life.Generation(),
		Population: grid.CountLivingCells(),
		Stable:     c.life.IsStable(),
		Paused:     c.paused,
		Period:     c.life.Period(),
	}
}
