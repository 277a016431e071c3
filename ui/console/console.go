// Package console is the interactive terminal front end. It draws the grid in
// a bordered box and turns keys and mouse clicks into ui events.
//
// Keys: space pauses, n or right arrow steps once, q or Esc quits. Clicking a
// cell toggles it.
package console

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	aliveRune = '*'
	deadRune  = ' '

	// eventBuffer is how many input events may queue between frames
	eventBuffer = 64
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cellStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle   = tcell.StyleDefault
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Console renders frames to a tcell screen and reports its input as ui events
type Console struct {
	screen tcell.Screen
	events chan ui.Event
	done   chan struct{}
	wg     sync.WaitGroup

	stats     *utils.Stats
	lastFrame time.Time

	mu      sync.Mutex
	lastErr string
}

// New initialises screen and starts reading its input. Call Close to restore
// the terminal.
func New(screen tcell.Screen) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[console.New] failed to initialise screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	c := &Console{
		screen:    screen,
		events:    make(chan ui.Event, eventBuffer),
		done:      make(chan struct{}),
		stats:     utils.NewStats(),
		lastFrame: time.Now(),
	}
	c.wg.Add(1)
	go c.pollEvents()
	return c, nil
}

// Events implements ui.InputSource
func (c *Console) Events() <-chan ui.Event {
	return c.events
}

// ReportError shows err on the status line until the next error replaces it
func (c *Console) ReportError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err.Error()
}

// Close stops reading input and restores the terminal
func (c *Console) Close() {
	close(c.done)
	c.screen.Fini()
	c.wg.Wait()
}

// Render draws the border, the cells and the status lines below the box
func (c *Console) Render(f ui.Frame) error {
	now := time.Now()
	c.stats.Update(f.Generation, f.Population, now.Sub(c.lastFrame))
	c.lastFrame = now

	rows, cols := f.Grid.Rows(), f.Grid.Cols()
	c.screen.Clear()
	c.drawBorder(rows, cols)

	for r := range rows {
		for col := range cols {
			ch := deadRune
			if alive, _ := f.Grid.Alive(r, col); alive {
				ch = aliveRune
			}
			c.screen.SetContent(col+1, r+1, ch, nil, cellStyle)
		}
	}

	status := fmt.Sprintf("Gen: %d | Living: %d | Status: %s", f.Generation, f.Population, f.Status())
	c.drawText(0, rows+2, status, textStyle)
	c.drawText(0, rows+3, c.stats.String(), textStyle)

	c.mu.Lock()
	if c.lastErr != "" {
		c.drawText(0, rows+4, c.lastErr, errorStyle)
	}
	c.mu.Unlock()

	c.screen.Show()
	return nil
}

func (c *Console) drawBorder(rows, cols int) {
	right, bottom := cols+1, rows+1
	for x := 1; x < right; x++ {
		c.screen.SetContent(x, 0, '-', nil, borderStyle)
		c.screen.SetContent(x, bottom, '-', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		c.screen.SetContent(0, y, '|', nil, borderStyle)
		c.screen.SetContent(right, y, '|', nil, borderStyle)
	}
	for _, corner := range [][2]int{{0, 0}, {right, 0}, {0, bottom}, {right, bottom}} {
		c.screen.SetContent(corner[0], corner[1], '+', nil, borderStyle)
	}
}

func (c *Console) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}

// pollEvents translates screen input until Close
func (c *Console) pollEvents() {
	defer c.wg.Done()

	var pressed bool
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if out, ok := keyEvent(ev); ok {
				c.send(out)
			}
		case *tcell.EventMouse:
			// Only the press edge toggles, not every motion report while held
			down := ev.Buttons()&tcell.Button1 != 0
			if down && !pressed {
				x, y := ev.Position()
				c.send(ui.Event{Kind: ui.EventToggleCell, Row: y - 1, Col: x - 1})
			}
			pressed = down
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

func (c *Console) send(ev ui.Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

func keyEvent(ev *tcell.EventKey) (ui.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ui.Event{Kind: ui.EventQuit}, true
	case tcell.KeyRight:
		return ui.Event{Kind: ui.EventStep}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ui.Event{Kind: ui.EventTogglePause}, true
		case 'n', 'N':
			return ui.Event{Kind: ui.EventStep}, true
		case 'q', 'Q':
			return ui.Event{Kind: ui.EventQuit}, true
		}
	}
	return ui.Event{}, false
}
