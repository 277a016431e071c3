//go:build ebiten

// Package gui is the graphical front end, built only with the ebiten tag.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/ui"
)

var (
	aliveColor = color.RGBA{R: 0x00, G: 0xc0, B: 0x00, A: 0xff}
	deadColor  = color.White
	lineColor  = color.Black
	textColor  = color.Black
	errorColor = color.RGBA{R: 0xc0, A: 0xff}
)

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	ctrl     *ui.Controller
	cellSize int
	frame    ui.Frame
	lastErr  string
}

// New constructs a Game drawing each cell as a cellSize square.
func New(life *model.Life, cellSize int) *Game {
	ctrl := ui.NewController(life)
	return &Game{ctrl: ctrl, cellSize: cellSize, frame: ctrl.Frame()}
}

// Run opens the window and blocks until the session ends. Each ebiten tick is
// one generation, so frameRate sets the tick rate.
func Run(life *model.Life, cellSize int, frameRate time.Duration) error {
	game := New(life, cellSize)

	tps := ebiten.DefaultTPS
	if frameRate > 0 {
		tps = max(1, int(time.Second/frameRate))
	}

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(life.Cols()*cellSize, life.Rows()*cellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and advances the session at most once.
func (g *Game) Update() error {
	for _, ev := range g.pendingEvents() {
		if err := g.ctrl.Handle(ev); err != nil {
			g.lastErr = err.Error()
		}
	}
	if g.ctrl.Done() {
		return ebiten.Termination
	}
	g.ctrl.Tick()
	g.frame = g.ctrl.Frame()
	return nil
}

func (g *Game) pendingEvents() []ui.Event {
	var events []ui.Event
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, ui.Event{Kind: ui.EventQuit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, ui.Event{Kind: ui.EventTogglePause})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		events = append(events, ui.Event{Kind: ui.EventStep})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, ui.Event{Kind: ui.EventToggleCell, Row: y / g.cellSize, Col: x / g.cellSize})
	}
	return events
}

// Draw renders the last captured frame with grid lines and a caption.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(deadColor)

	grid := g.frame.Grid
	size := float32(g.cellSize)
	for r := range grid.Rows() {
		for c := range grid.Cols() {
			if alive, _ := grid.Alive(r, c); alive {
				vector.DrawFilledRect(screen, float32(c)*size, float32(r)*size, size, size, aliveColor, false)
			}
		}
	}

	width, height := float32(grid.Cols())*size, float32(grid.Rows())*size
	for c := 0; c <= grid.Cols(); c++ {
		vector.StrokeLine(screen, float32(c)*size, 0, float32(c)*size, height, 1, lineColor, false)
	}
	for r := 0; r <= grid.Rows(); r++ {
		vector.StrokeLine(screen, 0, float32(r)*size, width, float32(r)*size, 1, lineColor, false)
	}

	caption := fmt.Sprintf("Generation: %d  %s", g.frame.Generation, g.frame.Status())
	text.Draw(screen, caption, basicfont.Face7x13, 4, 14, textColor)
	if g.lastErr != "" {
		text.Draw(screen, g.lastErr, basicfont.Face7x13, 4, 30, errorColor)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Grid.Cols() * g.cellSize, g.frame.Grid.Rows() * g.cellSize
}
