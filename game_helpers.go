package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/ui/console"
	"github.com/sheikhrachel/go-life/ui/gui"
	"github.com/sheikhrachel/go-life/utils"
)

// newSession builds the engine from a saved grid or from the configuration.
// A grid that fails to load rejects the session rather than starting empty.
func newSession(config utils.Config) (*model.Life, error) {
	switch config.Frontend {
	case utils.FrontendPlain, utils.FrontendConsole, utils.FrontendGUI:
	default:
		return nil, errors.Wrapf(model.ErrConfig, "[newSession] unknown frontend %q", config.Frontend)
	}

	if config.LoadPath != "" {
		grid, err := model.LoadFile(config.LoadPath)
		if err != nil {
			return nil, err
		}
		return model.NewLifeFromGrid(grid, config)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if config.Randomize {
		fmt.Printf("Random seed: %d\n", seed)
	}
	return model.NewLife(config, model.NewRNG(seed))
}

// runFrontend drives the session with the configured front end until it ends
func runFrontend(ctx context.Context, life *model.Life, config utils.Config) error {
	switch config.Frontend {
	case utils.FrontendGUI:
		return gui.Run(life, config.CellSize, config.FrameRate)
	case utils.FrontendConsole:
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "[runFrontend] failed to open terminal")
		}
		con, err := console.New(screen)
		if err != nil {
			return err
		}
		defer con.Close()
		return ui.Loop(ctx, life, con, con, config.FrameRate)
	default:
		return ui.Loop(ctx, life, ui.NewPlainRenderer(os.Stdout, true), nil, config.FrameRate)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, life *model.Life) {
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		life.Rows(), life.Cols(), life.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// saveSession writes the final grid when a save path is configured
func saveSession(life *model.Life, path string) error {
	if path == "" {
		return nil
	}
	if err := model.SaveFile(path, life.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("💾 Saved generation %d to %s\n", life.Generation(), path)
	return nil
}

// displayFinalStats summarises how the session ended
func displayFinalStats(life *model.Life) {
	switch {
	case life.IsLimitReached():
		fmt.Printf("🏁 Reached maximum generations limit (%d)\n", life.Config().MaxGenerations)
	case life.IsStable():
		fmt.Printf("🧊 Stable at generation %d\n", life.Generation())
	}
	fmt.Printf("Final stats: %d generations | Living: %d | Bounding box: %d cells\n",
		life.Generation(), life.Population(), life.BoundingBoxSize())
}
