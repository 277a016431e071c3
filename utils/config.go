package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Front ends selectable with Config.Frontend
const (
	FrontendPlain   = "plain"
	FrontendConsole = "console"
	FrontendGUI     = "gui"
)

// Config holds the configuration for a session
type Config struct {
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	Randomize      bool          `json:"randomize"`
	MaxGenerations int           `json:"max_generations"` // 0 means unlimited
	Seed           int64         `json:"seed"`            // 0 picks a time-based seed
	Pattern        string        `json:"pattern"`         // seed pattern for a non-random grid
	FrameRate      time.Duration `json:"frame_rate"`
	UseParallel    bool          `json:"use_parallel"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	UseBoundedGrid bool          `json:"use_bounded_grid"`
	Frontend       string        `json:"frontend"`
	CellSize       int           `json:"cell_size"` // pixels per cell in the GUI
	LoadPath       string        `json:"load_path"`
	SavePath       string        `json:"save_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           24,
		Cols:           48,
		Randomize:      true,
		MaxGenerations: 1000,
		FrameRate:      150 * time.Millisecond,
		UseParallel:    true,
		UseMemoryPool:  true,
		UseBoundedGrid: false,
		Frontend:       FrontendConsole,
		CellSize:       10,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so command-line
// values override whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.BoolVar(&c.Randomize, "randomize", c.Randomize, "start from a random grid")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop at this generation (0 = never)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern stamped on an empty grid")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute generations on all CPUs")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle generation buffers")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only compute the live-cell bounding box")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "front end: plain, console or gui")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell in the gui")
	fs.StringVar(&c.LoadPath, "load", c.LoadPath, "load the starting grid from this file")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "save the final grid to this file")
}
