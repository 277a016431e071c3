package model

import (
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// NewRNG creates a deterministic random source for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ValidateConfig checks the session settings the engine depends on. Invalid
// values are rejected with ErrConfig, never adjusted.
func ValidateConfig(cfg utils.Config) error {
	switch {
	case cfg.Rows <= 0 || cfg.Cols <= 0:
		return errors.Wrapf(ErrConfig, "[ValidateConfig] dimensions must be positive, got %dx%d", cfg.Rows, cfg.Cols)
	case cfg.MaxGenerations < 0:
		return errors.Wrapf(ErrConfig, "[ValidateConfig] max_generations must not be negative, got %d", cfg.MaxGenerations)
	case cfg.FrameRate < 0:
		return errors.Wrapf(ErrConfig, "[ValidateConfig] frame_rate must not be negative, got %v", cfg.FrameRate)
	case cfg.CellSize <= 0:
		return errors.Wrapf(ErrConfig, "[ValidateConfig] cell_size must be positive, got %d", cfg.CellSize)
	}
	if cfg.Pattern != "" {
		if _, ok := LookupPattern(cfg.Pattern); !ok {
			return errors.Wrapf(ErrConfig, "[ValidateConfig] unknown pattern %q (known: %v)", cfg.Pattern, PatternNames())
		}
	}
	return nil
}

// Life is the handle a front end holds on one running simulation. It owns the
// current and previous generations and the generation counter. All methods are
// safe for concurrent use; edits and transitions never interleave.
type Life struct {
	mu sync.RWMutex

	config     utils.Config
	prev       *Grid
	curr       *Grid
	generation int
	pool       *GridPool
	history    History
}

// NewLife builds a session from cfg: a random grid drawn from rng when
// cfg.Randomize is set, otherwise an empty grid with cfg.Pattern stamped in
// the middle if one is named.
func NewLife(cfg utils.Config, rng *rand.Rand) (*Life, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	var (
		grid *Grid
		err  error
	)
	if cfg.Randomize {
		if rng == nil {
			rng = NewRNG(time.Now().UnixNano())
		}
		grid, err = NewRandomGrid(cfg.Rows, cfg.Cols, rng)
	} else {
		grid, err = NewGrid(cfg.Rows, cfg.Cols)
	}
	if err != nil {
		return nil, err
	}

	if !cfg.Randomize && cfg.Pattern != "" {
		p, _ := LookupPattern(cfg.Pattern)
		if err = grid.StampCentered(p); err != nil {
			return nil, errors.Wrapf(ErrConfig, "[NewLife] %v", err)
		}
	}

	return newLife(grid, cfg), nil
}

// NewLifeFromGrid starts a session from an existing grid, typically one read
// with LoadFile. The grid's dimensions replace cfg.Rows and cfg.Cols and the
// session keeps its own copy of the cells.
func NewLifeFromGrid(grid *Grid, cfg utils.Config) (*Life, error) {
	if grid == nil {
		return nil, errors.Wrap(ErrConfig, "[NewLifeFromGrid] nil grid")
	}
	cfg.Rows, cfg.Cols = grid.Rows(), grid.Cols()
	cfg.Randomize = false
	cfg.Pattern = ""
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return newLife(grid.Clone(), cfg), nil
}

func newLife(grid *Grid, cfg utils.Config) *Life {
	l := &Life{
		config: cfg,
		// Before the first step the previous generation is all dead
		prev:       newGrid(grid.Rows(), grid.Cols()),
		curr:       grid,
		generation: 1,
	}
	if cfg.UseMemoryPool {
		l.pool = NewGridPool()
	}
	l.history.Record(grid)
	return l
}

// Config returns the validated session configuration
func (l *Life) Config() utils.Config {
	return l.config
}

// Rows returns the number of grid rows
func (l *Life) Rows() int {
	return l.config.Rows
}

// Cols returns the number of grid columns
func (l *Life) Cols() int {
	return l.config.Cols
}

// Generation returns the current generation, starting at 1
func (l *Life) Generation() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.generation
}

// Snapshot returns a copy of the current grid that later steps do not affect
func (l *Life) Snapshot() *Grid {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.curr.Clone()
}

// Read calls fn with the current grid while holding a read lock. fn must not
// modify the grid or keep it after returning.
func (l *Life) Read(fn func(g *Grid)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.curr)
}

// Population returns the number of living cells in the current generation
func (l *Life) Population() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.curr.CountLivingCells()
}

// BoundingBoxSize returns the area enclosing every living cell
func (l *Life) BoundingBoxSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.curr.BoundingBoxSize()
}

// Period reports the oscillation period visible in recent generations, or 0
func (l *Life) Period() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.history.Period()
}

// IsStable reports whether the last transition left every cell unchanged
func (l *Life) IsStable() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return !IsChanging(l.prev, l.curr)
}

// IsLimitReached reports whether the configured generation cap has been hit
func (l *Life) IsLimitReached() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return IsGenerationLimitReached(l.generation, l.config.MaxGenerations)
}

// Advance performs exactly one transition regardless of stability or limits.
func (l *Life) Advance() {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.curr.NextGeneration(l.config, l.pool)

	// Rotate buffers: current becomes previous, the old previous is recycled
	old := l.prev
	l.prev, l.curr = l.curr, next
	l.pool.Put(old)

	l.generation++
	l.history.Record(l.curr)
}

// ToggleCell flips one cell of the current generation. The generation counter
// is unchanged.
func (l *Life) ToggleCell(row, col int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.curr.Toggle(row, col); err != nil {
		return errors.Wrap(err, "[ToggleCell]")
	}
	l.history.Reset()
	l.history.Record(l.curr)
	return nil
}

// Save writes the current generation in the canonical text format
func (l *Life) Save(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Encode(w, l.curr)
}
