package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

// strategies covers every stepping mode, with and without buffer recycling
func strategies() map[string]func(g *Grid) *Grid {
	pool := NewGridPool()
	return map[string]func(g *Grid) *Grid{
		"sequential":      func(g *Grid) *Grid { return g.NextGenerationSequential(nil) },
		"sequential pool": func(g *Grid) *Grid { return g.NextGenerationSequential(pool) },
		"parallel":        func(g *Grid) *Grid { return g.NextGenerationParallel(nil) },
		"parallel pool":   func(g *Grid) *Grid { return g.NextGenerationParallel(pool) },
		"bounded":         func(g *Grid) *Grid { return g.NextGenerationBounded(nil) },
		"bounded pool":    func(g *Grid) *Grid { return g.NextGenerationBounded(pool) },
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	for name, step := range strategies() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t,
				"0000",
				"0110",
				"0110",
				"0000",
			)
			next := step(g)
			assert.True(t, next.Equal(g))
			assert.False(t, IsChanging(g, next))
		})
	}
}

func TestBlinkerOscillates(t *testing.T) {
	for name, step := range strategies() {
		t.Run(name, func(t *testing.T) {
			start := mustGrid(t,
				"00000",
				"11100",
				"00000",
				"00000",
				"00000",
			)
			first := step(start)
			assert.Equal(t,
				"01000\n"+
					"01000\n"+
					"01000\n"+
					"00000\n"+
					"00000", render(t, first))

			second := step(first)
			assert.True(t, second.Equal(start))
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := mustGrid(t,
		"0100",
		"0010",
		"1110",
		"0000",
	)
	before := g.Clone()
	for name, step := range strategies() {
		step(g)
		assert.True(t, g.Equal(before), name)
	}
}

func TestStepGliderMovesDiagonally(t *testing.T) {
	g := mustGrid(t,
		"010000",
		"001000",
		"111000",
		"000000",
		"000000",
		"000000",
	)
	for range 4 {
		g = Step(g)
	}
	assert.Equal(t,
		"000000\n"+
			"001000\n"+
			"000100\n"+
			"011100\n"+
			"000000\n"+
			"000000", render(t, g))
}

func TestStepCornerBecomesBlock(t *testing.T) {
	g := mustGrid(t,
		"110",
		"100",
		"000",
	)
	next := Step(g)
	assert.Equal(t, "110\n110\n000", render(t, next))
	assert.True(t, Step(next).Equal(next))
}

func TestStepEmptyStaysEmpty(t *testing.T) {
	for name, step := range strategies() {
		g, err := NewGrid(7, 3)
		require.NoError(t, err)
		assert.Zero(t, step(g).CountLivingCells(), name)
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := NewRNG(2024)
	for i := 0; i < 25; i++ {
		g, err := NewRandomGrid(1+rng.IntN(40), 1+rng.IntN(40), rng)
		require.NoError(t, err)
		want := g.NextGenerationSequential(nil)
		for name, step := range strategies() {
			assert.True(t, want.Equal(step(g)), "grid %d strategy %s", i, name)
		}
	}
}

func TestNextGenerationHonoursConfig(t *testing.T) {
	g := mustGrid(t, "000", "111", "000")
	want := Step(g)

	for _, cfg := range []utils.Config{
		{},
		{UseParallel: true},
		{UseBoundedGrid: true},
		{UseParallel: true, UseBoundedGrid: true},
	} {
		assert.True(t, want.Equal(g.NextGeneration(cfg, nil)), "%+v", cfg)
	}
}

func BenchmarkNextGeneration(b *testing.B) {
	for _, size := range []int{64, 256} {
		g, err := NewRandomGrid(size, size, NewRNG(1))
		require.NoError(b, err)
		pool := NewGridPool()

		for name, step := range map[string]func() *Grid{
			"sequential": func() *Grid { return g.NextGenerationSequential(pool) },
			"parallel":   func() *Grid { return g.NextGenerationParallel(pool) },
			"bounded":    func() *Grid { return g.NextGenerationBounded(pool) },
		} {
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					pool.Put(step())
				}
			})
		}
	}
}
