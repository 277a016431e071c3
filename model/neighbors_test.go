package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLiveNeighborsHardBoundary(t *testing.T) {
	full := mustGrid(t,
		"111",
		"111",
		"111",
	)

	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"corner", 0, 0, 3},
		{"far corner", 2, 2, 3},
		{"edge", 0, 1, 5},
		{"side", 1, 2, 5},
		{"center", 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := full.CountLiveNeighbors(tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestCountLiveNeighborsExcludesSelf(t *testing.T) {
	g := mustGrid(t,
		"000",
		"010",
		"000",
	)
	n, err := g.CountLiveNeighbors(1, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = g.CountLiveNeighbors(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountLiveNeighborsDoesNotWrap(t *testing.T) {
	// With wrap-around the far corners would be neighbors of (0,0)
	g := mustGrid(t,
		"0001",
		"0000",
		"0000",
		"1001",
	)
	n, err := g.CountLiveNeighbors(0, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountLiveNeighborsRange(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 20; i++ {
		g, err := NewRandomGrid(1+rng.IntN(12), 1+rng.IntN(12), rng)
		require.NoError(t, err)
		for r := range g.Rows() {
			for c := range g.Cols() {
				n, err := g.CountLiveNeighbors(r, c)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, 8)
			}
		}
	}
}
