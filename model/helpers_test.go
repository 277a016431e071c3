package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

// mustGrid builds a grid from '0'/'1' rows
func mustGrid(t testing.TB, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid([]byte(strings.Join(rows, "\n") + "\n"))
	require.NoError(t, err)
	return g
}

// render returns the canonical text of g without the trailing newline
func render(t testing.TB, g *Grid) string {
	t.Helper()
	text, err := g.MarshalText()
	require.NoError(t, err)
	return strings.TrimSuffix(string(text), "\n")
}

func testConfig(rows, cols int) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Randomize = false
	cfg.MaxGenerations = 0
	return cfg
}
