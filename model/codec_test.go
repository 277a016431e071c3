package model

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTextCanonicalFormat(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, true))
	require.NoError(t, g.Set(1, 2, true))

	text, err := g.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "010\n001\n", string(text))
}

func TestRoundTrip(t *testing.T) {
	rng := NewRNG(11)
	for i := 0; i < 30; i++ {
		g, err := NewRandomGrid(1+rng.IntN(30), 1+rng.IntN(30), rng)
		require.NoError(t, err)

		text, err := g.MarshalText()
		require.NoError(t, err)
		loaded, err := ParseGrid(text)
		require.NoError(t, err)

		assert.True(t, g.Equal(loaded))
		assert.Equal(t, g.Rows(), loaded.Rows())
		assert.Equal(t, g.Cols(), loaded.Cols())
	}
}

func TestParseGridDerivesDimensions(t *testing.T) {
	g, err := ParseGrid([]byte("0000\n0110\n0000\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 2, g.CountLivingCells())
}

func TestParseGridTolerantInput(t *testing.T) {
	tests := map[string]string{
		"no final newline": "01\n10",
		"crlf":             "01\r\n10\r\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := ParseGrid([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, "01\n10", render(t, g))
		})
	}
}

func TestParseGridRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"empty":              "",
		"only newline":       "\n",
		"ragged":             "010\n01\n",
		"longer second row":  "01\n010\n",
		"blank line":         "01\n\n01\n",
		"illegal character":  "012\n000\n",
		"delimiters":         "0,1\n1,0\n",
		"python list format": "[0, 1]\n",
		"trailing space":     "01 \n10 \n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := ParseGrid([]byte(input))
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
		})
	}
}

func TestEncodeMatchesMarshalText(t *testing.T) {
	g := mustGrid(t, "101", "010")
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g))
	text, err := g.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, text, buf.Bytes())
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	g := mustGrid(t, "0110", "1001", "0110")

	require.NoError(t, SaveFile(path, g))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0110\n1001\n0110\n", string(data))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, g.Equal(loaded))
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("01\n1\n"), 0o644))
	_, err = LoadFile(bad)
	assert.True(t, errors.Is(err, ErrFormat))
}
