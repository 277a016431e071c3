package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRendererFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainRenderer(&buf, false)
	require.NoError(t, r.Render(NewController(blinker(t, 0)).Frame()))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "Gen: 1 | Living: 3 | Density: 33.3% | Status: Active", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Performance: "))
	assert.Equal(t, "      ", lines[2])
	assert.Equal(t, "██████", lines[3])
	assert.Equal(t, "      ", lines[4])
	assert.NotContains(t, buf.String(), clearScreen)
}

func TestPlainRendererClearsScreen(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainRenderer(&buf, true)
	require.NoError(t, Loop(context.Background(), blinker(t, 3), r, nil, 0))
	assert.Equal(t, 3, strings.Count(buf.String(), clearScreen))
	assert.Contains(t, buf.String(), "Gen: 3 |")
}

func TestPlainRendererReportError(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf, false).ReportError(errors.New("outside the grid"))
	assert.Equal(t, "Error: outside the grid\n", buf.String())
}
