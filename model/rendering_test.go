package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRendererShow(t *testing.T) {
	g := newPatternGrid(t, 2, 3, "101#01")

	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	require.NoError(t, r.Show(4, g))
	require.NoError(t, r.Close())

	assert.Equal(t, "Generation 4:\n101\n010\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextRendererWriteError(t *testing.T) {
	g := newPatternGrid(t, 1, 1, "1")
	err := NewTextRenderer(failingWriter{}).Show(1, g)
	assert.ErrorContains(t, err, "disk full")
}

func TestNopRenderer(t *testing.T) {
	var r Renderer = NopRenderer{}
	g := newPatternGrid(t, 1, 1, "1")
	assert.NoError(t, r.Show(1, g))
	assert.NoError(t, r.Close())
}

func newSimulationPanel(t *testing.T) (*PanelRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewPanelRendererWithScreen(screen)
	require.NoError(t, err)
	screen.SetSize(40, 10)
	t.Cleanup(func() { _ = r.Close() })
	return r, screen
}

func TestPanelRendererShow(t *testing.T) {
	r, screen := newSimulationPanel(t)
	g := newPatternGrid(t, 2, 2, "10#01")
	require.NoError(t, r.Show(3, g))

	cells, width, _ := screen.GetContents()
	background := func(x, y int) tcell.Color {
		_, bg, _ := cells[y*width+x].Style.Decompose()
		return bg
	}

	assert.Equal(t, tcell.ColorBlack, background(0, 0))
	assert.Equal(t, tcell.ColorBlack, background(1, 0))
	assert.Equal(t, tcell.ColorWhite, background(2, 0))
	assert.Equal(t, tcell.ColorWhite, background(0, 1))
	assert.Equal(t, tcell.ColorBlack, background(3, 1))

	var status strings.Builder
	for x := range width {
		if runes := cells[2*width+x].Runes; len(runes) > 0 {
			status.WriteRune(runes[0])
		}
	}
	assert.True(t, strings.HasPrefix(status.String(), "Generation: 3 | Living: 2"), status.String())
}

func TestPanelRendererWaitForQuit(t *testing.T) {
	r, screen := newSimulationPanel(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.True(t, errors.Is(r.WaitForQuit(), ErrQuit))
}

func TestPanelRendererWaitForQuitReturnsOnClose(t *testing.T) {
	r, _ := newSimulationPanel(t)
	require.NoError(t, r.Close())
	assert.NoError(t, r.WaitForQuit())
	assert.NoError(t, r.Close())
}

func TestStatusLine(t *testing.T) {
	g := newPatternGrid(t, 4, 4, "0000#0110#0110")
	assert.Equal(t, "Generation: 1 | Living: 4 | "+quitHint, statusLine(1, g))

	g.NextGeneration()
	assert.Equal(t, "Generation: 2 | Living: 4 | Still life | "+quitHint, statusLine(2, g))
}
