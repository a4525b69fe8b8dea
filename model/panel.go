package model

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	panelWidth = 2 // terminal columns per cell, keeps panels roughly square

	quitHint = "q/Esc to quit"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault
)

// PanelRenderer draws every cell as a colored block on a tcell screen,
// black for alive and white for dead, with a status line underneath.
type PanelRenderer struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

// NewPanelRenderer takes over the terminal
func NewPanelRenderer() (*PanelRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewPanelRenderer] failed to create screen")
	}
	return NewPanelRendererWithScreen(screen)
}

// NewPanelRendererWithScreen initializes the given screen and draws on it
func NewPanelRendererWithScreen(screen tcell.Screen) (*PanelRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewPanelRenderer] failed to initialize screen")
	}
	screen.SetStyle(statusStyle)
	screen.Clear()
	return &PanelRenderer{screen: screen}, nil
}

// Show redraws the whole grid
func (r *PanelRenderer) Show(generation int, g *Grid) error {
	rows, cols := g.Dimensions()
	r.screen.Clear()

	for row := range rows {
		for col := range cols {
			alive, err := g.IsAlive(row, col)
			if err != nil {
				return err
			}
			style := deadStyle
			if alive {
				style = aliveStyle
			}
			for dx := range panelWidth {
				r.screen.SetContent(col*panelWidth+dx, row, ' ', nil, style)
			}
		}
	}

	r.drawText(0, rows, statusLine(generation, g))
	r.screen.Show()
	return nil
}

func statusLine(generation int, g *Grid) string {
	status := fmt.Sprintf("Generation: %d | Living: %d", generation, g.CountLivingCells())
	switch period := g.Period(); {
	case period == 1:
		status += " | Still life"
	case period > 1:
		status += fmt.Sprintf(" | Oscillating (period %d)", period)
	}
	return status + " | " + quitHint
}

func (r *PanelRenderer) drawText(x, y int, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
}

// WaitForQuit blocks until the user presses q, Esc or Ctrl+C, returning ErrQuit,
// or until the renderer is closed, returning nil.
func (r *PanelRenderer) WaitForQuit() error {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal, it is safe to call more than once
func (r *PanelRenderer) Close() error {
	r.closeOnce.Do(r.screen.Fini)
	return nil
}
