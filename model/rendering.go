package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Renderer displays a grid after each generation
type Renderer interface {
	Show(generation int, g *Grid) error
	Close() error
}

// TextRenderer prints each generation as rows of AliveGlyph and DeadGlyph
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Show writes a generation header followed by the grid and a blank line
func (r *TextRenderer) Show(generation int, g *Grid) error {
	rows, cols := g.Dimensions()
	bw := bufio.NewWriter(r.w)

	fmt.Fprintf(bw, "Generation %d:\n", generation)
	for row := range rows {
		for col := range cols {
			alive, err := g.IsAlive(row, col)
			if err != nil {
				return err
			}
			if alive {
				bw.WriteRune(AliveGlyph)
			} else {
				bw.WriteRune(DeadGlyph)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "[TextRenderer.Show] failed to write generation %d", generation)
	}
	return nil
}

func (r *TextRenderer) Close() error { return nil }

// NopRenderer discards every generation
type NopRenderer struct{}

func (NopRenderer) Show(int, *Grid) error { return nil }
func (NopRenderer) Close() error          { return nil }
