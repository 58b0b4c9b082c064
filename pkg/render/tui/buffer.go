// Package tui implements TuiRenderer, a CardVisitor that paints a card
// subtree into a fixed-width styled character grid (spec.md §4.6).
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a drawable rectangle within a Buffer. Renderer consumes it from
// the top as content is written: Y grows, Height shrinks.
type Rect struct {
	X, Y, Width, Height int
}

// Cell is a single styled terminal character.
type Cell struct {
	Glyph rune
	Style lipgloss.Style
}

// Buffer is a rectangular grid of styled cells, the TuiRenderer's external
// backing store (spec.md §4.6's "buffer: &mut Buffer").
type Buffer struct {
	Width, Height int
	cells         [][]Cell
}

// NewBuffer returns a width x height Buffer filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{Width: width, Height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Glyph: ' '}
		}
		b.cells[y] = row
	}
	return b
}

// Set writes a single cell, silently clipping out-of-bounds writes.
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || y >= b.Height || x >= b.Width {
		return
	}
	b.cells[y][x] = c
}

// String renders the buffer to a styled terminal string, one row per
// line, styling runs of identically-styled adjacent cells together.
func (b *Buffer) String() string {
	var out strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(renderRow(row))
	}
	return out.String()
}

func renderRow(row []Cell) string {
	var out strings.Builder
	i := 0
	for i < len(row) {
		j := i + 1
		for j < len(row) && row[j].Style.String() == row[i].Style.String() {
			j++
		}
		var run strings.Builder
		for k := i; k < j; k++ {
			run.WriteRune(row[k].Glyph)
		}
		out.WriteString(row[i].Style.Render(run.String()))
		i = j
	}
	return out.String()
}
