package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_NewBufferIsBlank(t *testing.T) {
	b := NewBuffer(3, 2)
	rows := collapseRows(b)
	assert.Equal(t, []string{"   ", "   "}, rows)
}

func collapseRows(b *Buffer) []string {
	out := make([]string, b.Height)
	for y := 0; y < b.Height; y++ {
		row := ""
		for x := 0; x < b.Width; x++ {
			row += string(b.cells[y][x].Glyph)
		}
		out[y] = row
	}
	return out
}

func TestBuffer_SetAndString(t *testing.T) {
	b := NewBuffer(3, 1)
	b.Set(0, 0, Cell{Glyph: 'h'})
	b.Set(1, 0, Cell{Glyph: 'i'})

	assert.Equal(t, "hi ", collapseRows(b)[0])
}

func TestBuffer_SetClipsOutOfBounds(t *testing.T) {
	b := NewBuffer(2, 2)
	assert.NotPanics(t, func() {
		b.Set(-1, 0, Cell{Glyph: 'x'})
		b.Set(0, -1, Cell{Glyph: 'x'})
		b.Set(5, 0, Cell{Glyph: 'x'})
		b.Set(0, 5, Cell{Glyph: 'x'})
	})
	assert.Equal(t, "  ", collapseRows(b)[0])
}

func TestBuffer_StringGroupsRunsByStyle(t *testing.T) {
	b := NewBuffer(4, 1)
	bold := lipgloss.NewStyle().Bold(true)
	b.Set(0, 0, Cell{Glyph: 'a', Style: bold})
	b.Set(1, 0, Cell{Glyph: 'b', Style: bold})
	b.Set(2, 0, Cell{Glyph: 'c'})
	b.Set(3, 0, Cell{Glyph: 'd'})

	// Styling is applied per contiguous run; plain text stays literal.
	out := b.String()
	assert.Contains(t, out, "cd")
}
