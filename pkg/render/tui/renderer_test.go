package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-run/cardtree/pkg/entity"
	"github.com/inkwell-run/cardtree/pkg/node"
	"github.com/inkwell-run/cardtree/pkg/walk"
)

func paintPlain(t *testing.T, width, height int, root entity.Spec) *Buffer {
	t.Helper()
	store, id := entity.Build(root)
	buf := NewBuffer(width, height)
	cfg := DefaultConfig()
	cfg.HeadingStyle = lipgloss.NewStyle()
	r := New(buf, Rect{X: 0, Y: 0, Width: width, Height: height}, cfg)
	walk.New(store).WalkFrom(r, id)
	return buf
}

func row(t *testing.T, b *Buffer, y int) string {
	t.Helper()
	var s strings.Builder
	for x := 0; x < b.Width; x++ {
		s.WriteRune(b.cells[y][x].Glyph)
	}
	return strings.TrimRight(s.String(), " ")
}

func TestTuiRenderer_ParagraphPaintsTextAtOrigin(t *testing.T) {
	buf := paintPlain(t, 20, 3, entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{
		entity.Text("hello world"),
	}})
	assert.Equal(t, "hello world", row(t, buf, 0))
}

func TestTuiRenderer_WrapsLongParagraphAcrossRows(t *testing.T) {
	// Greedy word-wrap at width 5: "ab " alone fits; adding "cd " would
	// overflow so it wraps, after which "cd ef" fits exactly.
	buf := paintPlain(t, 5, 3, entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{
		entity.Text("ab cd ef"),
	}})
	assert.Equal(t, "ab", row(t, buf, 0))
	assert.Equal(t, "cd ef", row(t, buf, 1))
}

func TestTuiRenderer_ThematicBreakFillsWidth(t *testing.T) {
	buf := paintPlain(t, 5, 2, entity.Spec{Kind: node.ThematicBreak})
	cfg := DefaultConfig()
	assert.Equal(t, strings.Repeat(string(cfg.RuleGlyph), 5), row(t, buf, 0))
}

func TestTuiRenderer_BlockQuoteIndentsAndDrawsBar(t *testing.T) {
	buf := paintPlain(t, 20, 3, entity.Spec{Kind: node.BlockQuote, Children: []entity.Spec{
		{Kind: node.Paragraph, Children: []entity.Spec{entity.Text("quoted")}},
	}})
	cfg := DefaultConfig()
	assert.Equal(t, rune(cfg.QuoteBarGlyph), buf.cells[0][0].Glyph)
	assert.Contains(t, row(t, buf, 0), "quoted")
}

func TestTuiRenderer_OrderedListItemPrefixesWithNumber(t *testing.T) {
	buf := paintPlain(t, 20, 2, entity.Spec{
		Kind: node.ListMarker,
		Data: node.ListMarkerData{Ordered: true, Start: 1, HasStart: true},
		Children: []entity.Spec{
			{Kind: node.ListItem, Children: []entity.Spec{entity.Text("one")}},
		},
	})
	assert.Equal(t, "1. one", row(t, buf, 0))
}

func TestTuiRenderer_HeadingLevel1IsCentered(t *testing.T) {
	buf := paintPlain(t, 11, 3, entity.Spec{Kind: node.Heading, Data: node.HeadingData{Level: 1}, Children: []entity.Spec{
		entity.Text("hi"),
	}})
	// width 11, H1Gap=1 row of blank space above the heading, text "hi"
	// (len 2) centered in width 11 => 4 leading spaces, then "hi".
	require.GreaterOrEqual(t, buf.Height, 2)
	assert.Equal(t, "    hi", row(t, buf, 1))
}

func TestTuiRenderer_OverflowWritesNothingOnceAreaIsExhausted(t *testing.T) {
	store, id := entity.Build(entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{entity.Text("x")}})
	buf := NewBuffer(10, 1)
	r := New(buf, Rect{X: 0, Y: 0, Width: 10, Height: 0}, DefaultConfig())

	assert.NotPanics(t, func() {
		walk.New(store).WalkFrom(r, id)
	})
	assert.Equal(t, "", row(t, buf, 0), "a zero-height Area silently drops all writes")
}
