package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Heading", Heading.String())
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "Unknown", Kind(9999).String())
}

func TestKind_InlineStyle(t *testing.T) {
	tests := []struct {
		kind Kind
		want InlineStyle
	}{
		{Important, InlineStyleBold},
		{Emphasize, InlineStyleItalic},
		{Link, InlineStyleLink},
		{Paragraph, InlineStyleNone},
		{TextNode, InlineStyleNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.InlineStyle(), tt.kind.String())
	}
}

func TestKind_IsInlineContainer(t *testing.T) {
	assert.True(t, Important.IsInlineContainer())
	assert.True(t, Link.IsInlineContainer())
	assert.False(t, Paragraph.IsInlineContainer())
	assert.False(t, TextNode.IsInlineContainer())
}

func TestKind_IsLeaf(t *testing.T) {
	leaves := []Kind{ThematicBreak, HardBreak, SoftBreak, FootnoteRef, HTMLInline, TextNode, TaskListCheck}
	for _, k := range leaves {
		assert.True(t, k.IsLeaf(), k.String())
	}
	// FootnoteDefinition and MathDisplay recurse despite having no leave
	// callback, so they must not be reported as leaves.
	assert.False(t, FootnoteDefinition.IsLeaf())
	assert.False(t, MathDisplay.IsLeaf())
	assert.False(t, Paragraph.IsLeaf())
}

func TestKind_RequiresData(t *testing.T) {
	assert.True(t, Heading.RequiresData())
	assert.True(t, Link.RequiresData())
	assert.False(t, Paragraph.RequiresData())
	assert.False(t, BlockQuote.RequiresData())
}

func TestKind_HasDedicatedVisitor(t *testing.T) {
	assert.True(t, Heading.HasDedicatedVisitor())
	assert.True(t, MathDisplay.HasDedicatedVisitor())
	assert.False(t, Important.HasDedicatedVisitor())
	assert.False(t, Emphasize.HasDedicatedVisitor())
}

func TestInlineStyle_UnionAndHas(t *testing.T) {
	s := InlineStyleBold.Union(InlineStyleItalic)
	assert.True(t, s.Has(InlineStyleBold))
	assert.True(t, s.Has(InlineStyleItalic))
	assert.False(t, s.Has(InlineStyleCode))

	combined := s.Union(InlineStyleBold)
	assert.Equal(t, s, combined, "union with an already-set bit is idempotent")
}
