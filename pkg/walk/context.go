package walk

import (
	"github.com/inkwell-run/cardtree/pkg/entity"
	"github.com/inkwell-run/cardtree/pkg/node"
)

// ListCtx is the per-ListMarker state pushed onto VisitContext.listStack:
// whether the enclosing list is ordered, its declared start, and how many
// ListItems have been fully visited so far (spec.md §4.2).
type ListCtx struct {
	Ordered      bool
	Start        uint64
	CurrentIndex uint64
}

// CurrentNumber returns the 1-based (or Start-based) ordinal of the list
// item currently being visited: Start + CurrentIndex.
func (l ListCtx) CurrentNumber() uint64 {
	return l.Start + l.CurrentIndex
}

// VisitContext carries all traversal state a CardVisitor method can read.
// Only CardWalker mutates it; visitors only read it (spec.md §9, "Context
// mutation is walker-owned"). The zero value is a valid empty context.
type VisitContext struct {
	// Entity is updated by the walker before every visitor callback.
	Entity entity.ID

	styleStack  []node.InlineStyle
	linkStack   []node.LinkData
	inCodeBlock int // depth counter; >0 means true
	headingLevel uint8
	listStack   []*ListCtx
}

// PushStyle pushes one inline container's contribution onto the style
// stack. link is consulted only for node.InlineStyleLink; pass nil for
// every other container kind.
func (c *VisitContext) PushStyle(style node.InlineStyle, link *node.LinkData) {
	c.styleStack = append(c.styleStack, style)
	if link != nil {
		c.linkStack = append(c.linkStack, *link)
	}
}

// PopStyle undoes the most recent PushStyle. It is the caller's
// responsibility (CardWalker's, never a visitor's) to pop exactly what it
// pushed, including the link sidecar if one was pushed.
func (c *VisitContext) PopStyle(hadLink bool) {
	if n := len(c.styleStack); n > 0 {
		c.styleStack = c.styleStack[:n-1]
	}
	if hadLink {
		if n := len(c.linkStack); n > 0 {
			c.linkStack = c.linkStack[:n-1]
		}
	}
}

// EffectiveStyle returns the bitwise union of every entry on the style
// stack, plus the innermost active link, if any (spec.md §4.2).
func (c *VisitContext) EffectiveStyle() (node.InlineStyle, *node.LinkData) {
	var style node.InlineStyle
	for _, s := range c.styleStack {
		style = style.Union(s)
	}
	var link *node.LinkData
	if n := len(c.linkStack); n > 0 {
		l := c.linkStack[n-1]
		link = &l
	}
	return style, link
}

// StyleDepth returns how many inline containers are currently pushed.
// Exposed for visitors/tests that want to assert the stack shape without
// caring about exact bits.
func (c *VisitContext) StyleDepth() int {
	return len(c.styleStack)
}

// EnterCodeBlock increments the code-block nesting counter. CodeBlock and
// MathDisplay both push this so a MathDisplay nested oddly inside a
// CodeBlock (or vice versa) still leaves InCodeBlock true until both have
// been left.
func (c *VisitContext) EnterCodeBlock() {
	c.inCodeBlock++
}

// LeaveCodeBlock decrements the code-block nesting counter.
func (c *VisitContext) LeaveCodeBlock() {
	if c.inCodeBlock > 0 {
		c.inCodeBlock--
	}
}

// InCodeBlock reports whether the walk is currently inside a CodeBlock or
// MathDisplay (spec.md §4.2).
func (c *VisitContext) InCodeBlock() bool {
	return c.inCodeBlock > 0
}

// SetHeadingLevel records the level of the Heading currently being
// entered.
func (c *VisitContext) SetHeadingLevel(level uint8) {
	c.headingLevel = level
}

// ClearHeadingLevel resets the heading level to 0 (not inside a heading).
func (c *VisitContext) ClearHeadingLevel() {
	c.headingLevel = 0
}

// HeadingLevel returns the current heading level, or 0 if not inside a
// Heading.
func (c *VisitContext) HeadingLevel() uint8 {
	return c.headingLevel
}

// PushList pushes a new ListCtx for a ListMarker being entered.
func (c *VisitContext) PushList(ordered bool, start uint64) {
	c.listStack = append(c.listStack, &ListCtx{Ordered: ordered, Start: start})
}

// PopList pops the innermost ListCtx when its ListMarker is left.
func (c *VisitContext) PopList() {
	if n := len(c.listStack); n > 0 {
		c.listStack = c.listStack[:n-1]
	}
}

// CurrentList returns the innermost active ListCtx, or nil if no
// ListMarker is currently open.
func (c *VisitContext) CurrentList() *ListCtx {
	if n := len(c.listStack); n > 0 {
		return c.listStack[n-1]
	}
	return nil
}

// ListDepth reports how many ListMarkers are currently nested.
func (c *VisitContext) ListDepth() int {
	return len(c.listStack)
}
