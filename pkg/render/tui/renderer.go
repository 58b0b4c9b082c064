package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-run/cardtree/pkg/node"
	"github.com/inkwell-run/cardtree/pkg/walk"
)

// StyledSpan is one run of text sharing a single computed Style, the unit
// Renderer accumulates inline content into before wrapping it into Area.
type StyledSpan struct {
	Text  string
	Style lipgloss.Style
}

// Renderer paints a card subtree into a fixed-width *Buffer, consuming
// vertical space from Area as it goes (spec.md §4.6).
type Renderer struct {
	walk.BaseVisitor

	Area Rect
	buf  *Buffer
	cfg  Config

	styleStack  []lipgloss.Style
	spans       []StyledSpan
	inListItem  bool
	pendingText string // bullet/number prefix queued for the next flush
}

// New returns a Renderer that paints into buf starting at area.
func New(buf *Buffer, area Rect, cfg Config) *Renderer {
	return &Renderer{buf: buf, Area: area, cfg: cfg}
}

func bitsFromStyle(style node.InlineStyle) nodeBits {
	return nodeBits{
		bold:   style.Has(node.InlineStyleBold),
		italic: style.Has(node.InlineStyleItalic),
		code:   style.Has(node.InlineStyleCode),
		strike: style.Has(node.InlineStyleStrikethrough),
		link:   style.Has(node.InlineStyleLink),
	}
}

func (r *Renderer) topStyle() lipgloss.Style {
	if n := len(r.styleStack); n > 0 {
		return r.styleStack[n-1]
	}
	return lipgloss.NewStyle()
}

func (r *Renderer) pushStyle(s lipgloss.Style) { r.styleStack = append(r.styleStack, s) }

func (r *Renderer) popStyle() {
	if n := len(r.styleStack); n > 0 {
		r.styleStack = r.styleStack[:n-1]
	}
}

func (r *Renderer) full() bool { return r.Area.Height <= 0 }

// flushSpans wraps the accumulated spans as a paragraph into Area, writes
// it into buf, then advances Area.Y/shrinks Area.Height by the number of
// rows consumed (spec.md §4.6's "Block-level leaves flush spans").
func (r *Renderer) flushSpans() {
	defer func() { r.spans = nil }()
	if r.full() || len(r.spans) == 0 {
		return
	}
	lines := wrapSpans(r.spans, r.Area.Width)
	for _, line := range lines {
		if r.Area.Height <= 0 {
			return
		}
		x := r.Area.X
		for _, cell := range line {
			r.buf.Set(x, r.Area.Y, Cell{Glyph: cell.glyph, Style: cell.style})
			x++
		}
		r.Area.Y++
		r.Area.Height--
	}
}

type styledRune struct {
	glyph rune
	style lipgloss.Style
}

// wrapSpans greedily word-wraps a run of styled spans to width, returning
// one []styledRune per output row.
func wrapSpans(spans []StyledSpan, width int) [][]styledRune {
	if width <= 0 {
		width = 1
	}
	type word struct {
		runes []styledRune
	}
	var words []word
	var cur word
	flushWord := func() {
		if len(cur.runes) > 0 {
			words = append(words, cur)
			cur = word{}
		}
	}
	for _, span := range spans {
		for _, ch := range span.Text {
			if ch == ' ' {
				cur.runes = append(cur.runes, styledRune{glyph: ' ', style: span.Style})
				flushWord()
				continue
			}
			cur.runes = append(cur.runes, styledRune{glyph: ch, style: span.Style})
		}
	}
	flushWord()

	var lines [][]styledRune
	var line []styledRune
	lineLen := 0
	for _, w := range words {
		wl := len(w.runes)
		if lineLen > 0 && lineLen+wl > width {
			lines = append(lines, trimTrailingSpace(line))
			line = nil
			lineLen = 0
		}
		line = append(line, w.runes...)
		lineLen += wl
	}
	if len(line) > 0 {
		lines = append(lines, trimTrailingSpace(line))
	}
	return lines
}

func trimTrailingSpace(line []styledRune) []styledRune {
	n := len(line)
	for n > 0 && line[n-1].glyph == ' ' {
		n--
	}
	return line[:n]
}

func (r *Renderer) addSpan(text string, style lipgloss.Style) {
	r.spans = append(r.spans, StyledSpan{Text: text, Style: style})
}

func (r *Renderer) VisitText(cx *walk.VisitContext, data node.TextData) {
	if r.full() {
		return
	}
	style, _ := cx.EffectiveStyle()
	computed := r.topStyle().Inherit(r.cfg.styleFor(bitsFromStyle(style)))
	if cx.InCodeBlock() {
		computed = computed.Background(r.cfg.CodeBackground)
		for _, line := range strings.Split(data.Content, "\n") {
			r.addSpan(line, computed)
			r.flushSpans()
		}
		return
	}
	r.addSpan(data.Content, computed)
}

func (r *Renderer) VisitHeading(_ *walk.VisitContext, data node.HeadingData) walk.ControlFlow {
	if data.Level == 1 {
		for i := 0; i < r.cfg.H1Gap && r.Area.Height > 0; i++ {
			r.Area.Y++
			r.Area.Height--
		}
	}
	r.pushStyle(r.cfg.HeadingStyle)
	return walk.Continue
}

func (r *Renderer) LeaveHeading(_ *walk.VisitContext, data node.HeadingData) {
	if data.Level == 1 {
		r.centerPending()
	}
	r.flushSpans()
	r.popStyle()
}

// centerPending pads the accumulated spans' leading edge so a level-1
// heading renders centered within Area.Width.
func (r *Renderer) centerPending() {
	total := 0
	for _, s := range r.spans {
		total += len([]rune(s.Text))
	}
	pad := (r.Area.Width - total) / 2
	if pad > 0 {
		r.spans = append([]StyledSpan{{Text: strings.Repeat(" ", pad)}}, r.spans...)
	}
}

func (r *Renderer) VisitParagraph(*walk.VisitContext) walk.ControlFlow { return walk.Continue }
func (r *Renderer) LeaveParagraph(*walk.VisitContext)                  { r.flushSpans() }

func (r *Renderer) VisitBlockQuote(*walk.VisitContext) walk.ControlFlow {
	if !r.full() {
		r.buf.Set(r.Area.X, r.Area.Y, Cell{Glyph: r.cfg.QuoteBarGlyph, Style: r.topStyle()})
	}
	r.Area.X += r.cfg.QuoteIndent
	r.Area.Width -= r.cfg.QuoteIndent
	return walk.Continue
}

func (r *Renderer) LeaveBlockQuote(*walk.VisitContext) {
	r.Area.X -= r.cfg.QuoteIndent
	r.Area.Width += r.cfg.QuoteIndent
}

func (r *Renderer) VisitCodeBlock(*walk.VisitContext, node.CodeBlockData) walk.ControlFlow {
	r.pushStyle(lipgloss.NewStyle().Background(r.cfg.CodeBackground))
	return walk.Continue
}

func (r *Renderer) LeaveCodeBlock(*walk.VisitContext, node.CodeBlockData) {
	r.flushSpans()
	r.popStyle()
}

func (r *Renderer) VisitList(*walk.VisitContext, node.ListMarkerData) walk.ControlFlow {
	return walk.Continue
}
func (r *Renderer) LeaveList(*walk.VisitContext, node.ListMarkerData) {}

func (r *Renderer) VisitListItem(cx *walk.VisitContext) walk.ControlFlow {
	r.inListItem = true
	l := cx.CurrentList()
	var prefix string
	switch {
	case l != nil && l.Ordered:
		prefix = strconv.FormatUint(l.CurrentNumber(), 10) + ". "
	default:
		prefix = string(r.cfg.BulletGlyph) + " "
	}
	r.addSpan(prefix, r.topStyle())
	return walk.Continue
}

func (r *Renderer) LeaveListItem(*walk.VisitContext) {
	r.inListItem = false
	r.flushSpans()
}

func (r *Renderer) VisitThematicBreak(*walk.VisitContext) {
	if r.full() {
		return
	}
	for x := 0; x < r.Area.Width; x++ {
		r.buf.Set(r.Area.X+x, r.Area.Y, Cell{Glyph: r.cfg.RuleGlyph, Style: r.topStyle()})
	}
	r.Area.Y++
	r.Area.Height--
}

func (r *Renderer) VisitImage(*walk.VisitContext, node.ImageData) walk.ControlFlow {
	return walk.Continue
}

func (r *Renderer) LeaveImage(_ *walk.VisitContext, data node.ImageData) {
	r.addSpan("["+data.Src+"]", r.cfg.styleFor(nodeBits{link: true}))
	r.flushSpans()
}

func (r *Renderer) VisitFootnoteDefinition(*walk.VisitContext, node.FootnoteDefinitionData) {}

// VisitMathDisplay does not push a style: MathDisplay has no matching
// leave callback (spec.md §4.4), so anything pushed here would never be
// popped. The walker enters a code block around MathDisplay's children on
// our behalf (walker.go), and VisitText already applies the code
// background whenever cx.InCodeBlock() is true.
func (r *Renderer) VisitMathDisplay(*walk.VisitContext) {}

func (r *Renderer) VisitHTMLBlock(*walk.VisitContext, node.HTMLData) walk.ControlFlow {
	return walk.Break
}
func (r *Renderer) LeaveHTMLBlock(*walk.VisitContext, node.HTMLData) {}

func (r *Renderer) VisitButton(*walk.VisitContext) walk.ControlFlow { return walk.Continue }
func (r *Renderer) LeaveButton(*walk.VisitContext)                  { r.flushSpans() }

func (r *Renderer) VisitLink(*walk.VisitContext, node.LinkData) walk.ControlFlow {
	return walk.Continue
}
func (r *Renderer) LeaveLink(*walk.VisitContext, node.LinkData) {}

func (r *Renderer) VisitHardBreak(*walk.VisitContext) {
	r.flushSpans()
}

func (r *Renderer) VisitSoftBreak(*walk.VisitContext) {
	r.addSpan(" ", r.topStyle())
}

func (r *Renderer) VisitFootnoteRef(_ *walk.VisitContext, data node.FootnoteRefData) {
	r.addSpan("["+data.Label+"]", r.cfg.styleFor(nodeBits{link: true}))
}

func (r *Renderer) VisitHTMLInline(*walk.VisitContext, node.HTMLData) {}

func (r *Renderer) VisitTaskListCheck(_ *walk.VisitContext, data node.TaskListCheckData) {
	if data.Checked {
		r.addSpan("[x] ", r.topStyle())
	} else {
		r.addSpan("[ ] ", r.topStyle())
	}
}
