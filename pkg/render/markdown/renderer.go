// Package markdown implements MarkdownRenderer, a CardVisitor that lowers
// a card subtree into CommonMark-plus-GFM text (spec.md §4.5).
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkwell-run/cardtree/pkg/node"
	"github.com/inkwell-run/cardtree/pkg/walk"
)

type footnoteEntry struct {
	label string
	body  string
}

// Renderer accumulates markdown text while walking a card subtree. The
// zero value is ready to use; pass it to a *walk.CardWalker's WalkCard or
// WalkFrom, then call String for the result.
type Renderer struct {
	walk.BaseVisitor

	buffer strings.Builder

	prefixStack []string

	tableAlignments []node.TextAlignment
	headerRows      [][]string
	bodyRows        [][]string
	tableRowCells   []string
	inTableCell     bool
	inTableHead     bool

	inListItem     bool
	listItemBuffer strings.Builder
	pendingCheck   *bool

	footnoteBuffer *strings.Builder
	footnoteLabel  string
	footnotes      []footnoteEntry

	captureStack []*strings.Builder
}

// New returns a ready-to-use Renderer.
func New() *Renderer {
	return &Renderer{}
}

// String returns the accumulated markdown, including any deferred
// footnote-definition bodies appended at the end of the document. Call
// this only after the walk that produced it has fully completed — footnote
// bodies are flushed lazily, not on a leave callback (spec.md §4.4 gives
// FootnoteDefinition no leave_* method).
func (r *Renderer) String() string {
	r.flushFootnote()
	out := r.buffer.String()
	if len(r.footnotes) == 0 {
		return out
	}
	var b strings.Builder
	b.WriteString(out)
	for _, f := range r.footnotes {
		fmt.Fprintf(&b, "[^%s]: %s\n\n", f.label, f.body)
	}
	return b.String()
}

func (r *Renderer) currentPrefix() string {
	if n := len(r.prefixStack); n > 0 {
		return r.prefixStack[n-1]
	}
	return ""
}

func (r *Renderer) pushPrefix(extra string) {
	r.prefixStack = append(r.prefixStack, r.currentPrefix()+extra)
}

func (r *Renderer) popPrefix() {
	if n := len(r.prefixStack); n > 0 {
		r.prefixStack = r.prefixStack[:n-1]
	}
}

func (r *Renderer) flushFootnote() {
	if r.footnoteBuffer == nil {
		return
	}
	r.footnotes = append(r.footnotes, footnoteEntry{label: r.footnoteLabel, body: r.footnoteBuffer.String()})
	r.footnoteBuffer = nil
	r.footnoteLabel = ""
}

// emit routes text to the innermost active destination: an image-alt
// capture, else the active table cell, else the active list item, else
// the active footnote body, else the top-level buffer (spec.md §4.5's
// routing rule, extended with a capture stack for image-alt collection).
func (r *Renderer) emit(s string) {
	if n := len(r.captureStack); n > 0 {
		r.captureStack[n-1].WriteString(s)
		return
	}
	switch {
	case r.inTableCell:
		idx := len(r.tableRowCells) - 1
		r.tableRowCells[idx] += s
	case r.inListItem:
		r.listItemBuffer.WriteString(s)
	case r.footnoteBuffer != nil:
		r.footnoteBuffer.WriteString(s)
	default:
		r.buffer.WriteString(s)
	}
}

func wrapStyle(content string, style node.InlineStyle, link *node.LinkData) string {
	s := content
	if style.Has(node.InlineStyleMath) {
		s = "$" + s + "$"
	}
	if style.Has(node.InlineStyleCode) {
		s = "`" + s + "`"
	}
	if style.Has(node.InlineStyleSubscript) {
		s = "~" + s + "~"
	}
	if style.Has(node.InlineStyleSuperscript) {
		s = "^" + s + "^"
	}
	if style.Has(node.InlineStyleStrikethrough) {
		s = "~~" + s + "~~"
	}
	if style.Has(node.InlineStyleItalic) {
		s = "*" + s + "*"
	}
	if style.Has(node.InlineStyleBold) {
		s = "**" + s + "**"
	}
	if style.Has(node.InlineStyleQuote) {
		s = strconv.Quote(s)
	}
	if link != nil {
		if link.HasTitle {
			s = fmt.Sprintf("[%s](%s %q)", s, link.Href, link.Title)
		} else {
			s = fmt.Sprintf("[%s](%s)", s, link.Href)
		}
	}
	return s
}

func (r *Renderer) VisitText(cx *walk.VisitContext, data node.TextData) {
	if cx.InCodeBlock() {
		prefix := r.currentPrefix()
		lines := strings.Split(data.Content, "\n")
		for i, line := range lines {
			if i > 0 {
				r.emit("\n")
			}
			r.emit(prefix + line)
		}
		return
	}
	style, link := cx.EffectiveStyle()
	r.emit(wrapStyle(data.Content, style, link))
}

func (r *Renderer) VisitHeading(_ *walk.VisitContext, data node.HeadingData) walk.ControlFlow {
	level := int(data.Level)
	if level > 6 {
		level = 6
	}
	if level < 1 {
		level = 1
	}
	r.emit(r.currentPrefix() + strings.Repeat("#", level) + " ")
	return walk.Continue
}

func (r *Renderer) LeaveHeading(*walk.VisitContext, node.HeadingData) {
	r.emit("\n\n")
}

func (r *Renderer) VisitParagraph(*walk.VisitContext) walk.ControlFlow {
	r.emit(r.currentPrefix())
	return walk.Continue
}

func (r *Renderer) LeaveParagraph(*walk.VisitContext) {
	r.emit("\n\n")
}

func (r *Renderer) VisitBlockQuote(*walk.VisitContext) walk.ControlFlow {
	r.pushPrefix("> ")
	return walk.Continue
}

func (r *Renderer) LeaveBlockQuote(*walk.VisitContext) {
	r.popPrefix()
}

func (r *Renderer) VisitCodeBlock(_ *walk.VisitContext, data node.CodeBlockData) walk.ControlFlow {
	lang := ""
	if data.HasLang {
		lang = data.Language
	}
	r.emit(r.currentPrefix() + "```" + lang + "\n")
	return walk.Continue
}

func (r *Renderer) LeaveCodeBlock(*walk.VisitContext, node.CodeBlockData) {
	r.emit("\n" + r.currentPrefix() + "```\n\n")
}

func (r *Renderer) VisitList(*walk.VisitContext, node.ListMarkerData) walk.ControlFlow {
	return walk.Continue
}

func (r *Renderer) LeaveList(*walk.VisitContext, node.ListMarkerData) {
	r.emit("\n")
}

func (r *Renderer) VisitListItem(*walk.VisitContext) walk.ControlFlow {
	r.inListItem = true
	r.listItemBuffer.Reset()
	r.pendingCheck = nil
	return walk.Continue
}

func (r *Renderer) LeaveListItem(cx *walk.VisitContext) {
	r.inListItem = false
	l := cx.CurrentList()

	var bullet string
	switch {
	case l != nil && l.Ordered:
		bullet = strconv.FormatUint(l.CurrentNumber(), 10) + ". "
	default:
		bullet = "- "
	}
	if r.pendingCheck != nil {
		if *r.pendingCheck {
			bullet += "[x] "
		} else {
			bullet += "[ ] "
		}
	}
	r.emit(r.currentPrefix() + bullet + r.listItemBuffer.String() + "\n")
}

func (r *Renderer) VisitTaskListCheck(_ *walk.VisitContext, data node.TaskListCheckData) {
	checked := data.Checked
	r.pendingCheck = &checked
}

func (r *Renderer) VisitTable(_ *walk.VisitContext, data node.TableData) walk.ControlFlow {
	r.tableAlignments = data.Alignments
	r.headerRows = nil
	r.bodyRows = nil
	return walk.Continue
}

func (r *Renderer) LeaveTable(_ *walk.VisitContext, _ node.TableData) {
	r.emit(r.currentPrefix() + renderTable(r.headerRows, r.bodyRows, r.tableAlignments))
}

func renderTable(header, body [][]string, aligns []node.TextAlignment) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" " + c + " |")
		}
		b.WriteString("\n")
	}
	cols := len(aligns)
	if len(header) > 0 {
		writeRow(header[0])
		cols = len(header[0])
	}
	b.WriteString("|")
	for i := 0; i < cols; i++ {
		align := node.AlignNone
		if i < len(aligns) {
			align = aligns[i]
		}
		switch align {
		case node.AlignLeft:
			b.WriteString(" :--- |")
		case node.AlignRight:
			b.WriteString(" ---: |")
		case node.AlignCenter:
			b.WriteString(" :---: |")
		default:
			b.WriteString(" --- |")
		}
	}
	b.WriteString("\n")
	for _, row := range body {
		writeRow(row)
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) VisitTableHead(*walk.VisitContext) walk.ControlFlow {
	r.inTableHead = true
	return walk.Continue
}

func (r *Renderer) LeaveTableHead(*walk.VisitContext) {
	r.inTableHead = false
}

func (r *Renderer) VisitTableRow(*walk.VisitContext) walk.ControlFlow {
	r.tableRowCells = nil
	return walk.Continue
}

func (r *Renderer) LeaveTableRow(*walk.VisitContext) {
	if r.inTableHead {
		r.headerRows = append(r.headerRows, r.tableRowCells)
	} else {
		r.bodyRows = append(r.bodyRows, r.tableRowCells)
	}
}

func (r *Renderer) VisitTableCell(*walk.VisitContext) walk.ControlFlow {
	r.tableRowCells = append(r.tableRowCells, "")
	r.inTableCell = true
	return walk.Continue
}

func (r *Renderer) LeaveTableCell(*walk.VisitContext) {
	r.inTableCell = false
}

func (r *Renderer) VisitThematicBreak(*walk.VisitContext) {
	r.emit(r.currentPrefix() + "---\n\n")
}

func (r *Renderer) VisitImage(*walk.VisitContext, node.ImageData) walk.ControlFlow {
	r.captureStack = append(r.captureStack, &strings.Builder{})
	return walk.Continue
}

func (r *Renderer) LeaveImage(_ *walk.VisitContext, data node.ImageData) {
	n := len(r.captureStack)
	alt := r.captureStack[n-1].String()
	r.captureStack = r.captureStack[:n-1]
	if data.HasTitle {
		r.emit(fmt.Sprintf("![%s](%s %q)", alt, data.Src, data.Title))
		return
	}
	r.emit(fmt.Sprintf("![%s](%s)", alt, data.Src))
}

func (r *Renderer) VisitFootnoteDefinition(_ *walk.VisitContext, data node.FootnoteDefinitionData) {
	r.flushFootnote()
	r.footnoteBuffer = &strings.Builder{}
	r.footnoteLabel = data.Label
}

func (r *Renderer) VisitMathDisplay(*walk.VisitContext) {
	r.emit(r.currentPrefix() + "$$\n")
}

func (r *Renderer) VisitHTMLBlock(_ *walk.VisitContext, data node.HTMLData) walk.ControlFlow {
	r.emit(r.currentPrefix() + data.Raw + "\n\n")
	return walk.Continue
}

func (r *Renderer) LeaveHTMLBlock(*walk.VisitContext, node.HTMLData) {}

func (r *Renderer) VisitHardBreak(*walk.VisitContext) {
	r.emit("  \n")
}

func (r *Renderer) VisitSoftBreak(*walk.VisitContext) {
	r.emit("\n")
}

func (r *Renderer) VisitFootnoteRef(_ *walk.VisitContext, data node.FootnoteRefData) {
	r.emit("[^" + data.Label + "]")
}

func (r *Renderer) VisitHTMLInline(_ *walk.VisitContext, data node.HTMLData) {
	r.emit(data.Raw)
}
