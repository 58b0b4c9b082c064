package node

// TextAlignment is a table column's alignment directive (spec.md §3.3).
type TextAlignment int

const (
	AlignNone TextAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// HeadingData carries a Heading's level, 1 through 6.
type HeadingData struct {
	Level uint8
}

// CodeBlockData carries a fenced code block's declared language, if any.
type CodeBlockData struct {
	Language string
	HasLang  bool
}

// ListMarkerData carries whether a list is ordered and its starting index.
type ListMarkerData struct {
	Ordered  bool
	Start    uint64
	HasStart bool
}

// TableData carries the per-column alignment directives of a Table.
type TableData struct {
	Alignments []TextAlignment
}

// ImageData carries an Image's source and optional title.
type ImageData struct {
	Src      string
	Title    string
	HasTitle bool
}

// LinkData carries a Link's target and optional title. It is also the
// "sidecar" value VisitContext.EffectiveStyle exposes for the innermost
// active Link container (spec.md §4.2).
type LinkData struct {
	Href     string
	Title    string
	HasTitle bool
}

// FootnoteDefinitionData carries a footnote definition's label.
type FootnoteDefinitionData struct {
	Label string
}

// FootnoteRefData carries a footnote reference's label.
type FootnoteRefData struct {
	Label string
}

// HTMLData carries a raw HTML block or inline fragment's source text.
type HTMLData struct {
	Raw string
}

// TaskListCheckData carries a task-list item's checked state.
type TaskListCheckData struct {
	Checked bool
}

// TextData carries a text leaf's literal content.
type TextData struct {
	Content string
}
