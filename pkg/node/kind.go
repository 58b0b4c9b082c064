// Package node defines the semantic vocabulary of the content tree: the
// Kind enumeration that discriminates every entity's role, the InlineStyle
// bitset inline containers contribute, and the per-kind data shapes carried
// alongside a Kind tag.
//
// Node never touches an entity store. It only describes what a node *is*;
// pkg/card and pkg/walk describe where it lives and how it is visited.
package node

// Kind discriminates the semantic role of an entity. A single entity
// carries at most one Kind.
type Kind int

const (
	// KindNone marks an entity with no Node tag. The walker treats these
	// as generic structural entities and dispatches only VisitEntity.
	KindNone Kind = iota

	// Block-level.
	Heading
	Paragraph
	BlockQuote
	CodeBlock
	ListMarker
	ListItem
	Table
	TableHead
	TableRow
	TableCell
	ThematicBreak
	Image
	FootnoteDefinition
	MathDisplay
	HTMLBlock
	DefinitionList
	DefinitionTitle
	DefinitionDetails
	MetadataBlock

	// Form.
	Button
	TaskListCheck

	// Text leaf.
	TextNode

	// Inline containers.
	Important
	Emphasize
	Code
	Quote
	Strikethrough
	Superscript
	Subscript
	MathInline
	Link

	// Inline leaves.
	HardBreak
	SoftBreak
	FootnoteRef
	HTMLInline
)

var kindNames = map[Kind]string{
	KindNone:           "None",
	Heading:            "Heading",
	Paragraph:          "Paragraph",
	BlockQuote:         "BlockQuote",
	CodeBlock:          "CodeBlock",
	ListMarker:         "ListMarker",
	ListItem:           "ListItem",
	Table:              "Table",
	TableHead:          "TableHead",
	TableRow:           "TableRow",
	TableCell:          "TableCell",
	ThematicBreak:      "ThematicBreak",
	Image:              "Image",
	FootnoteDefinition: "FootnoteDefinition",
	MathDisplay:        "MathDisplay",
	HTMLBlock:          "HtmlBlock",
	DefinitionList:     "DefinitionList",
	DefinitionTitle:    "DefinitionTitle",
	DefinitionDetails:  "DefinitionDetails",
	MetadataBlock:      "MetadataBlock",
	Button:             "Button",
	TaskListCheck:      "TaskListCheck",
	TextNode:           "TextNode",
	Important:          "Important",
	Emphasize:          "Emphasize",
	Code:               "Code",
	Quote:              "Quote",
	Strikethrough:      "Strikethrough",
	Superscript:        "Superscript",
	Subscript:          "Subscript",
	MathInline:         "MathInline",
	Link:               "Link",
	HardBreak:          "HardBreak",
	SoftBreak:          "SoftBreak",
	FootnoteRef:        "FootnoteRef",
	HTMLInline:         "HtmlInline",
}

// String returns the Kind's name, or "Unknown" for an out-of-range value.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// inlineContainerStyle maps each inline-container Kind to the style bit it
// contributes. Kinds absent from this map contribute InlineStyleNone.
var inlineContainerStyle = map[Kind]InlineStyle{
	Important:     InlineStyleBold,
	Emphasize:     InlineStyleItalic,
	Code:          InlineStyleCode,
	Quote:         InlineStyleQuote,
	Strikethrough: InlineStyleStrikethrough,
	Superscript:   InlineStyleSuperscript,
	Subscript:     InlineStyleSubscript,
	MathInline:    InlineStyleMath,
	Link:          InlineStyleLink,
}

// InlineStyle returns the style bit this Kind contributes when it wraps
// descendant text. Non-container kinds return InlineStyleNone.
func (k Kind) InlineStyle() InlineStyle {
	return inlineContainerStyle[k]
}

// IsInlineContainer reports whether k wraps descendant inline content and
// contributes a style modifier (spec.md §3.2's "Inline containers").
func (k Kind) IsInlineContainer() bool {
	_, ok := inlineContainerStyle[k]
	return ok
}

// IsInlineLeaf reports whether k is a leaf inline kind: no children, no
// leave callback, dispatched with a single Visit call.
func (k Kind) IsInlineLeaf() bool {
	switch k {
	case HardBreak, SoftBreak, FootnoteRef, HTMLInline:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether k never recurses into children at all (spec.md
// §4.3 step 8). FootnoteDefinition and MathDisplay are NOT leaves: they
// recurse into their body/source-text children but have no leave callback
// to anchor side-effect cleanup to, so the walker undoes their side
// effects immediately after recursion instead.
func (k Kind) IsLeaf() bool {
	switch k {
	case ThematicBreak, HardBreak, SoftBreak, FootnoteRef, HTMLInline,
		TextNode, TaskListCheck:
		return true
	default:
		return false
	}
}

// RequiresData reports whether k's dedicated visitor dispatch needs a
// Data attachment to fire. If the entity's Node tag is k but Data is
// absent, the walker falls through to VisitEntity (spec.md §3.4, §7).
func (k Kind) RequiresData() bool {
	switch k {
	case Heading, CodeBlock, ListMarker, Table, Image, FootnoteDefinition,
		FootnoteRef, HTMLBlock, HTMLInline, TaskListCheck, TextNode, Link:
		return true
	default:
		return false
	}
}

// HasDedicatedVisitor reports whether k has a visit_X/leave_X pair on
// CardVisitor (spec.md §4.4), as opposed to falling through to plain child
// recursion.
func (k Kind) HasDedicatedVisitor() bool {
	switch k {
	case Heading, Paragraph, BlockQuote, CodeBlock, ListMarker, ListItem,
		Table, TableHead, TableRow, TableCell, ThematicBreak, Image,
		FootnoteDefinition, MathDisplay, HTMLBlock, Button, TextNode, Link,
		HardBreak, SoftBreak, FootnoteRef, HTMLInline, TaskListCheck:
		return true
	default:
		return false
	}
}
