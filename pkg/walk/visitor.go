package walk

import "github.com/inkwell-run/cardtree/pkg/node"

// CardVisitor is the extension point for consuming a card walk. Every
// method has a default no-op implementation on BaseVisitor returning
// Continue; implementers embed BaseVisitor and override only what they
// need (spec.md §4.4, §9 "Visitor trait over double dispatch"). Go has no
// default trait methods, so embedding the zero-value struct is the
// idiomatic stand-in.
type CardVisitor interface {
	// VisitEntity is called for an entity carrying no Node tag.
	VisitEntity(cx *VisitContext) ControlFlow

	VisitHeading(cx *VisitContext, data node.HeadingData) ControlFlow
	LeaveHeading(cx *VisitContext, data node.HeadingData)

	VisitParagraph(cx *VisitContext) ControlFlow
	LeaveParagraph(cx *VisitContext)

	VisitBlockQuote(cx *VisitContext) ControlFlow
	LeaveBlockQuote(cx *VisitContext)

	VisitCodeBlock(cx *VisitContext, data node.CodeBlockData) ControlFlow
	LeaveCodeBlock(cx *VisitContext, data node.CodeBlockData)

	VisitList(cx *VisitContext, data node.ListMarkerData) ControlFlow
	LeaveList(cx *VisitContext, data node.ListMarkerData)

	VisitListItem(cx *VisitContext) ControlFlow
	LeaveListItem(cx *VisitContext)

	VisitTable(cx *VisitContext, data node.TableData) ControlFlow
	LeaveTable(cx *VisitContext, data node.TableData)

	VisitTableHead(cx *VisitContext) ControlFlow
	LeaveTableHead(cx *VisitContext)

	VisitTableRow(cx *VisitContext) ControlFlow
	LeaveTableRow(cx *VisitContext)

	VisitTableCell(cx *VisitContext) ControlFlow
	LeaveTableCell(cx *VisitContext)

	VisitThematicBreak(cx *VisitContext)

	VisitImage(cx *VisitContext, data node.ImageData) ControlFlow
	LeaveImage(cx *VisitContext, data node.ImageData)

	VisitFootnoteDefinition(cx *VisitContext, data node.FootnoteDefinitionData)

	VisitMathDisplay(cx *VisitContext)

	VisitHTMLBlock(cx *VisitContext, data node.HTMLData) ControlFlow
	LeaveHTMLBlock(cx *VisitContext, data node.HTMLData)

	VisitButton(cx *VisitContext) ControlFlow
	LeaveButton(cx *VisitContext)

	VisitText(cx *VisitContext, data node.TextData)

	VisitLink(cx *VisitContext, data node.LinkData) ControlFlow
	LeaveLink(cx *VisitContext, data node.LinkData)

	VisitHardBreak(cx *VisitContext)
	VisitSoftBreak(cx *VisitContext)
	VisitFootnoteRef(cx *VisitContext, data node.FootnoteRefData)
	VisitHTMLInline(cx *VisitContext, data node.HTMLData)
	VisitTaskListCheck(cx *VisitContext, data node.TaskListCheckData)
}

// BaseVisitor implements CardVisitor with every method a no-op returning
// Continue. Embed it by value in a concrete visitor struct and override
// only the methods that matter.
type BaseVisitor struct{}

var _ CardVisitor = BaseVisitor{}

func (BaseVisitor) VisitEntity(*VisitContext) ControlFlow { return Continue }

func (BaseVisitor) VisitHeading(*VisitContext, node.HeadingData) ControlFlow { return Continue }
func (BaseVisitor) LeaveHeading(*VisitContext, node.HeadingData)             {}

func (BaseVisitor) VisitParagraph(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveParagraph(*VisitContext)             {}

func (BaseVisitor) VisitBlockQuote(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveBlockQuote(*VisitContext)              {}

func (BaseVisitor) VisitCodeBlock(*VisitContext, node.CodeBlockData) ControlFlow { return Continue }
func (BaseVisitor) LeaveCodeBlock(*VisitContext, node.CodeBlockData)             {}

func (BaseVisitor) VisitList(*VisitContext, node.ListMarkerData) ControlFlow { return Continue }
func (BaseVisitor) LeaveList(*VisitContext, node.ListMarkerData)             {}

func (BaseVisitor) VisitListItem(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveListItem(*VisitContext)              {}

func (BaseVisitor) VisitTable(*VisitContext, node.TableData) ControlFlow { return Continue }
func (BaseVisitor) LeaveTable(*VisitContext, node.TableData)             {}

func (BaseVisitor) VisitTableHead(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveTableHead(*VisitContext)              {}

func (BaseVisitor) VisitTableRow(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveTableRow(*VisitContext)              {}

func (BaseVisitor) VisitTableCell(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveTableCell(*VisitContext)              {}

func (BaseVisitor) VisitThematicBreak(*VisitContext) {}

func (BaseVisitor) VisitImage(*VisitContext, node.ImageData) ControlFlow { return Continue }
func (BaseVisitor) LeaveImage(*VisitContext, node.ImageData)             {}

func (BaseVisitor) VisitFootnoteDefinition(*VisitContext, node.FootnoteDefinitionData) {}

func (BaseVisitor) VisitMathDisplay(*VisitContext) {}

func (BaseVisitor) VisitHTMLBlock(*VisitContext, node.HTMLData) ControlFlow { return Continue }
func (BaseVisitor) LeaveHTMLBlock(*VisitContext, node.HTMLData)             {}

func (BaseVisitor) VisitButton(*VisitContext) ControlFlow { return Continue }
func (BaseVisitor) LeaveButton(*VisitContext)              {}

func (BaseVisitor) VisitText(*VisitContext, node.TextData) {}

func (BaseVisitor) VisitLink(*VisitContext, node.LinkData) ControlFlow { return Continue }
func (BaseVisitor) LeaveLink(*VisitContext, node.LinkData)             {}

func (BaseVisitor) VisitHardBreak(*VisitContext)                        {}
func (BaseVisitor) VisitSoftBreak(*VisitContext)                        {}
func (BaseVisitor) VisitFootnoteRef(*VisitContext, node.FootnoteRefData) {}
func (BaseVisitor) VisitHTMLInline(*VisitContext, node.HTMLData)         {}
func (BaseVisitor) VisitTaskListCheck(*VisitContext, node.TaskListCheckData) {}
