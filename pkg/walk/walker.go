package walk

import (
	"time"

	"github.com/inkwell-run/cardtree/pkg/card"
	"github.com/inkwell-run/cardtree/pkg/entity"
	"github.com/inkwell-run/cardtree/pkg/node"
)

// Logger is the minimal logging surface CardWalker uses to report
// silently-recovered conditions (missing entities, missing data) at
// debug level. pkg/logging's Logger satisfies this without either
// package importing the other.
type Logger interface {
	Debug(msg string, args ...any)
}

// MetricsSink is the minimal observability surface CardWalker reports
// through. pkg/metrics' WalkMetrics satisfies this.
type MetricsSink interface {
	ObserveVisit(kind node.Kind)
	ObserveWalkDuration(d time.Duration)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

type nopMetrics struct{}

func (nopMetrics) ObserveVisit(node.Kind)          {}
func (nopMetrics) ObserveWalkDuration(time.Duration) {}

// Option configures a CardWalker.
type Option func(*CardWalker)

// WithLogger attaches a Logger the walker uses for debug-level visibility
// into conditions it recovers from silently (spec.md §7).
func WithLogger(l Logger) Option {
	return func(w *CardWalker) { w.log = l }
}

// WithMetrics attaches a MetricsSink the walker reports visit counts and
// wall-clock duration to.
func WithMetrics(m MetricsSink) Option {
	return func(w *CardWalker) { w.metrics = m }
}

// CardWalker performs a depth-first walk of a card subtree, translating
// each entity's Node kind into visit_*/leave_* calls on a CardVisitor
// while maintaining VisitContext invariants (spec.md §4.3).
type CardWalker struct {
	store   entity.Store
	query   *card.Query
	log     Logger
	metrics MetricsSink
}

// New returns a CardWalker over store.
func New(store entity.Store, opts ...Option) *CardWalker {
	w := &CardWalker{
		store:   store,
		query:   card.NewQuery(store),
		log:     nopLogger{},
		metrics: nopMetrics{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WalkCard resolves e's enclosing card root and walks it.
func (w *CardWalker) WalkCard(v CardVisitor, e entity.ID) {
	w.WalkFrom(v, w.query.CardRoot(e))
}

// WalkFrom walks starting at e without resolving its card root first —
// useful when the caller has already resolved it.
func (w *CardWalker) WalkFrom(v CardVisitor, e entity.ID) {
	start := time.Now()
	cx := &VisitContext{}
	w.walkEntity(v, cx, e, e)
	w.metrics.ObserveWalkDuration(time.Since(start))
}

// walkEntity dispatches a single entity e (walked as part of the subtree
// rooted at root) and, where applicable, recurses into its children.
func (w *CardWalker) walkEntity(v CardVisitor, cx *VisitContext, e, root entity.ID) {
	kind, ok := w.store.Kind(e)
	if !ok {
		w.log.Debug("walk: entity missing, skipping", "entity", e)
		return
	}
	if kind == node.KindNone {
		w.visitGeneric(v, cx, e, root)
		return
	}

	data, hasData := w.store.Data(e)
	if kind.RequiresData() && !hasData {
		w.log.Debug("walk: tagged entity missing data, treating as generic", "entity", e, "kind", kind.String())
		w.visitGeneric(v, cx, e, root)
		return
	}

	w.metrics.ObserveVisit(kind)

	isContainer := kind.IsInlineContainer()
	var hadLink bool
	if isContainer {
		style := kind.InlineStyle()
		var link *node.LinkData
		if kind == node.Link {
			if ld, ok := data.(node.LinkData); ok {
				link = &ld
				hadLink = true
			}
		}
		cx.PushStyle(style, link)
	}

	cx.Entity = e
	w.dispatch(v, cx, e, root, kind, data)

	if isContainer {
		cx.PopStyle(hadLink)
	}
}

// visitGeneric handles both untagged entities and tagged-but-dataless
// entities: a single VisitEntity call, recursing into children on
// Continue.
func (w *CardWalker) visitGeneric(v CardVisitor, cx *VisitContext, e, root entity.ID) {
	cx.Entity = e
	if v.VisitEntity(cx) == Continue {
		w.recurseChildren(v, cx, e, root)
	}
}

// dispatch calls the visit_X/leave_X pair (or single visit_X for leaves)
// for kind, managing the context side effects that must be visible to
// descendants and undone afterward.
func (w *CardWalker) dispatch(v CardVisitor, cx *VisitContext, e, root entity.ID, kind node.Kind, data any) {
	switch kind {
	case node.Heading:
		hd := data.(node.HeadingData)
		cf := v.VisitHeading(cx, hd)
		cx.SetHeadingLevel(hd.Level)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveHeading(cx, hd)
		cx.ClearHeadingLevel()

	case node.Paragraph:
		cf := v.VisitParagraph(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveParagraph(cx)

	case node.BlockQuote:
		cf := v.VisitBlockQuote(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveBlockQuote(cx)

	case node.CodeBlock:
		cd := data.(node.CodeBlockData)
		cf := v.VisitCodeBlock(cx, cd)
		cx.EnterCodeBlock()
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveCodeBlock(cx, cd)
		cx.LeaveCodeBlock()

	case node.ListMarker:
		ld := data.(node.ListMarkerData)
		cf := v.VisitList(cx, ld)
		cx.PushList(ld.Ordered, ld.Start)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveList(cx, ld)
		cx.PopList()

	case node.ListItem:
		cf := v.VisitListItem(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveListItem(cx)
		if l := cx.CurrentList(); l != nil {
			l.CurrentIndex++
		}

	case node.Table:
		td := data.(node.TableData)
		cf := v.VisitTable(cx, td)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveTable(cx, td)

	case node.TableHead:
		cf := v.VisitTableHead(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveTableHead(cx)

	case node.TableRow:
		cf := v.VisitTableRow(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveTableRow(cx)

	case node.TableCell:
		cf := v.VisitTableCell(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveTableCell(cx)

	case node.ThematicBreak:
		v.VisitThematicBreak(cx)

	case node.Image:
		id := data.(node.ImageData)
		cf := v.VisitImage(cx, id)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveImage(cx, id)

	case node.FootnoteDefinition:
		fd := data.(node.FootnoteDefinitionData)
		v.VisitFootnoteDefinition(cx, fd)
		w.recurseChildren(v, cx, e, root)

	case node.MathDisplay:
		v.VisitMathDisplay(cx)
		cx.EnterCodeBlock()
		w.recurseChildren(v, cx, e, root)
		cx.LeaveCodeBlock()

	case node.HTMLBlock:
		hd := data.(node.HTMLData)
		cf := v.VisitHTMLBlock(cx, hd)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveHTMLBlock(cx, hd)

	case node.Button:
		cf := v.VisitButton(cx)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveButton(cx)

	case node.TextNode:
		v.VisitText(cx, data.(node.TextData))

	case node.Link:
		ld := data.(node.LinkData)
		cf := v.VisitLink(cx, ld)
		if cf == Continue {
			w.recurseChildren(v, cx, e, root)
		}
		cx.Entity = e
		v.LeaveLink(cx, ld)

	case node.HardBreak:
		v.VisitHardBreak(cx)

	case node.SoftBreak:
		v.VisitSoftBreak(cx)

	case node.FootnoteRef:
		v.VisitFootnoteRef(cx, data.(node.FootnoteRefData))

	case node.HTMLInline:
		v.VisitHTMLInline(cx, data.(node.HTMLData))

	case node.TaskListCheck:
		v.VisitTaskListCheck(cx, data.(node.TaskListCheckData))

	default:
		// Inline containers without a dedicated visitor method (Important,
		// Emphasize, Code, Quote, Strikethrough, Superscript, Subscript,
		// MathInline) and any other generic structural kind fall through
		// to plain child recursion (spec.md §4.3 step 7).
		w.recurseChildren(v, cx, e, root)
	}
}

// recurseChildren visits e's children in order, skipping any child that
// is both not root and carries the Card marker (spec.md §4.3's boundary
// contract).
func (w *CardWalker) recurseChildren(v CardVisitor, cx *VisitContext, e, root entity.ID) {
	for _, child := range w.store.ChildrenOf(e) {
		if child != root && w.store.HasMarker(child, entity.MarkerCard) {
			continue
		}
		w.walkEntity(v, cx, child, root)
	}
}
