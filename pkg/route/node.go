package route

import "github.com/inkwell-run/cardtree/pkg/entity"

// Kind discriminates a RouteNode.
type Kind int

const (
	// KindCard routes to a card subtree.
	KindCard Kind = iota
	// KindTool routes to an invocable endpoint.
	KindTool
)

// Node is one routable entry: a card subtree or an invocable tool
// (spec.md §4.7.2). Params, carried separately from Pattern.Segments, is
// the declared capture-name list for callers that want it without
// re-deriving from the pattern.
type Node struct {
	Kind    Kind
	Entity  entity.ID
	Pattern PathPattern
	Params  []string

	// Tool-only fields.
	Meta       map[string]string
	Method     string
	IsExchange bool
}

// IsCard reports whether n routes to a card.
func (n Node) IsCard() bool { return n.Kind == KindCard }

// IsTool reports whether n routes to a tool.
func (n Node) IsTool() bool { return n.Kind == KindTool }
