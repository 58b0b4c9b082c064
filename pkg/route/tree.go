package route

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/inkwell-run/cardtree/pkg/entity"
)

// ErrDuplicatePath is returned when two nodes share the same pattern.
type ErrDuplicatePath struct {
	Pattern string
}

func (e *ErrDuplicatePath) Error() string {
	return fmt.Sprintf("route: duplicate path %q", e.Pattern)
}

// ErrPathConflict is returned when two segments at the same trie level
// cannot be disambiguated (dynamic-dynamic, or static-vs-dynamic).
type ErrPathConflict struct {
	Level string
	A, B  string
}

func (e *ErrPathConflict) Error() string {
	return fmt.Sprintf("route: path conflict at %q between %q and %q", e.Level, e.A, e.B)
}

// trieNode is one level of the route trie, keyed by a segment's
// annotated string form.
type trieNode struct {
	key      string
	seg      *Segment // nil at the synthetic root
	node     *Node    // non-nil if a route terminates exactly here
	children map[string]*trieNode
}

func newTrieNode(key string, seg *Segment) *trieNode {
	return &trieNode{key: key, seg: seg, children: map[string]*trieNode{}}
}

// Tree is a constructed, conflict-free trie of routable Nodes.
type Tree struct {
	root *trieNode
}

// FromNodes builds a Tree from nodes, rejecting any entity carrying the
// RouteHidden marker and validating the remainder for conflicts (spec.md
// §4.7.3). On error it returns every offending conflict, aggregated with
// multierr, and no partially-constructed Tree.
func FromNodes(nodes []Node, store entity.Store) (*Tree, error) {
	root := newTrieNode("", nil)
	var errs error

	visible := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if store != nil && store.HasMarker(n.Entity, entity.MarkerRouteHidden) {
			continue
		}
		visible = append(visible, n)
	}

	seen := map[string]bool{}
	for i := range visible {
		n := visible[i]
		key := n.Pattern.String()
		if seen[key] {
			errs = multierr.Append(errs, &ErrDuplicatePath{Pattern: key})
			continue
		}
		seen[key] = true

		cur := root
		segs := n.Pattern.Segments()
		conflict := false
		for _, seg := range segs {
			seg := seg
			if err := checkLevelConflict(cur, seg); err != nil {
				errs = multierr.Append(errs, err)
				conflict = true
				break
			}
			key := seg.Annotated()
			child, ok := cur.children[key]
			if !ok {
				child = newTrieNode(key, &seg)
				cur.children[key] = child
			}
			cur = child
		}
		if conflict {
			continue
		}
		cur.node = &visible[i]
	}

	if errs != nil {
		return nil, errs
	}
	return &Tree{root: root}, nil
}

// checkLevelConflict reports whether inserting seg among cur's existing
// children introduces a dynamic-dynamic or static-vs-dynamic ambiguity.
func checkLevelConflict(cur *trieNode, seg Segment) error {
	if seg.Kind == SegmentStatic {
		for _, child := range cur.children {
			if child.seg != nil && child.seg.Kind != SegmentStatic {
				return &ErrPathConflict{Level: cur.key, A: seg.Annotated(), B: child.key}
			}
		}
		return nil
	}
	// Dynamic or greedy: conflicts with any existing non-static sibling
	// with a different annotated form, and with any static sibling.
	for _, child := range cur.children {
		if child.seg == nil {
			continue
		}
		if child.seg.Kind == SegmentStatic {
			return &ErrPathConflict{Level: cur.key, A: seg.Annotated(), B: child.key}
		}
		if child.key != seg.Annotated() {
			return &ErrPathConflict{Level: cur.key, A: seg.Annotated(), B: child.key}
		}
	}
	return nil
}

// Find performs a DFS lookup, returning the first node whose pattern
// matches components exactly.
func (t *Tree) Find(components []string) (*Node, bool) {
	return find(t.root, components)
}

func find(n *trieNode, components []string) (*Node, bool) {
	if len(components) == 0 {
		if n.node != nil {
			return n.node, true
		}
		return nil, false
	}
	for _, child := range sortedChildren(n) {
		switch {
		case child.seg != nil && child.seg.Kind == SegmentStatic:
			if child.key == components[0] {
				if found, ok := find(child, components[1:]); ok {
					return found, true
				}
			}
		case child.seg != nil && child.seg.Kind == SegmentDynamic:
			if found, ok := find(child, components[1:]); ok {
				return found, true
			}
		case child.seg != nil && child.seg.Kind == SegmentGreedy:
			if child.node != nil {
				return child.node, true
			}
		}
	}
	return nil, false
}

func sortedChildren(n *trieNode) []*trieNode {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*trieNode, 0, len(keys))
	for _, k := range keys {
		out = append(out, n.children[k])
	}
	return out
}

// FindTool is Find filtered to KindTool.
func (t *Tree) FindTool(components []string) (*Node, bool) {
	n, ok := t.Find(components)
	if !ok || !n.IsTool() {
		return nil, false
	}
	return n, true
}

// FindCard is Find filtered to KindCard.
func (t *Tree) FindCard(components []string) (*Node, bool) {
	n, ok := t.Find(components)
	if !ok || !n.IsCard() {
		return nil, false
	}
	return n, true
}

// FindSubtree walks static-segment children by name and returns the
// Tree rooted at the given prefix, or false if any component along the
// way has no matching static child.
func (t *Tree) FindSubtree(prefix []string) (*Tree, bool) {
	cur := t.root
	for _, comp := range prefix {
		child, ok := cur.children[comp]
		if !ok || child.seg == nil || child.seg.Kind != SegmentStatic {
			return nil, false
		}
		cur = child
	}
	return &Tree{root: cur}, true
}

// Flatten collects every routed Node reachable from the tree, in
// deterministic (sorted-child) order.
func (t *Tree) Flatten() []*Node {
	var out []*Node
	flatten(t.root, &out)
	return out
}

func flatten(n *trieNode, out *[]*Node) {
	if n.node != nil {
		*out = append(*out, n.node)
	}
	for _, child := range sortedChildren(n) {
		flatten(child, out)
	}
}

// FlattenToolNodes is Flatten filtered to KindTool.
func (t *Tree) FlattenToolNodes() []*Node {
	var out []*Node
	for _, n := range t.Flatten() {
		if n.IsTool() {
			out = append(out, n)
		}
	}
	return out
}

// FlattenCardNodes is Flatten filtered to KindCard.
func (t *Tree) FlattenCardNodes() []*Node {
	var out []*Node
	for _, n := range t.Flatten() {
		if n.IsCard() {
			out = append(out, n)
		}
	}
	return out
}
