// Package card implements boundary detection over an entity tree: finding
// the enclosing card root of an arbitrary entity, and a pre-order DFS that
// stops at nested card boundaries (spec.md §4.1).
package card

import (
	"iter"

	"github.com/inkwell-run/cardtree/pkg/entity"
)

// Query answers boundary questions against a single entity.Store.
type Query struct {
	store entity.Store
}

// NewQuery returns a Query over store.
func NewQuery(store entity.Store) *Query {
	return &Query{store: store}
}

// IsCard reports whether e carries the Card marker.
func (q *Query) IsCard(e entity.ID) bool {
	return q.store.HasMarker(e, entity.MarkerCard)
}

// CardRoot walks e's parent chain upward, inclusive of e itself, and
// returns the first entity carrying the Card marker. If none is found
// (e.g. e has no Card ancestor), CardRoot returns e unchanged.
func (q *Query) CardRoot(e entity.ID) entity.ID {
	current := e
	for {
		if q.IsCard(current) {
			return current
		}
		parent, ok := q.store.ParentOf(current)
		if !ok {
			return e
		}
		current = parent
	}
}

// IterDFS returns a pre-order depth-first iterator starting at root,
// following Children in insertion order. A descendant carrying the Card
// marker (other than root itself) is neither emitted nor descended into. Order is deterministic: it matches Children order at every
// level (spec.md §4.1).
//
// Querying a root that does not exist in the store yields an empty
// sequence rather than an error (spec.md §4.1, "Failure: none").
func (q *Query) IterDFS(root entity.ID) iter.Seq[entity.ID] {
	return func(yield func(entity.ID) bool) {
		if !q.store.Exists(root) {
			return
		}
		q.walk(root, root, yield)
	}
}

// walk emits e and its descendants in pre-order, returning false the
// moment yield asks to stop so every caller up the recursion can also
// stop immediately.
func (q *Query) walk(root, e entity.ID, yield func(entity.ID) bool) bool {
	if !yield(e) {
		return false
	}
	for _, child := range q.store.ChildrenOf(e) {
		if child != root && q.IsCard(child) {
			continue
		}
		if !q.walk(root, child, yield) {
			return false
		}
	}
	return true
}
