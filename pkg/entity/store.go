package entity

import "github.com/inkwell-run/cardtree/pkg/node"

// Record is the concrete (Node, Data, Children, Parent, Markers) tuple a
// Store implementation keeps per entity. It is the Go analogue of the
// source's ECS component bag: Data is nil for entities with no per-kind
// payload, and Node may be node.KindNone for purely structural entities.
type Record struct {
	ID       ID
	Node     node.Kind
	Data     any
	Parent   ID // Nil if r is a root
	Children []ID
	Markers  MarkerSet
}

// HasParent reports whether r has a parent edge.
func (r Record) HasParent() bool {
	return r.Parent != Nil
}

// Store is the read-only view the card walker and route collector consume.
// Implementations must be safe for concurrent reads; spec.md §5 guarantees
// no writes happen during a walk.
type Store interface {
	// ChildrenOf returns e's children in insertion order, or nil if e has
	// none or does not exist.
	ChildrenOf(e ID) []ID

	// ParentOf returns e's parent, or (Nil, false) if e has none.
	ParentOf(e ID) (ID, bool)

	// Kind returns e's Node tag, or (node.KindNone, false) if e does not
	// exist in the store at all (as opposed to existing with no tag).
	Kind(e ID) (node.Kind, bool)

	// Data returns e's per-kind data attachment, or (nil, false) if e has
	// none. A Kind tag with no Data is legal (spec.md §3.4); callers fall
	// through to generic handling.
	Data(e ID) (any, bool)

	// HasMarker reports whether e carries marker m.
	HasMarker(e ID, m Marker) bool

	// Exists reports whether e is present in the store at all.
	Exists(e ID) bool
}

// GetComponent recovers e's typed data attachment from s, mirroring the
// source's get_component<T>(entity) -> Option<&T>. It reports false if e
// has no Data or the Data is not of type T.
func GetComponent[T any](s Store, e ID) (T, bool) {
	var zero T
	raw, ok := s.Data(e)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
