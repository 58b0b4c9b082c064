package entity

import "github.com/inkwell-run/cardtree/pkg/node"

// MemStore is an in-memory, map-backed Store. It is immutable once built
// via Builder — spec.md §3.5 treats the tree as immutable during traversal,
// and MemStore never exposes a mutation method after construction.
type MemStore struct {
	records map[ID]Record
}

var _ Store = (*MemStore)(nil)

func (s *MemStore) ChildrenOf(e ID) []ID {
	r, ok := s.records[e]
	if !ok {
		return nil
	}
	return r.Children
}

func (s *MemStore) ParentOf(e ID) (ID, bool) {
	r, ok := s.records[e]
	if !ok || !r.HasParent() {
		return Nil, false
	}
	return r.Parent, true
}

func (s *MemStore) Kind(e ID) (node.Kind, bool) {
	r, ok := s.records[e]
	if !ok {
		return node.KindNone, false
	}
	return r.Node, true
}

func (s *MemStore) Data(e ID) (any, bool) {
	r, ok := s.records[e]
	if !ok || r.Data == nil {
		return nil, false
	}
	return r.Data, true
}

func (s *MemStore) HasMarker(e ID, m Marker) bool {
	r, ok := s.records[e]
	return ok && r.Markers.Has(m)
}

func (s *MemStore) Exists(e ID) bool {
	_, ok := s.records[e]
	return ok
}

// Records returns a defensive copy of every record in the store, keyed by
// ID. Used by BadgerStore.Save and by tests that need to inspect raw
// structure.
func (s *MemStore) Records() map[ID]Record {
	out := make(map[ID]Record, len(s.records))
	for id, r := range s.records {
		out[id] = r
	}
	return out
}
