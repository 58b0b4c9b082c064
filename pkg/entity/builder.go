package entity

import "github.com/inkwell-run/cardtree/pkg/node"

// Spec describes one entity and its subtree before it has an ID. Building
// entity trees is explicitly out of this project's scope (spec.md §3.5
// attributes it to "an external builder or procedural API"); Spec/Build
// exist only so tests and the CLI's demo tree have something concrete to
// hand the walker and route collector.
type Spec struct {
	Kind     node.Kind
	Data     any
	Markers  MarkerSet
	Children []Spec
}

// Builder assembles a MemStore from Specs, assigning fresh IDs and wiring
// parent/child edges as it goes.
type Builder struct {
	records map[ID]Record
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{records: make(map[ID]Record)}
}

// Add inserts spec (and its subtree) with no parent and returns its ID.
func (b *Builder) Add(spec Spec) ID {
	return b.add(spec, Nil)
}

func (b *Builder) add(spec Spec, parent ID) ID {
	id := NewID()
	children := make([]ID, 0, len(spec.Children))
	for _, c := range spec.Children {
		children = append(children, b.add(c, id))
	}
	b.records[id] = Record{
		ID:       id,
		Node:     spec.Kind,
		Data:     spec.Data,
		Parent:   parent,
		Children: children,
		Markers:  spec.Markers,
	}
	return id
}

// Build returns the assembled MemStore.
func (b *Builder) Build() *MemStore {
	return &MemStore{records: b.records}
}

// Build constructs a MemStore from a single root Spec and returns the
// store along with the root's assigned ID.
func Build(root Spec) (*MemStore, ID) {
	b := NewBuilder()
	id := b.Add(root)
	return b.Build(), id
}

// Convenience constructors mirroring spec.md §8's "Card → Paragraph →
// [...]" notation, used throughout the test suite.

func Card(markers MarkerSet, children ...Spec) Spec {
	return Spec{Kind: node.KindNone, Markers: markers.With(MarkerCard), Children: children}
}

func Text(content string) Spec {
	return Spec{Kind: node.TextNode, Data: node.TextData{Content: content}}
}
