package card

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-run/cardtree/pkg/entity"
	"github.com/inkwell-run/cardtree/pkg/node"
)

func TestQuery_IsCard(t *testing.T) {
	store, root := entity.Build(entity.Card(0, entity.Text("x")))
	q := NewQuery(store)

	assert.True(t, q.IsCard(root))
	child := store.ChildrenOf(root)[0]
	assert.False(t, q.IsCard(child))
}

func TestQuery_CardRoot(t *testing.T) {
	// card -> paragraph -> text
	store, root := entity.Build(entity.Card(0,
		entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{entity.Text("hi")}},
	))
	q := NewQuery(store)

	para := store.ChildrenOf(root)[0]
	text := store.ChildrenOf(para)[0]

	assert.Equal(t, root, q.CardRoot(text))
	assert.Equal(t, root, q.CardRoot(para))
	assert.Equal(t, root, q.CardRoot(root))
}

func TestQuery_CardRoot_NoCardAncestor(t *testing.T) {
	// A tree with no Card marker anywhere: CardRoot(e) falls off the top
	// of the parent chain and returns e unchanged.
	store, root := entity.Build(entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{entity.Text("hi")}})
	q := NewQuery(store)

	text := store.ChildrenOf(root)[0]
	assert.Equal(t, text, q.CardRoot(text))
}

func TestQuery_IterDFS_PreOrder(t *testing.T) {
	store, root := entity.Build(entity.Card(0,
		entity.Text("a"),
		entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{entity.Text("b"), entity.Text("c")}},
		entity.Text("d"),
	))
	q := NewQuery(store)

	var contents []string
	for id := range q.IterDFS(root) {
		if data, ok := entity.GetComponent[node.TextData](store, id); ok {
			contents = append(contents, data.Content)
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, contents)
}

func TestQuery_IterDFS_StopsAtNestedCardBoundary(t *testing.T) {
	// Outer card contains a Text leaf and a nested Card; neither the nested
	// card nor its subtree may appear in the outer card's DFS.
	nestedCard := entity.Card(0, entity.Text("inner"))
	store, root := entity.Build(entity.Card(0, entity.Text("outer"), nestedCard))
	q := NewQuery(store)

	ids := slices.Collect(q.IterDFS(root))
	require.Len(t, ids, 2) // root and outer text; the nested card entity is not emitted

	var sawInnerText bool
	for _, id := range ids {
		if data, ok := entity.GetComponent[node.TextData](store, id); ok && data.Content == "inner" {
			sawInnerText = true
		}
	}
	assert.False(t, sawInnerText, "DFS must not descend into a nested card's subtree")
}

func TestQuery_IterDFS_RootItselfMayBeACard(t *testing.T) {
	// Requesting IterDFS(root) where root itself carries the Card marker
	// must still descend into root's own children.
	store, root := entity.Build(entity.Card(0, entity.Text("x")))
	q := NewQuery(store)

	ids := slices.Collect(q.IterDFS(root))
	assert.Len(t, ids, 2)
}

func TestQuery_IterDFS_MissingRoot(t *testing.T) {
	store, _ := entity.Build(entity.Text("x"))
	q := NewQuery(store)

	ids := slices.Collect(q.IterDFS(entity.NewID()))
	assert.Empty(t, ids, "querying a root absent from the store yields an empty sequence")
}

func TestQuery_IterDFS_EarlyStop(t *testing.T) {
	store, root := entity.Build(entity.Card(0, entity.Text("a"), entity.Text("b"), entity.Text("c")))
	q := NewQuery(store)

	var seen int
	for range q.IterDFS(root) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
