package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-run/cardtree/pkg/entity"
)

func node(kind Kind, pattern string) Node {
	return Node{Kind: kind, Entity: entity.NewID(), Pattern: MustParsePattern(pattern)}
}

func TestTree_FindStaticAndDynamic(t *testing.T) {
	nodes := []Node{
		node(KindCard, "users/:id"),
		node(KindTool, "ping"),
	}
	tree, err := FromNodes(nodes, nil)
	require.NoError(t, err)

	n, ok := tree.Find([]string{"users", "42"})
	require.True(t, ok)
	assert.True(t, n.IsCard())

	n, ok = tree.Find([]string{"ping"})
	require.True(t, ok)
	assert.True(t, n.IsTool())

	_, ok = tree.Find([]string{"nowhere"})
	assert.False(t, ok)
}

func TestTree_FindTool_FiltersKind(t *testing.T) {
	nodes := []Node{node(KindCard, "a"), node(KindTool, "b")}
	tree, err := FromNodes(nodes, nil)
	require.NoError(t, err)

	_, ok := tree.FindTool([]string{"a"})
	assert.False(t, ok, "FindTool must not return a card node")

	_, ok = tree.FindCard([]string{"b"})
	assert.False(t, ok, "FindCard must not return a tool node")
}

func TestTree_DuplicatePathRejected(t *testing.T) {
	nodes := []Node{node(KindCard, "a/b"), node(KindTool, "a/b")}
	_, err := FromNodes(nodes, nil)
	require.Error(t, err)

	var target *ErrDuplicatePath
	assert.ErrorAs(t, err, &target)
}

func TestTree_StaticVsDynamicSiblingConflict(t *testing.T) {
	nodes := []Node{node(KindCard, "users/profile"), node(KindCard, "users/:id")}
	_, err := FromNodes(nodes, nil)
	require.Error(t, err)

	var target *ErrPathConflict
	assert.ErrorAs(t, err, &target)
}

func TestTree_DynamicDynamicSiblingConflict(t *testing.T) {
	nodes := []Node{node(KindCard, "users/:id"), node(KindCard, "users/:name")}
	_, err := FromNodes(nodes, nil)
	require.Error(t, err)

	var target *ErrPathConflict
	assert.ErrorAs(t, err, &target)
}

func TestTree_RouteHiddenMarkerExcludesNode(t *testing.T) {
	b := entity.NewBuilder()
	visible := b.Add(entity.Spec{})
	hidden := b.Add(entity.Spec{Markers: entity.MarkerSet(0).With(entity.MarkerRouteHidden)})
	store := b.Build()

	nodes := []Node{
		{Kind: KindCard, Entity: visible, Pattern: MustParsePattern("a")},
		{Kind: KindCard, Entity: hidden, Pattern: MustParsePattern("b")},
	}
	tree, err := FromNodes(nodes, store)
	require.NoError(t, err)

	_, ok := tree.Find([]string{"a"})
	assert.True(t, ok)
	_, ok = tree.Find([]string{"b"})
	assert.False(t, ok, "a RouteHidden entity must not be collected into the tree")
}

func TestTree_FlattenDeterministicOrder(t *testing.T) {
	nodes := []Node{node(KindCard, "zebra"), node(KindCard, "apple"), node(KindCard, "mango")}
	tree, err := FromNodes(nodes, nil)
	require.NoError(t, err)

	var names []string
	for _, n := range tree.Flatten() {
		names = append(names, n.Pattern.String())
	}
	assert.Equal(t, []string{"apple", "mango", "zebra"}, names)
}

func TestTree_FindSubtree(t *testing.T) {
	nodes := []Node{node(KindCard, "users/settings"), node(KindTool, "users/ping")}
	tree, err := FromNodes(nodes, nil)
	require.NoError(t, err)

	sub, ok := tree.FindSubtree([]string{"users"})
	require.True(t, ok)
	assert.Len(t, sub.Flatten(), 2)

	_, ok = tree.FindSubtree([]string{"missing"})
	assert.False(t, ok)
}

func TestTree_GreedyMatchesRemainderAtLeaf(t *testing.T) {
	nodes := []Node{node(KindTool, "assets/*path")}
	tree, err := FromNodes(nodes, nil)
	require.NoError(t, err)

	n, ok := tree.Find([]string{"assets", "img", "logo.png"})
	require.True(t, ok)
	assert.True(t, n.IsTool())
}
