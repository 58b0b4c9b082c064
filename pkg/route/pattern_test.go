package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern_Segments(t *testing.T) {
	p, err := ParsePattern("users/:id/*rest")
	require.NoError(t, err)
	require.Len(t, p.Segments(), 3)
	assert.Equal(t, Segment{Kind: SegmentStatic, Value: "users"}, p.Segments()[0])
	assert.Equal(t, Segment{Kind: SegmentDynamic, Value: "id"}, p.Segments()[1])
	assert.Equal(t, Segment{Kind: SegmentGreedy, Value: "rest"}, p.Segments()[2])
	assert.Equal(t, "users/:id/*rest", p.String())
}

func TestParsePattern_Empty(t *testing.T) {
	p, err := ParsePattern("/")
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestParsePattern_GreedyNotLastRejected(t *testing.T) {
	_, err := ParsePattern("*rest/users")
	require.Error(t, err)
	var target *ErrGreedyNotLast
	assert.ErrorAs(t, err, &target)
}

func TestMustParsePattern_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustParsePattern("*rest/users")
	})
}

func TestPathPattern_Match(t *testing.T) {
	p := MustParsePattern("users/:id")

	m, ok := p.Match([]string{"users", "42"})
	require.True(t, ok)
	assert.True(t, m.Exact)
	assert.Equal(t, "42", m.Params["id"])

	_, ok = p.Match([]string{"users"})
	assert.False(t, ok, "too few components must not match")

	_, ok = p.Match([]string{"users", "42", "extra"})
	assert.False(t, ok, "extra trailing components must not match a non-greedy pattern")
}

func TestPathPattern_MatchGreedyConsumesRemainder(t *testing.T) {
	p := MustParsePattern("assets/*path")

	m, ok := p.Match([]string{"assets", "img", "logo.png"})
	require.True(t, ok)
	assert.Equal(t, "img/logo.png", m.Params["path"])
}

func TestPathPattern_MatchStaticMismatch(t *testing.T) {
	p := MustParsePattern("users/:id")
	_, ok := p.Match([]string{"orders", "42"})
	assert.False(t, ok)
}
