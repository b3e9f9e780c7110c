package binding_test

import (
	"testing"

	"autopiper/internal/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindLookupWithinOneLayer(t *testing.T) {
	env := binding.New()
	env.Bind("x", 1)
	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestLookupMissingNameFails(t *testing.T) {
	env := binding.New()
	_, ok := env.Lookup("nope")
	assert.False(t, ok)
}

func TestPushShadowsOuterBinding(t *testing.T) {
	env := binding.New()
	env.Bind("x", 1)
	env.Push()
	env.Bind("x", 2)
	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestPopToRestoresVisibleBindings(t *testing.T) {
	env := binding.New()
	env.Bind("x", 1)
	depth := env.Depth()

	env.Push()
	env.Bind("y", 2)
	env.Bind("x", 99)
	assert.True(t, env.Has("y"))

	env.PopTo(depth)
	assert.False(t, env.Has("y"))
	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1, v, "popping must restore the pre-push value, not leak the shadowed one")
}

func TestMatchedPushPopToIsNoop(t *testing.T) {
	env := binding.New()
	env.Bind("a", 1)
	env.Bind("b", 2)
	before := env.Keys()

	depth := env.Depth()
	env.Push()
	env.Bind("c", 3)
	env.PopTo(depth)

	after := env.Keys()
	assert.Equal(t, before, after)
}

func TestKeysAreSortedAndDeduped(t *testing.T) {
	env := binding.New()
	env.Bind("b", 1)
	env.Bind("a", 2)
	env.Push()
	env.Bind("a", 3)
	assert.Equal(t, []string{"a", "b"}, env.Keys())
}

func TestOverlaySnapshotsCurrentValues(t *testing.T) {
	env := binding.New()
	env.Bind("x", 1)
	env.Push()
	env.Bind("y", 2)
	ov := env.Overlay()
	assert.Equal(t, map[string]int{"x": 1, "y": 2}, ov)
}

func TestJoinOverlaysEqualInputsProduceEqualVectors(t *testing.T) {
	base := map[string]int{"x": 0}
	overlay := map[string]int{"x": 5}

	joined := binding.JoinOverlays(base, []map[string]int{overlay, overlay})
	require.Contains(t, joined, "x")
	vec := joined["x"]
	require.Len(t, vec, 2)
	assert.Equal(t, vec[0], vec[1])
}

func TestJoinOverlaysFallsBackToBaseWhenKeyAbsent(t *testing.T) {
	base := map[string]int{"x": 7, "y": 1}
	thenOverlay := map[string]int{"x": 42}
	elseOverlay := map[string]int{"y": 99}

	joined := binding.JoinOverlays(base, []map[string]int{thenOverlay, elseOverlay})

	assert.Equal(t, []int{42, 7}, joined["x"])
	assert.Equal(t, []int{1, 99}, joined["y"])
}

func TestJoinOverlaysUnionsKeysAcrossAllOverlays(t *testing.T) {
	base := map[string]int{}
	a := map[string]int{"p": 1}
	b := map[string]int{"q": 2}

	joined := binding.JoinOverlays(base, []map[string]int{a, b})
	assert.Len(t, joined, 2)
	assert.Contains(t, joined, "p")
	assert.Contains(t, joined, "q")
}
