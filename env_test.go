package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLookup(t *testing.T) {
	root := NewScope(nil)
	root.Define("x", Number(1))
	root.Define("y", Number(2))

	child := NewScope(root)
	child.Define("x", Number(10))

	v, ok := child.Lookup("x")
	require.True(t, ok)
	assert.True(t, ValuesEqual(Number(10), v), "local binding shadows the parent")

	v, ok = child.Lookup("y")
	require.True(t, ok)
	assert.True(t, ValuesEqual(Number(2), v), "misses delegate to the parent")

	_, ok = child.Lookup("z")
	assert.False(t, ok)
}

func TestEnvDefineIsLocal(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)

	child.Define("x", Number(1))
	_, ok := root.Lookup("x")
	assert.False(t, ok, "Define must not touch ancestors")
}

func TestEnvGlobal(t *testing.T) {
	root := NewScope(nil)
	mid := NewScope(root)
	leaf := NewScope(mid)

	assert.Same(t, root, root.Global())
	assert.Same(t, root, leaf.Global())

	leaf.Global().Define("x", Number(1))
	v, ok := mid.Lookup("x")
	require.True(t, ok)
	assert.True(t, ValuesEqual(Number(1), v))
}

func TestEnvNames(t *testing.T) {
	env := NewScope(nil)
	env.Define("b", Number(2))
	env.Define("a", Number(1))
	assert.Equal(t, []Symbol{"a", "b"}, env.Names())
}

func TestSessionsAreIndependent(t *testing.T) {
	a := mustEnv(t)
	b := mustEnv(t)

	evalString(t, a, "(def {x} 1)")
	_, ok := b.Lookup("x")
	assert.False(t, ok)
}
