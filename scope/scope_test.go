/*
File    : logo2/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logo2lang/logo2/values"
)

func intVar(i int64) *Variable {
	return &Variable{Value: &values.Integer{Value: i}}
}

func TestScope_LookupWalksChain(t *testing.T) {
	global := NewScope(nil)
	global.Declare("g", intVar(1))
	inner := NewScope(global)
	inner.Declare("l", intVar(2))

	value, ok := inner.Lookup("l")
	assert.True(t, ok)
	assert.Equal(t, int64(2), value.(*values.Integer).Value)

	value, ok = inner.Lookup("g")
	assert.True(t, ok)
	assert.Equal(t, int64(1), value.(*values.Integer).Value)

	_, ok = global.Lookup("l")
	assert.False(t, ok, "inner bindings must not leak outward")

	_, ok = inner.Lookup("missing")
	assert.False(t, ok)
}

func TestScope_Shadowing(t *testing.T) {
	global := NewScope(nil)
	global.Declare("x", intVar(1))
	inner := NewScope(global)
	inner.Declare("x", intVar(2))

	value, _ := inner.Lookup("x")
	assert.Equal(t, int64(2), value.(*values.Integer).Value)
	value, _ = global.Lookup("x")
	assert.Equal(t, int64(1), value.(*values.Integer).Value)
}

func TestScope_FindReturnsOriginalBinding(t *testing.T) {
	global := NewScope(nil)
	global.Declare("x", intVar(1))
	inner := NewScope(global)

	variable := inner.Find("x")
	if variable == nil {
		t.Fatal("expected to find x through the chain")
	}
	variable.Value = &values.Integer{Value: 9}

	value, _ := global.Lookup("x")
	assert.Equal(t, int64(9), value.(*values.Integer).Value, "assignment lands on the defining scope")

	assert.Nil(t, inner.Find("missing"))
}

func TestScope_DeclareReportsRebinding(t *testing.T) {
	s := NewScope(nil)
	assert.False(t, s.Declare("a", intVar(1)))
	assert.True(t, s.Declare("a", intVar(2)))
}

func TestScope_CloneIsIndependent(t *testing.T) {
	original := NewScope(nil)
	original.Declare("n", intVar(1))

	clone := original.Clone(nil)
	clone.Find("n").Value = &values.Integer{Value: 5}

	value, _ := original.Lookup("n")
	assert.Equal(t, int64(1), value.(*values.Integer).Value, "clone mutation must not touch the original")
	value, _ = clone.Lookup("n")
	assert.Equal(t, int64(5), value.(*values.Integer).Value)
}

func TestScope_CloneSharesParent(t *testing.T) {
	global := NewScope(nil)
	global.Declare("g", intVar(7))
	inner := NewScope(global)

	clone := inner.Clone(global)
	value, ok := clone.Lookup("g")
	assert.True(t, ok)
	assert.Equal(t, int64(7), value.(*values.Integer).Value)
}

func TestScope_CloneChain(t *testing.T) {
	global := NewScope(nil)
	global.Declare("g", intVar(1))
	mid := NewScope(global)
	mid.Declare("m", intVar(2))
	top := NewScope(mid)
	top.Declare("t", intVar(3))

	// clone everything above the global frame
	captured := top.CloneChain(global)
	if captured == nil {
		t.Fatal("expected a captured chain")
	}
	// the captured chain ends below global; g is not reachable yet
	_, ok := captured.Lookup("g")
	assert.False(t, ok)

	// re-parenting the chain root restores global visibility
	root := captured
	for root.Parent() != nil {
		root = root.Parent()
	}
	root.SetParent(global)

	for name, expected := range map[string]int64{"g": 1, "m": 2, "t": 3} {
		value, ok := captured.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, value.(*values.Integer).Value, name)
	}

	// the capture is a snapshot: later writes to the originals are
	// invisible through it
	mid.Find("m").Value = &values.Integer{Value: 99}
	value, _ := captured.Lookup("m")
	assert.Equal(t, int64(2), value.(*values.Integer).Value)
}

func TestScope_CloneChainOfGlobalIsNil(t *testing.T) {
	global := NewScope(nil)
	assert.Nil(t, global.CloneChain(global))
}
