/*
File    : gomix-cpp/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gomix-cpp/types"
)

func TestScope_DefineAndLookup(t *testing.T) {
	global := New(nil, "global")
	ok := global.Define(&Symbol{Name: "x", Kind: VariableSymbol, DataType: types.Type{Base: types.Int}})
	assert.True(t, ok)

	sym, found := global.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, types.Int, sym.DataType.Base)
}

func TestScope_DefineRejectsSameScopeRedefinition(t *testing.T) {
	global := New(nil, "global")
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol})
	ok := global.Define(&Symbol{Name: "x", Kind: VariableSymbol})
	assert.False(t, ok)
}

func TestScope_LookupWalksParentChain(t *testing.T) {
	global := New(nil, "global")
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol})
	inner := New(global, "function_foo")

	_, found := inner.Lookup("x")
	assert.True(t, found)
}

func TestScope_ShadowingDoesNotMutateOuterScope(t *testing.T) {
	global := New(nil, "global")
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol, DataType: types.Type{Base: types.Int}})
	inner := New(global, "function_foo")
	inner.Define(&Symbol{Name: "x", Kind: VariableSymbol, DataType: types.Type{Base: types.String}})

	outerSym, _ := global.Lookup("x")
	innerSym, _ := inner.Lookup("x")
	assert.Equal(t, types.Int, outerSym.DataType.Base)
	assert.Equal(t, types.String, innerSym.DataType.Base)
}

func TestScope_LookupLocalIgnoresParent(t *testing.T) {
	global := New(nil, "global")
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol})
	inner := New(global, "function_foo")

	_, found := inner.LookupLocal("x")
	assert.False(t, found)
}

func TestScope_IsFunctionScope(t *testing.T) {
	assert.True(t, New(nil, "function_main").IsFunctionScope())
	assert.False(t, New(nil, "global").IsFunctionScope())
	assert.False(t, New(nil, "for_loop").IsFunctionScope())
}

func TestScope_EachScopeGetsAStableUniqueID(t *testing.T) {
	a := New(nil, "global")
	b := New(a, "function_foo")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestScope_NewRegistersItselfAsAParentsChild(t *testing.T) {
	global := New(nil, "global")
	fn := New(global, "function_foo")
	loop := New(fn, "for_loop")

	assert.Empty(t, loop.Children)
	assert.Equal(t, []*Scope{loop}, fn.Children)
	assert.Equal(t, []*Scope{fn}, global.Children)
}
