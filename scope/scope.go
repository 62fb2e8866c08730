/*
File    : gomix-cpp/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the compile-time symbol table: a tree of lexical
// scopes linked by parent pointers, walked during semantic analysis to
// resolve names. The evaluator keeps its own runtime frames instead.
package scope

import "github.com/akashmaji946/gomix-cpp/types"

// Kind distinguishes what a Symbol was declared as.
type Kind string

const (
	VariableSymbol Kind = "variable"
	FunctionSymbol Kind = "function"
	ParamSymbol    Kind = "parameter"
)

// Symbol is one named entity registered in a Scope: a variable, a function,
// or a parameter. Params and ReturnType are only meaningful on a
// FunctionSymbol.
type Symbol struct {
	Name        string
	Kind        Kind
	DataType    types.Type
	Initialized bool
	Params      []types.Type
	ReturnType  types.Type
}

// Scope is one node of the lexical scope tree. Name identifies what kind of
// scope this is — "global", "function_<name>", "for_loop", "block" or
// "class_<name>" — and is what
// the analyzer's block-scope rule inspects via IsFunctionScope.
//
// Lookup walks from a scope up through its Parent chain, so a name defined
// in an enclosing scope is visible to every scope nested inside it, and a
// name redefined in an inner scope shadows the outer one without touching
// it — the usual lexical scoping rule.
type Scope struct {
	ID       int
	Name     string
	Parent   *Scope
	Symbols  map[string]*Symbol
	Children []*Scope
}

var nextID int

// New creates a child scope of parent (nil for the program's global scope),
// tagged with name for diagnostics and for the function-body scope rule.
// Every call assigns a fresh, stable ID from a package-wide counter, so no
// two scopes ever share an ID. The new scope is appended
// to parent.Children, so the tree is walkable top-down as well as bottom-up
// through Parent, even though nothing in this package currently does so.
func New(parent *Scope, name string) *Scope {
	nextID++
	s := &Scope{ID: nextID, Name: name, Parent: parent, Symbols: make(map[string]*Symbol)}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// IsFunctionScope reports whether this scope is the outermost scope of a
// function body — the rule a nested Block checks before deciding whether it
// needs to push its own child scope.
func (s *Scope) IsFunctionScope() bool {
	return len(s.Name) >= len("function_") && s.Name[:len("function_")] == "function_"
}

// Define registers sym in this scope only. It returns false without
// modifying the scope if a symbol of that name already exists here —
// redefinition within the same scope is a semantic error, but shadowing a
// name from an enclosing scope is always allowed.
func (s *Scope) Define(sym *Symbol) bool {
	if _, exists := s.Symbols[sym.Name]; exists {
		return false
	}
	s.Symbols[sym.Name] = sym
	return true
}

// Lookup searches this scope and then each enclosing scope in turn for
// name, returning the nearest (most deeply nested) matching Symbol.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	if sym, ok := s.Symbols[name]; ok {
		return sym, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// LookupLocal searches only this scope, ignoring any parent — used by the
// analyzer to detect same-scope redeclaration independently of shadowing.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.Symbols[name]
	return sym, ok
}
