/*
File    : gomix-cpp/eval/frame.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/gomix-cpp/values"

// Frame is the evaluator's runtime counterpart to scope.Scope: a chain of
// name-to-Value bindings walked the same way during evaluation that
// scope.Scope is walked during analysis. It is a separate, simpler type
// because at runtime there is no need for a Symbol's static bookkeeping
// (Kind, Initialized, Params) — only a name and its current Value.
type Frame struct {
	vars            map[string]values.Value
	parent          *Frame
	isFunctionFrame bool
}

// NewFrame creates a child frame of parent (nil for the global frame).
func NewFrame(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]values.Value), parent: parent}
}

// Define binds name to v in this frame only, shadowing any binding of the
// same name in an enclosing frame.
func (f *Frame) Define(name string, v values.Value) {
	f.vars[name] = v
}

// Get resolves name by walking from this frame outward through its
// parents, the same order scope.Scope.Lookup uses.
func (f *Frame) Get(name string) (values.Value, bool) {
	if v, ok := f.vars[name]; ok {
		return v, true
	}
	if f.parent != nil {
		return f.parent.Get(name)
	}
	return values.Value{}, false
}

// Set finds the frame where name was originally defined and updates its
// binding there, leaving every other frame untouched. It reports false if
// name is not bound anywhere in the chain.
func (f *Frame) Set(name string, v values.Value) bool {
	if _, ok := f.vars[name]; ok {
		f.vars[name] = v
		return true
	}
	if f.parent != nil {
		return f.parent.Set(name, v)
	}
	return false
}
