/*
File    : gomix-cpp/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval tree-walks an analyzed Program and executes it, writing
// std::cout output to the configured writer and producing the process's
// exit code from main's return value.
package eval

import (
	"io"

	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/diag"
	"github.com/akashmaji946/gomix-cpp/types"
	"github.com/akashmaji946/gomix-cpp/values"
)

// Function is a callable user-defined function. Unlike the teacher's
// closure-capturing Function, Params/Body are all it needs: this language
// has no nested function declarations, so every call always runs against
// the global frame plus its own fresh parameter bindings — there is no
// defining-scope to capture.
type Function struct {
	Name    string
	Params  []ast.Param
	RetType types.Type
	Body    *ast.Block
}

// Evaluator walks a Program's AST and executes it against a tree of
// Frames rooted at Global. A syntax or type error is never reachable here
// — those are caught by the parser and semantic.Analyzer before Run is
// ever called — but a runtime condition (division by zero, an undefined
// name the analyzer somehow missed) is reported by panicking with a
// *diag.Diagnostic, left for the caller to recover.
type Evaluator struct {
	Global    *Frame
	frame     *Frame
	Functions map[string]*Function
	Writer    io.Writer
}

// New creates an Evaluator that writes std::cout output to w.
func New(w io.Writer) *Evaluator {
	global := NewFrame(nil)
	global.isFunctionFrame = true
	return &Evaluator{Global: global, frame: global, Functions: map[string]*Function{}, Writer: w}
}

// Run registers every top-level function and evaluates every top-level
// variable declaration, then calls main and returns the process exit code
// main's return value implies — 0 if main is declared void or returns no
// value along some path the analyzer allowed.
func (e *Evaluator) Run(prog *ast.Program) int {
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			e.Functions[d.Name] = &Function{Name: d.Name, Params: d.Params, RetType: d.RetType, Body: d.Body}
		case *ast.VarDecl:
			e.evalVarDecl(e.Global, d)
		}
	}

	main, ok := e.Functions["main"]
	if !ok {
		panic(diag.New(diag.Runtime, 0, 0, "no main function found"))
	}

	result := e.callFunction(main, nil)
	if main.RetType.Base == types.Int {
		return int(result.Int)
	}
	return 0
}

// callFunction runs fn's body in a fresh frame parented directly at the
// global frame, with each parameter pre-bound to its argument.
func (e *Evaluator) callFunction(fn *Function, args []values.Value) values.Value {
	callFrame := NewFrame(e.Global)
	callFrame.isFunctionFrame = true
	for i, p := range fn.Params {
		callFrame.Define(p.Name, args[i])
	}

	prevFrame := e.frame
	e.frame = callFrame
	result := e.execBlock(fn.Body)
	e.frame = prevFrame

	if result.IsReturn {
		return result.Value
	}
	return defaultValue(fn.RetType.Base)
}

// defaultValue mirrors the zero value a function without an explicit
// return along the executed path produces, matched to its declared
// return type.
func defaultValue(base types.Base) values.Value {
	switch base {
	case types.Int:
		return values.NewInt(0)
	case types.Float:
		return values.NewFloat(0)
	case types.Double:
		return values.NewDouble(0)
	case types.Bool:
		return values.NewBool(false)
	case types.String:
		return values.NewString("")
	case types.Char:
		return values.NewChar(0)
	default:
		return values.Value{}
	}
}

func (e *Evaluator) pushFrame() {
	e.frame = NewFrame(e.frame)
}

func (e *Evaluator) popFrame() {
	e.frame = e.frame.parent
}

func (e *Evaluator) runtimeError(pos ast.Pos, format string, args ...any) {
	panic(diag.New(diag.Runtime, pos.Line, pos.Column, format, args...))
}
