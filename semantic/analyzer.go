/*
File    : gomix-cpp/semantic/analyzer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package semantic type-checks and scope-resolves a parsed Program, walking
// it as an ast.Visitor and recording every violation as a diag.Diagnostic
// rather than stopping at the first one.
package semantic

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/diag"
	"github.com/akashmaji946/gomix-cpp/scope"
	"github.com/akashmaji946/gomix-cpp/types"
)

// Analyzer walks a Program once, building its global scope tree and
// collecting type errors, undefined-name errors and the other checks in
// this language's static semantics.
type Analyzer struct {
	global          *scope.Scope
	current         *scope.Scope
	currentFunction *ast.FuncDecl
	userTypes       map[string]bool
	errors          []*diag.Diagnostic
}

// New builds an Analyzer with its global scope pre-populated with the
// language's two built-in stream names (cout / std::cout) and the two
// spellings of the end-of-line manipulator (endl / std::endl).
func New() *Analyzer {
	global := scope.New(nil, "global")
	a := &Analyzer{global: global, current: global, userTypes: map[string]bool{}}
	a.defineBuiltin("cout", types.Ostream)
	a.defineBuiltin("std::cout", types.Ostream)
	a.defineBuiltin("endl", types.String)
	a.defineBuiltin("std::endl", types.String)
	return a
}

func (a *Analyzer) defineBuiltin(name string, base types.Base) {
	a.global.Define(&scope.Symbol{
		Name: name, Kind: scope.VariableSymbol,
		DataType: types.Type{Base: base}, Initialized: true,
	})
}

// Analyze runs the full pass over prog and reports whether it completed
// with no errors.
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	prog.Accept(a)
	return len(a.errors) == 0
}

// Errors returns every diagnostic recorded during Analyze, in visit order.
func (a *Analyzer) Errors() []*diag.Diagnostic { return a.errors }

// GlobalScope exposes the root of the scope tree built during Analyze.
func (a *Analyzer) GlobalScope() *scope.Scope { return a.global }

func (a *Analyzer) fail(n ast.Node, format string, args ...any) {
	pos := n.Position()
	a.errors = append(a.errors, diag.New(diag.Semantic, pos.Line, pos.Column, format, args...))
}

func (a *Analyzer) enterScope(name string) *scope.Scope {
	child := scope.New(a.current, name)
	a.current = child
	return child
}

func (a *Analyzer) exitScope() {
	if a.current.Parent != nil {
		a.current = a.current.Parent
	}
}

// knownType reports whether base names either a built-in type or a
// previously declared class/struct.
func (a *Analyzer) knownType(base types.Base) bool {
	return types.IsBuiltin(base) || a.userTypes[string(base)]
}

// VisitProgram visits every top-level declaration in source order.
func (a *Analyzer) VisitProgram(n *ast.Program) any {
	for _, decl := range n.Declarations {
		decl.Accept(a)
	}
	return nil
}

// VisitInclude accepts every header without checking it; an #include never
// produces a diagnostic or halts analysis of the rest of the file.
func (a *Analyzer) VisitInclude(n *ast.Include) any {
	return nil
}

// VisitUsingNamespace reports any namespace other than std, but — like the
// original compiler's own tolerance — does not stop analysis of what
// follows.
func (a *Analyzer) VisitUsingNamespace(n *ast.UsingNamespace) any {
	if n.Namespace != "std" {
		a.fail(n, "unknown namespace: %s", n.Namespace)
	}
	return nil
}

// VisitClassDecl registers a class/struct's name as a user type, so any
// later declaration can use it, and defines its members in a class_<name>
// scope. Member types are not checked, and a use of the name before the
// declaration does not resolve.
func (a *Analyzer) VisitClassDecl(n *ast.ClassDecl) any {
	if a.knownType(types.Base(n.Name)) {
		a.fail(n, "type '%s' already defined", n.Name)
		return nil
	}
	a.userTypes[n.Name] = true

	classScope := scope.New(a.current, "class_"+n.Name)
	for _, member := range n.Members {
		classScope.Define(&scope.Symbol{Name: member.Name, Kind: scope.VariableSymbol, DataType: member.Type})
	}
	return nil
}

// VisitFuncDecl checks the return type, registers the function symbol in
// the enclosing scope, then walks the body in a fresh function_<name>
// scope with every parameter pre-defined and marked initialized.
func (a *Analyzer) VisitFuncDecl(n *ast.FuncDecl) any {
	if !a.knownType(n.RetType.Base) {
		a.fail(n, "unknown return type: %s", n.RetType.Base)
	}

	if _, exists := a.current.LookupLocal(n.Name); exists {
		a.fail(n, "function '%s' already defined", n.Name)
		return nil
	}

	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		paramTypes[i] = p.Type
	}
	a.current.Define(&scope.Symbol{
		Name: n.Name, Kind: scope.FunctionSymbol,
		DataType: n.RetType, Params: paramTypes, ReturnType: n.RetType,
	})

	outerFunction := a.currentFunction
	a.currentFunction = n
	funcScope := a.enterScope("function_" + n.Name)

	for _, p := range n.Params {
		if !a.knownType(p.Type.Base) {
			a.fail(n, "unknown parameter type: %s", p.Type.Base)
		}
		funcScope.Define(&scope.Symbol{Name: p.Name, Kind: scope.ParamSymbol, DataType: p.Type, Initialized: true})
	}

	n.Body.Accept(a)
	a.checkReturns(n.Body, n.RetType.Base)

	a.exitScope()
	a.currentFunction = outerFunction
	return nil
}

// checkReturns recursively walks stmt looking for Return statements and
// verifies each one against expected, independently of the body visit's
// own walk — mirroring the analyzer's two-pass treatment of a function body
// (once for scoping/type errors during the body visit, once purely for
// return-type agreement).
func (a *Analyzer) checkReturns(stmt ast.Stmt, expected types.Base) {
	switch s := stmt.(type) {
	case *ast.Return:
		if s.Expr == nil {
			if expected != types.Void {
				a.fail(s, "function should return %s, but return statement has no value", expected)
			}
			return
		}
		exprType := a.typeOf(s.Expr)
		if exprType != expected {
			if _, ok := types.Promote(exprType, expected); !ok {
				a.fail(s, "return type mismatch: expected %s, got %s", expected, exprType)
			}
		}
	case *ast.Block:
		for _, inner := range s.Stmts {
			a.checkReturns(inner, expected)
		}
	case *ast.If:
		a.checkReturns(s.Then, expected)
		if s.Else != nil {
			a.checkReturns(s.Else, expected)
		}
	case *ast.While:
		a.checkReturns(s.Body, expected)
	case *ast.For:
		a.checkReturns(s.Body, expected)
	}
}

// typeOf runs the expression visitor and unwraps its types.Base result.
func (a *Analyzer) typeOf(e ast.Expr) types.Base {
	result := e.Accept(a)
	base, ok := result.(types.Base)
	if !ok {
		return types.Unknown
	}
	return base
}
