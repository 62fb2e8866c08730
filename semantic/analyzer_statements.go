/*
File    : gomix-cpp/semantic/analyzer_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package semantic

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/scope"
	"github.com/akashmaji946/gomix-cpp/types"
)

// VisitVarDecl checks the declared type is known, rejects a redeclaration
// within the current scope, checks the initializer's type against the
// declared type, and registers the resulting symbol.
func (a *Analyzer) VisitVarDecl(n *ast.VarDecl) any {
	if !a.knownType(n.Type.Base) {
		a.fail(n, "unknown type: %s", n.Type.Base)
	}

	if _, exists := a.current.LookupLocal(n.Name); exists {
		a.fail(n, "variable '%s' already defined in current scope", n.Name)
		return nil
	}

	if n.Init != nil {
		initType := a.typeOf(n.Init)
		if initType != n.Type.Base {
			if _, ok := types.Promote(n.Type.Base, initType); !ok {
				a.fail(n, "cannot assign %s to %s", initType, n.Type.Base)
			}
		}
	}

	a.current.Define(&scope.Symbol{
		Name: n.Name, Kind: scope.VariableSymbol,
		DataType: n.Type, Initialized: n.Init != nil,
	})
	return nil
}

// VisitExprStmt visits the wrapped expression purely for its side effects
// (error reporting); the resulting type is discarded.
func (a *Analyzer) VisitExprStmt(n *ast.ExprStmt) any {
	a.typeOf(n.Expr)
	return nil
}

// VisitBlock skips pushing a new scope whenever the current scope is a
// function scope, so the function's body and any block directly inside it
// (a nested block, an if or while body) share the scope VisitFuncDecl
// created. A block inside any other scope, such as a for_loop body, gets a
// plain "block" scope of its own.
func (a *Analyzer) VisitBlock(n *ast.Block) any {
	needsNewScope := !a.current.IsFunctionScope()
	if needsNewScope {
		a.enterScope("block")
	}

	for _, stmt := range n.Stmts {
		stmt.Accept(a)
	}

	if needsNewScope {
		a.exitScope()
	}
	return nil
}

// VisitIf requires the condition type to be bool or int (C-style truthiness)
// and visits both branches.
func (a *Analyzer) VisitIf(n *ast.If) any {
	condType := a.typeOf(n.Cond)
	if condType != types.Bool && condType != types.Int {
		a.fail(n, "if condition must be boolean or integer, got %s", condType)
	}
	n.Then.Accept(a)
	if n.Else != nil {
		n.Else.Accept(a)
	}
	return nil
}

// VisitWhile requires the same bool-or-int condition rule as VisitIf.
func (a *Analyzer) VisitWhile(n *ast.While) any {
	condType := a.typeOf(n.Cond)
	if condType != types.Bool && condType != types.Int {
		a.fail(n, "while condition must be boolean or integer, got %s", condType)
	}
	n.Body.Accept(a)
	return nil
}

// VisitFor pushes a dedicated for_loop scope wrapping the init clause,
// condition, update and body, so a loop variable declared in the init
// clause is visible to all three and does not leak past the loop.
func (a *Analyzer) VisitFor(n *ast.For) any {
	a.enterScope("for_loop")
	defer a.exitScope()

	if n.Init != nil {
		n.Init.Accept(a)
	}
	if n.Cond != nil {
		condType := a.typeOf(n.Cond)
		if condType != types.Bool && condType != types.Int {
			a.fail(n, "for condition must be boolean or integer, got %s", condType)
		}
	}
	if n.Update != nil {
		a.typeOf(n.Update)
	}
	n.Body.Accept(a)
	return nil
}

// VisitReturn requires an enclosing function, and checks the returned
// expression's type against that function's declared return type.
func (a *Analyzer) VisitReturn(n *ast.Return) any {
	if a.currentFunction == nil {
		a.fail(n, "return statement outside of function")
		return nil
	}

	expected := a.currentFunction.RetType.Base
	if n.Expr != nil {
		exprType := a.typeOf(n.Expr)
		if exprType != expected {
			if _, ok := types.Promote(expected, exprType); !ok {
				a.fail(n, "return type mismatch: expected %s, got %s", expected, exprType)
			}
		}
	} else if expected != types.Void {
		a.fail(n, "function should return %s, but return statement has no value", expected)
	}
	return nil
}
