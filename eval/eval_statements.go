/*
File    : gomix-cpp/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomix-cpp/ast"
)

// execStmt executes one statement and returns how control should continue:
// Normal to fall through, or a Returned value to unwind to the nearest
// enclosing call.
func (e *Evaluator) execStmt(stmt ast.Stmt) StepResult {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		e.evalVarDecl(e.frame, s)
		return Normal()
	case *ast.ExprStmt:
		e.evalExpr(s.Expr)
		return Normal()
	case *ast.Block:
		return e.execBlock(s)
	case *ast.If:
		if e.evalExpr(s.Cond).IsTruthy() {
			return e.execStmt(s.Then)
		}
		if s.Else != nil {
			return e.execStmt(s.Else)
		}
		return Normal()
	case *ast.While:
		for e.evalExpr(s.Cond).IsTruthy() {
			result := e.execStmt(s.Body)
			if result.IsReturn {
				return result
			}
		}
		return Normal()
	case *ast.For:
		return e.execFor(s)
	case *ast.Return:
		if s.Expr == nil {
			return Returned(defaultValue(""))
		}
		return Returned(e.evalExpr(s.Expr))
	}
	e.runtimeError(stmt.Position(), "unsupported statement %T", stmt)
	panic("unreachable")
}

// execBlock runs a brace-delimited statement sequence. It skips pushing a
// fresh frame when the current frame is already a function's own top-level
// frame — mirroring semantic.Analyzer's identical rule for VisitBlock — so
// a function's parameters and its body's locals live in exactly one frame,
// never two.
func (e *Evaluator) execBlock(n *ast.Block) StepResult {
	needsNewFrame := !e.frame.isFunctionFrame
	if needsNewFrame {
		e.pushFrame()
		defer e.popFrame()
	}

	for _, stmt := range n.Stmts {
		result := e.execStmt(stmt)
		if result.IsReturn {
			return result
		}
	}
	return Normal()
}

// execFor runs a C-style loop in its own dedicated frame so its init
// clause's variable is visible to the condition, update and body but goes
// out of scope once the loop ends.
func (e *Evaluator) execFor(n *ast.For) StepResult {
	e.pushFrame()
	defer e.popFrame()

	if n.Init != nil {
		e.execStmt(n.Init)
	}
	for n.Cond == nil || e.evalExpr(n.Cond).IsTruthy() {
		result := e.execStmt(n.Body)
		if result.IsReturn {
			return result
		}
		if n.Update != nil {
			e.evalExpr(n.Update)
		}
	}
	return Normal()
}

// evalVarDecl evaluates a declaration's optional initializer, falling back
// to the type's default value, and binds it in frame.
func (e *Evaluator) evalVarDecl(frame *Frame, n *ast.VarDecl) {
	if n.Init != nil {
		frame.Define(n.Name, e.evalExpr(n.Init))
		return
	}
	frame.Define(n.Name, defaultValue(n.Type.Base))
}
