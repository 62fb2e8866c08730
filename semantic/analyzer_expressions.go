/*
File    : gomix-cpp/semantic/analyzer_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package semantic

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/scope"
	"github.com/akashmaji946/gomix-cpp/types"
)

// VisitLiteral returns the literal's already-known type: the parser fixed
// it from the token kind, so no further inference is needed here.
func (a *Analyzer) VisitLiteral(n *ast.Literal) any {
	return n.Type
}

// VisitIdentifier resolves a name against the scope chain, reporting both
// undefined names and reads of a variable before it was ever assigned.
func (a *Analyzer) VisitIdentifier(n *ast.Identifier) any {
	sym, ok := a.current.Lookup(n.Name)
	if !ok {
		a.fail(n, "undefined identifier: %s", n.Name)
		return types.Unknown
	}
	if sym.Kind == scope.VariableSymbol && !sym.Initialized {
		a.fail(n, "variable '%s' used before initialization", n.Name)
	}
	return sym.DataType.Base
}

// VisitBinary dispatches on the operator family: comparisons always yield
// bool after a compatibility check, logical operators require bool-or-int
// operands, '<<' requires an ostream left operand (the only way this
// language writes output), and the arithmetic operators use the promotion
// lattice with a dedicated '+' string-concatenation carve-out.
func (a *Analyzer) VisitBinary(n *ast.Binary) any {
	leftType := a.typeOf(n.Left)
	rightType := a.typeOf(n.Right)

	switch n.Op {
	case "==", "!=", "<", ">", "<=", ">=":
		if _, ok := types.Promote(leftType, rightType); !ok {
			a.fail(n, "cannot compare %s and %s", leftType, rightType)
		}
		return types.Bool

	case "&&", "||":
		if !numericOrBool(leftType) || !numericOrBool(rightType) {
			a.fail(n, "logical operators require boolean operands")
		}
		return types.Bool

	case "<<":
		if leftType != types.Ostream {
			a.fail(n, "left shift operator requires ostream on left side, got %s", leftType)
			return types.Unknown
		}
		return types.Ostream

	case "+", "-", "*", "/", "%":
		result, ok := types.Promote(leftType, rightType)
		if !ok {
			a.fail(n, "cannot perform %s on %s and %s", n.Op, leftType, rightType)
			return types.Unknown
		}
		if leftType == types.String || rightType == types.String {
			if n.Op == "+" {
				return types.String
			}
			a.fail(n, "cannot perform %s on strings", n.Op)
			return types.Unknown
		}
		return result

	default:
		a.fail(n, "unknown binary operator: %s", n.Op)
		return types.Unknown
	}
}

func numericOrBool(t types.Base) bool {
	return t == types.Bool || t == types.Int
}

func numeric(t types.Base) bool {
	return t == types.Int || t == types.Float || t == types.Double
}

// VisitUnary checks '!' against bool/int, unary +/- against any numeric
// type, and ++/--/postfix-++/postfix-- against both numeric-ness and that
// the operand is a plain identifier (no other expression is assignable).
func (a *Analyzer) VisitUnary(n *ast.Unary) any {
	operandType := a.typeOf(n.Operand)

	switch n.Op {
	case "!":
		if !numericOrBool(operandType) {
			a.fail(n, "logical NOT requires boolean operand, got %s", operandType)
		}
		return types.Bool

	case "+", "-":
		if !numeric(operandType) {
			a.fail(n, "unary %s requires numeric operand, got %s", n.Op, operandType)
		}
		return operandType

	case "++", "--":
		if !numeric(operandType) {
			a.fail(n, "increment/decrement requires numeric operand, got %s", operandType)
		}
		if _, ok := n.Operand.(*ast.Identifier); !ok {
			a.fail(n, "increment/decrement requires assignable operand")
		}
		return operandType

	default:
		a.fail(n, "unknown unary operator: %s", n.Op)
		return types.Unknown
	}
}

// VisitAssign requires the target to already be a defined variable, checks
// the assigned value's type, marks the symbol initialized, and returns the
// variable's declared type.
func (a *Analyzer) VisitAssign(n *ast.Assign) any {
	sym, ok := a.current.Lookup(n.TargetName)
	if !ok {
		a.fail(n, "undefined variable: %s", n.TargetName)
		return types.Unknown
	}
	if sym.Kind != scope.VariableSymbol {
		a.fail(n, "cannot assign to %s", sym.Kind)
		return types.Unknown
	}

	valueType := a.typeOf(n.Value)
	if valueType != sym.DataType.Base {
		if _, ok := types.Promote(sym.DataType.Base, valueType); !ok {
			a.fail(n, "cannot assign %s to %s", valueType, sym.DataType.Base)
			return sym.DataType.Base
		}
	}

	sym.Initialized = true
	return sym.DataType.Base
}

// VisitCall resolves the callee, checks argument count and, per argument,
// its type against the declared parameter type.
func (a *Analyzer) VisitCall(n *ast.Call) any {
	if n.Name == "cout" {
		return types.Ostream
	}

	sym, ok := a.current.Lookup(n.Name)
	if !ok {
		a.fail(n, "undefined function: %s", n.Name)
		return types.Unknown
	}
	if sym.Kind != scope.FunctionSymbol {
		a.fail(n, "'%s' is not a function", n.Name)
		return types.Unknown
	}

	if len(n.Args) != len(sym.Params) {
		a.fail(n, "function '%s' expects %d arguments, got %d", n.Name, len(sym.Params), len(n.Args))
		return sym.ReturnType.Base
	}

	for i, arg := range n.Args {
		argType := a.typeOf(arg)
		paramType := sym.Params[i].Base
		if argType != paramType {
			if _, ok := types.Promote(paramType, argType); !ok {
				a.fail(n, "argument %d type mismatch: expected %s, got %s", i+1, paramType, argType)
			}
		}
	}

	return sym.ReturnType.Base
}
