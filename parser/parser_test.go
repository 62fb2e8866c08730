/*
File    : gomix-cpp/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/types"
)

func TestParser_VariableDeclaration(t *testing.T) {
	p := New(`int x = 10;`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, prog.Declarations, 1)

	decl, ok := prog.Declarations[0].(*ast.VarDecl)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, types.Int, decl.Type.Base)
	lit, ok := decl.Init.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "10", lit.Raw)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	p := New(`int add(int a, int b) { return a + b; }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, prog.Declarations, 1)

	fn, ok := prog.Declarations[0].(*ast.FuncDecl)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, types.Int, fn.RetType.Base)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Len(t, fn.Body.Stmts, 1)

	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	assert.True(t, ok)
	bin, ok := ret.Expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParser_ShiftBindsTighterThanAdditive(t *testing.T) {
	// a + b << c parses as a + (b << c): parseAdditive's right-hand operand
	// is obtained through parseShift, so a trailing '<<' greedily attaches
	// to b before '+' ever gets to combine with it.
	p := New(`void main() { a + b << c; }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	exprStmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer, ok := exprStmt.Expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", outer.Op)

	right, ok := outer.Right.(*ast.Binary)
	assert.True(t, ok, "b << c should be the right operand of +, not the other way around")
	assert.Equal(t, "<<", right.Op)
}

func TestParser_IfElse(t *testing.T) {
	p := New(`int main() { if (x > 0) { return 1; } else { return 0; } }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	ifStmt, ok := fn.Body.Stmts[0].(*ast.If)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParser_ForLoop(t *testing.T) {
	p := New(`int main() { for (int i = 0; i < 10; i++) { } }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	forStmt, ok := fn.Body.Stmts[0].(*ast.For)
	assert.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Update)
}

func TestParser_PostfixVsPrefixIncrement(t *testing.T) {
	p := New(`void main() { x++; ++x; }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	fn := prog.Declarations[0].(*ast.FuncDecl)

	post := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.Unary)
	assert.True(t, post.Postfix)

	pre := fn.Body.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Unary)
	assert.False(t, pre.Postfix)
}

func TestParser_Assignment(t *testing.T) {
	p := New(`void main() { x = 5; }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	assign, ok := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.TargetName)
}

func TestParser_InvalidAssignmentTargetIsRecordedAsError(t *testing.T) {
	p := New(`void main() { 1 = 2; }`)
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_IncludeDirective(t *testing.T) {
	p := New(`#include <iostream>
using namespace std;
int main() { return 0; }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, prog.Declarations, 3)

	inc, ok := prog.Declarations[0].(*ast.Include)
	assert.True(t, ok)
	assert.Equal(t, "<iostream>", inc.Header)

	using, ok := prog.Declarations[1].(*ast.UsingNamespace)
	assert.True(t, ok)
	assert.Equal(t, "std", using.Namespace)
}

func TestParser_ClassDeclarationWithMembersAndOptionalSemicolon(t *testing.T) {
	p := New(`class Point {
		int x;
		int y;
	};`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	cls, ok := prog.Declarations[0].(*ast.ClassDecl)
	assert.True(t, ok)
	assert.Equal(t, "Point", cls.Name)
	assert.False(t, cls.IsStruct)
	assert.Len(t, cls.Members, 2)
}

func TestParser_UserDefinedTypeUsableAfterClassDeclaration(t *testing.T) {
	p := New(`struct Point { int x; };
Point origin() { }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, prog.Declarations, 2)
	fn, ok := prog.Declarations[1].(*ast.FuncDecl)
	assert.True(t, ok)
	assert.Equal(t, types.Base("Point"), fn.RetType.Base)
}

func TestParser_CoutChainParsesAsLeftNestedShift(t *testing.T) {
	p := New(`void main() { std::cout << "sum = " << sum << std::endl; }`)
	prog := p.Parse()
	assert.False(t, p.HasErrors())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	exprStmt := fn.Body.Stmts[0].(*ast.ExprStmt)

	// left-nested: (((cout << "sum = ") << sum) << endl)
	outer, ok := exprStmt.Expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "<<", outer.Op)
	_, ok = outer.Right.(*ast.Identifier)
	assert.True(t, ok)

	mid, ok := outer.Left.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "<<", mid.Op)
}

func TestParser_FirstSyntaxErrorStopsParsingImmediately(t *testing.T) {
	p := New(`int broken( { }
int ok() { return 1; }`)
	prog := p.Parse()
	assert.True(t, p.HasErrors())
	assert.Len(t, p.Errors(), 1)
	// parsing stops at the first error: the well-formed second function is
	// never reached, so it never shows up in the AST.
	var names []string
	for _, d := range prog.Declarations {
		if fn, ok := d.(*ast.FuncDecl); ok {
			names = append(names, fn.Name)
		}
	}
	assert.NotContains(t, names, "ok")
}
