/*
File    : gomix-cpp/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the closed set of abstract syntax tree node variants
// produced by the parser: a strict tree with no cycles and no shared
// sub-nodes, where a node's position equals the position of the first token
// consumed to build it.
package ast

import "github.com/akashmaji946/gomix-cpp/types"

// Pos is the (line, column) of a node's first token.
type Pos struct {
	Line   int
	Column int
}

// Visitor implements the visitor pattern over the closed AST node set.
// The semantic analyzer and the evaluator are each a Visitor.
type Visitor interface {
	VisitProgram(n *Program) any
	VisitLiteral(n *Literal) any
	VisitIdentifier(n *Identifier) any
	VisitBinary(n *Binary) any
	VisitUnary(n *Unary) any
	VisitCall(n *Call) any
	VisitAssign(n *Assign) any
	VisitExprStmt(n *ExprStmt) any
	VisitVarDecl(n *VarDecl) any
	VisitBlock(n *Block) any
	VisitIf(n *If) any
	VisitWhile(n *While) any
	VisitFor(n *For) any
	VisitReturn(n *Return) any
	VisitFuncDecl(n *FuncDecl) any
	VisitClassDecl(n *ClassDecl) any
	VisitInclude(n *Include) any
	VisitUsingNamespace(n *UsingNamespace) any
}

// Node is the base of every AST node: expressions, statements and the root.
type Node interface {
	Position() Pos
	Accept(v Visitor) any
}

// Expr is a Node that produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that executes for effect. Every Expr can also appear
// wrapped in an ExprStmt; Stmt itself is not implemented by Expr nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level declaration: FuncDecl, ClassDecl, VarDecl, Include or
// UsingNamespace — anything that can appear directly inside Program.
type Decl interface {
	Node
	declNode()
}

// Param is a single (type, name) function parameter.
type Param struct {
	Type types.Type
	Name string
}

// ---- Root ----

// Program is the root of the AST: an ordered list of top-level declarations.
type Program struct {
	Pos          Pos
	Declarations []Decl
}

func (n *Program) Position() Pos        { return n.Pos }
func (n *Program) Accept(v Visitor) any { return v.VisitProgram(n) }

// ---- Expressions ----

// Literal is a literal value of a known type: integer, float, string, char
// or bool. Raw is the token's original lexeme (e.g. a string literal keeps
// its surrounding quotes here; the evaluator strips them at use).
type Literal struct {
	Pos  Pos
	Type types.Base
	Raw  string
}

func (n *Literal) Position() Pos        { return n.Pos }
func (n *Literal) Accept(v Visitor) any { return v.VisitLiteral(n) }
func (n *Literal) exprNode()            {}

// Identifier is a reference to a variable, parameter or function name.
type Identifier struct {
	Pos  Pos
	Name string
}

func (n *Identifier) Position() Pos        { return n.Pos }
func (n *Identifier) Accept(v Visitor) any { return v.VisitIdentifier(n) }
func (n *Identifier) exprNode()            {}

// Binary is a two-operand operator expression: arithmetic, comparison,
// logical, or the stream operator <<.
type Binary struct {
	Pos   Pos
	Op    string
	Left  Expr
	Right Expr
}

func (n *Binary) Position() Pos        { return n.Pos }
func (n *Binary) Accept(v Visitor) any { return v.VisitBinary(n) }
func (n *Binary) exprNode()            {}

// Unary is a one-operand operator expression: logical not, unary +/-, or
// prefix/postfix ++/--. Postfix distinguishes x++ from ++x.
type Unary struct {
	Pos     Pos
	Op      string
	Operand Expr
	Postfix bool
}

func (n *Unary) Position() Pos        { return n.Pos }
func (n *Unary) Accept(v Visitor) any { return v.VisitUnary(n) }
func (n *Unary) exprNode()            {}

// Call is a function invocation: an identifier callee followed by a
// parenthesised argument list. Non-identifier callees are rejected by the
// parser before a Call node is ever built.
type Call struct {
	Pos  Pos
	Name string
	Args []Expr
}

func (n *Call) Position() Pos        { return n.Pos }
func (n *Call) Accept(v Visitor) any { return v.VisitCall(n) }
func (n *Call) exprNode()            {}

// Assign is a right-associative assignment to a named target.
type Assign struct {
	Pos        Pos
	TargetName string
	Value      Expr
}

func (n *Assign) Position() Pos        { return n.Pos }
func (n *Assign) Accept(v Visitor) any { return v.VisitAssign(n) }
func (n *Assign) exprNode()            {}

// ---- Statements ----

// ExprStmt is an expression evaluated for its side effect, its value
// discarded.
type ExprStmt struct {
	Pos  Pos
	Expr Expr
}

func (n *ExprStmt) Position() Pos        { return n.Pos }
func (n *ExprStmt) Accept(v Visitor) any { return v.VisitExprStmt(n) }
func (n *ExprStmt) stmtNode()            {}

// VarDecl declares a local (or, at program scope, global) variable with an
// optional initializer. VarDecl is both a Stmt (inside a function body) and
// a Decl (at top level).
type VarDecl struct {
	Pos  Pos
	Type types.Type
	Name string
	Init Expr // nil if uninitialized
}

func (n *VarDecl) Position() Pos        { return n.Pos }
func (n *VarDecl) Accept(v Visitor) any { return v.VisitVarDecl(n) }
func (n *VarDecl) stmtNode()            {}
func (n *VarDecl) declNode()            {}

// Block is a brace-delimited sequence of statements.
type Block struct {
	Pos   Pos
	Stmts []Stmt
}

func (n *Block) Position() Pos        { return n.Pos }
func (n *Block) Accept(v Visitor) any { return v.VisitBlock(n) }
func (n *Block) stmtNode()            {}

// If is a conditional with an optional else branch.
type If struct {
	Pos  Pos
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (n *If) Position() Pos        { return n.Pos }
func (n *If) Accept(v Visitor) any { return v.VisitIf(n) }
func (n *If) stmtNode()            {}

// While is a pre-tested loop.
type While struct {
	Pos  Pos
	Cond Expr
	Body Stmt
}

func (n *While) Position() Pos        { return n.Pos }
func (n *While) Accept(v Visitor) any { return v.VisitWhile(n) }
func (n *While) stmtNode()            {}

// For is a C-style counted loop with optional init/cond/update clauses.
type For struct {
	Pos    Pos
	Init   Stmt // nil if absent
	Cond   Expr // nil if absent
	Update Expr // nil if absent
	Body   Stmt
}

func (n *For) Position() Pos        { return n.Pos }
func (n *For) Accept(v Visitor) any { return v.VisitFor(n) }
func (n *For) stmtNode()            {}

// Return exits the current function, optionally with a value.
type Return struct {
	Pos  Pos
	Expr Expr // nil if bare "return;"
}

func (n *Return) Position() Pos        { return n.Pos }
func (n *Return) Accept(v Visitor) any { return v.VisitReturn(n) }
func (n *Return) stmtNode()            {}

// ---- Declarations ----

// FuncDecl is a top-level function declaration with its body.
type FuncDecl struct {
	Pos     Pos
	RetType types.Type
	Name    string
	Params  []Param
	Body    *Block
}

func (n *FuncDecl) Position() Pos        { return n.Pos }
func (n *FuncDecl) Accept(v Visitor) any { return v.VisitFuncDecl(n) }
func (n *FuncDecl) declNode()            {}

// ClassMember is a single `type name;` member declaration inside a
// class/struct body. Unknown members are skipped by the parser before a
// ClassDecl is built, so every member that survives is a plain field decl.
type ClassMember struct {
	Type types.Type
	Name string
}

// ClassDecl registers a user-defined class or struct type name and its
// member list. Members are registered but otherwise unused — the language
// has no member access expressions.
type ClassDecl struct {
	Pos      Pos
	Name     string
	Members  []ClassMember
	IsStruct bool
}

func (n *ClassDecl) Position() Pos        { return n.Pos }
func (n *ClassDecl) Accept(v Visitor) any { return v.VisitClassDecl(n) }
func (n *ClassDecl) declNode()            {}

// Include is a `#include <header>` or `#include "header"` directive. Only
// its header text is kept; the directive has no further runtime effect.
type Include struct {
	Pos    Pos
	Header string
}

func (n *Include) Position() Pos        { return n.Pos }
func (n *Include) Accept(v Visitor) any { return v.VisitInclude(n) }
func (n *Include) declNode()            {}

// UsingNamespace is a `using namespace <name>;` directive.
type UsingNamespace struct {
	Pos       Pos
	Namespace string
}

func (n *UsingNamespace) Position() Pos        { return n.Pos }
func (n *UsingNamespace) Accept(v Visitor) any { return v.VisitUsingNamespace(n) }
func (n *UsingNamespace) declNode()            {}
