/*
File    : gomix-cpp/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/lexer"
)

// parseFor parses `for ( init ; cond ; update ) body`, where all three
// clauses inside the parens are individually optional.
func (p *Parser) parseFor() ast.Stmt {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.FOR, "'for'")
	p.consume(lexer.LPAREN, "'('")

	var init ast.Stmt
	if !p.check(lexer.SEMI) {
		if p.check(lexer.INT, lexer.FLOAT, lexer.DOUBLE, lexer.CHAR, lexer.BOOL) {
			declPos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
			declType := p.parseType()
			name := p.consume(lexer.IDENTIFIER, "variable name").Lexeme
			var varInit ast.Expr
			if p.match(lexer.ASSIGN) {
				varInit = p.parseExpression()
			}
			init = &ast.VarDecl{Pos: declPos, Type: declType, Name: name, Init: varInit}
		} else {
			exprPos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
			init = &ast.ExprStmt{Pos: exprPos, Expr: p.parseExpression()}
		}
	}
	p.consume(lexer.SEMI, "';'")

	var cond ast.Expr
	if !p.check(lexer.SEMI) {
		cond = p.parseExpression()
	}
	p.consume(lexer.SEMI, "';'")

	var update ast.Expr
	if !p.check(lexer.RPAREN) {
		update = p.parseExpression()
	}
	p.consume(lexer.RPAREN, "')'")

	body := p.parseStmt()

	return &ast.For{Pos: pos, Init: init, Cond: cond, Update: update, Body: body}
}
