/*
File    : gomix-cpp/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/lexer"
)

// parseIf parses `if ( cond ) then [else else-stmt]`.
func (p *Parser) parseIf() ast.Stmt {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.IF, "'if'")
	p.consume(lexer.LPAREN, "'('")
	cond := p.parseExpression()
	p.consume(lexer.RPAREN, "')'")

	then := p.parseStmt()
	var elseStmt ast.Stmt
	if p.match(lexer.ELSE) {
		elseStmt = p.parseStmt()
	}

	return &ast.If{Pos: pos, Cond: cond, Then: then, Else: elseStmt}
}

// parseWhile parses `while ( cond ) body`.
func (p *Parser) parseWhile() ast.Stmt {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.WHILE, "'while'")
	p.consume(lexer.LPAREN, "'('")
	cond := p.parseExpression()
	p.consume(lexer.RPAREN, "')'")
	body := p.parseStmt()

	return &ast.While{Pos: pos, Cond: cond, Body: body}
}
