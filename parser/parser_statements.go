/*
File    : gomix-cpp/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/lexer"
)

// parseBlock parses a brace-delimited statement sequence.
func (p *Parser) parseBlock() *ast.Block {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.LBRACE, "'{'")

	block := &ast.Block{Pos: pos}
	for !p.check(lexer.RBRACE, lexer.EOF) {
		stmt := p.parseStmt()
		block.Stmts = append(block.Stmts, stmt)
	}
	p.consume(lexer.RBRACE, "'}'")
	return block
}

// parseStmt parses a single statement: a local variable declaration, an
// if/while/for/return statement, a nested block, or an expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.check(lexer.INT, lexer.FLOAT, lexer.DOUBLE, lexer.CHAR, lexer.BOOL,
		lexer.CONST, lexer.STD_STRING),
		p.check(lexer.IDENTIFIER) && p.userTypes[p.current().Lexeme]:
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		declType := p.parseType()
		name := p.consume(lexer.IDENTIFIER, "variable name").Lexeme
		return p.parseVarDeclTail(pos, declType, name)
	case p.check(lexer.IF):
		return p.parseIf()
	case p.check(lexer.WHILE):
		return p.parseWhile()
	case p.check(lexer.FOR):
		return p.parseFor()
	case p.check(lexer.RETURN):
		return p.parseReturn()
	case p.check(lexer.LBRACE):
		return p.parseBlock()
	default:
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		expr := p.parseExpression()
		p.consume(lexer.SEMI, "';'")
		return &ast.ExprStmt{Pos: pos, Expr: expr}
	}
}

// parseReturn parses `return [expr] ;`.
func (p *Parser) parseReturn() ast.Stmt {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.RETURN, "'return'")

	var expr ast.Expr
	if !p.check(lexer.SEMI) {
		expr = p.parseExpression()
	}
	p.consume(lexer.SEMI, "';'")
	return &ast.Return{Pos: pos, Expr: expr}
}
