/*
File    : gomix-cpp/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/lexer"
	"github.com/akashmaji946/gomix-cpp/types"
)

// parsePrimary parses a literal, an identifier (including the fused
// std::cout / std::endl / std::string names, which parse as plain
// identifiers and are resolved by name during semantic analysis), or a
// parenthesised sub-expression.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current()
	pos := ast.Pos{Line: tok.Line, Column: tok.Column}

	switch tok.Kind {
	case lexer.INTEGER_LITERAL:
		p.advance()
		return &ast.Literal{Pos: pos, Type: types.Int, Raw: tok.Lexeme}
	case lexer.FLOAT_LITERAL:
		p.advance()
		return &ast.Literal{Pos: pos, Type: types.Float, Raw: tok.Lexeme}
	case lexer.STRING_LITERAL:
		p.advance()
		return &ast.Literal{Pos: pos, Type: types.String, Raw: tok.Lexeme}
	case lexer.CHAR_LITERAL:
		p.advance()
		return &ast.Literal{Pos: pos, Type: types.Char, Raw: tok.Lexeme}
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &ast.Literal{Pos: pos, Type: types.Bool, Raw: tok.Lexeme}
	case lexer.IDENTIFIER, lexer.STD_COUT, lexer.STD_ENDL, lexer.STD_STRING:
		p.advance()
		return &ast.Identifier{Pos: pos, Name: tok.Lexeme}
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.consume(lexer.RPAREN, "')'")
		return expr
	}

	p.fail("unexpected token %s %q", tok.Kind, tok.Lexeme)
	panic(parseError{})
}
