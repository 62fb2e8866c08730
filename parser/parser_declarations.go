/*
File    : gomix-cpp/parser/parser_declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/lexer"
	"github.com/akashmaji946/gomix-cpp/types"
)

// parseDecl parses one top-level declaration: a preprocessor directive, a
// using-namespace directive, a class/struct declaration, or a function or
// global-variable declaration introduced by a type: a builtin type keyword,
// const, std::string, or a previously declared class/struct name.
func (p *Parser) parseDecl() ast.Decl {
	switch {
	case p.check(lexer.HASH):
		return p.parsePreprocessor()
	case p.check(lexer.USING):
		return p.parseUsingNamespace()
	case p.check(lexer.CLASS, lexer.STRUCT):
		return p.parseClassDecl()
	case p.check(lexer.INT, lexer.FLOAT, lexer.DOUBLE, lexer.CHAR, lexer.BOOL, lexer.VOID,
		lexer.CONST, lexer.STD_STRING),
		p.check(lexer.IDENTIFIER) && p.userTypes[p.current().Lexeme]:
		return p.parseFuncOrVar()
	}
	p.fail("expected a declaration, got %s %q", p.current().Kind, p.current().Lexeme)
	panic(parseError{})
}

// parsePreprocessor parses `#include <header>` or `#include "header"`.
// Any other preprocessor line is tolerated, per spec, and skipped to the
// next token that could start a declaration, contributing no Decl. This is
// a grammar-level tolerance for a specific named construct, not panic-mode
// error recovery: it never follows a recorded diagnostic.
func (p *Parser) parsePreprocessor() ast.Decl {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.HASH, "'#'")

	if !p.match(lexer.INCLUDE) {
		p.skipUnknownDirective()
		return nil
	}

	header := ""
	if p.match(lexer.LT) {
		header = "<"
		for !p.check(lexer.GT, lexer.EOF) {
			header += p.advance().Lexeme
		}
		if p.match(lexer.GT) {
			header += ">"
		}
	} else if p.check(lexer.STRING_LITERAL) {
		header = p.advance().Lexeme
	}

	return &ast.Include{Pos: pos, Header: header}
}

// parseUsingNamespace parses `using namespace <name>;`. Any identifier-like
// token is accepted as the namespace name; whether it actually is "std" is a
// semantic concern, not a grammatical one.
func (p *Parser) parseUsingNamespace() ast.Decl {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	p.consume(lexer.USING, "'using'")
	p.consume(lexer.NAMESPACE, "'namespace'")

	var namespace string
	if p.check(lexer.STD) {
		namespace = p.advance().Lexeme
	} else {
		namespace = p.consume(lexer.IDENTIFIER, "namespace name").Lexeme
	}
	p.consume(lexer.SEMI, "';'")

	return &ast.UsingNamespace{Pos: pos, Namespace: namespace}
}

// parseClassDecl parses `class Name [: ...] { members } [;]` or the
// `struct` spelling. An optional inheritance clause is skipped token-by-token
// up to the opening brace. Members are `type name;` pairs; anything else
// inside the body is skipped rather than rejected.
func (p *Parser) parseClassDecl() ast.Decl {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	isStruct := p.check(lexer.STRUCT)
	p.advance() // 'class' or 'struct'
	name := p.consume(lexer.IDENTIFIER, "type name").Lexeme
	p.userTypes[name] = true

	if p.match(lexer.COLON) {
		for !p.check(lexer.LBRACE, lexer.EOF) {
			p.advance()
		}
	}
	p.consume(lexer.LBRACE, "'{'")

	var members []ast.ClassMember
	for !p.check(lexer.RBRACE, lexer.EOF) {
		if p.check(lexer.INT, lexer.FLOAT, lexer.DOUBLE, lexer.CHAR, lexer.BOOL) {
			mtype := p.parseType()
			mname := p.consume(lexer.IDENTIFIER, "member name").Lexeme
			p.consume(lexer.SEMI, "';'")
			members = append(members, ast.ClassMember{Type: mtype, Name: mname})
		} else {
			p.advance()
		}
	}
	p.consume(lexer.RBRACE, "'}'")
	p.match(lexer.SEMI)

	return &ast.ClassDecl{Pos: pos, Name: name, Members: members, IsStruct: isStruct}
}

// parseType parses an optional const qualifier, a base type — one of the
// builtin keywords, std::string, or a previously declared class/struct name
// — followed by an optional single level of '*' and '&'.
func (p *Parser) parseType() types.Type {
	isConst := p.match(lexer.CONST)

	var base types.Base
	switch {
	case p.check(lexer.INT):
		base = types.Int
	case p.check(lexer.FLOAT):
		base = types.Float
	case p.check(lexer.DOUBLE):
		base = types.Double
	case p.check(lexer.CHAR):
		base = types.Char
	case p.check(lexer.BOOL):
		base = types.Bool
	case p.check(lexer.VOID):
		base = types.Void
	case p.check(lexer.STD_STRING):
		base = types.String
	case p.check(lexer.IDENTIFIER) && p.userTypes[p.current().Lexeme]:
		base = types.Base(p.current().Lexeme)
	default:
		p.fail("expected a type, got %s %q", p.current().Kind, p.current().Lexeme)
		panic(parseError{})
	}
	p.advance()

	isPointer := p.match(lexer.STAR)
	isReference := p.match(lexer.AMP)

	return types.Type{Base: base, IsConst: isConst, IsPointer: isPointer, IsReference: isReference}
}

// parseFuncOrVar disambiguates a function declaration from a global variable
// declaration by looking one token past the name for '('.
func (p *Parser) parseFuncOrVar() ast.Decl {
	pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
	declType := p.parseType()
	name := p.consume(lexer.IDENTIFIER, "declaration name").Lexeme

	if p.check(lexer.LPAREN) {
		return p.parseFuncTail(pos, declType, name)
	}
	return p.parseVarDeclTail(pos, declType, name)
}

// parseFuncTail parses the parameter list and body of a function whose
// return type and name have already been consumed.
func (p *Parser) parseFuncTail(pos ast.Pos, retType types.Type, name string) *ast.FuncDecl {
	p.consume(lexer.LPAREN, "'('")
	var params []ast.Param
	if !p.check(lexer.RPAREN) {
		params = append(params, p.parseParam())
		for p.match(lexer.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.consume(lexer.RPAREN, "')'")
	body := p.parseBlock()

	return &ast.FuncDecl{Pos: pos, RetType: retType, Name: name, Params: params, Body: body}
}

func (p *Parser) parseParam() ast.Param {
	t := p.parseType()
	name := p.consume(lexer.IDENTIFIER, "parameter name").Lexeme
	return ast.Param{Type: t, Name: name}
}

// parseVarDeclTail parses the optional `= initializer` and terminating ';'
// of a variable declaration whose type and name have already been consumed.
func (p *Parser) parseVarDeclTail(pos ast.Pos, declType types.Type, name string) *ast.VarDecl {
	var init ast.Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	p.consume(lexer.SEMI, "';'")
	return &ast.VarDecl{Pos: pos, Type: declType, Name: name, Init: init}
}
