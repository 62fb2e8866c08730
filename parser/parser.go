/*
File    : gomix-cpp/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser builds a Program AST from a token stream via recursive
// descent. There is no panic-mode recovery: the first unexpected token
// records a syntax diagnostic and unwinds straight out of Parse, stopping
// the pipeline at the first error within this phase.
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/diag"
	"github.com/akashmaji946/gomix-cpp/lexer"
)

// Parser consumes a fixed token slice and produces an *ast.Program.
type Parser struct {
	tokens    []lexer.Token
	pos       int
	errors    []*diag.Diagnostic
	userTypes map[string]bool
}

// parseError is the panic payload used to unwind out of a broken production
// back to Parse's recover, after the offending diagnostic has already been
// recorded.
type parseError struct{}

// New tokenizes source and returns a Parser ready to build its AST.
// NEWLINE tokens carry no grammatical meaning in this language (unlike the
// preprocessor-directive-terminating role they play in the original C++
// subset's own hand-rolled recursive descent) and are filtered out up front
// so every other production can ignore them entirely.
func New(source string) *Parser {
	all := lexer.New(source).Tokenize()
	tokens := make([]lexer.Token, 0, len(all))
	for _, t := range all {
		if t.Kind != lexer.NEWLINE {
			tokens = append(tokens, t)
		}
	}
	return &Parser{tokens: tokens, userTypes: map[string]bool{}}
}

// HasErrors reports whether any syntax diagnostic was recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every syntax diagnostic recorded during Parse, in order.
func (p *Parser) Errors() []*diag.Diagnostic { return p.errors }

// Parse consumes the whole token stream and returns the resulting Program.
// The first syntax error encountered anywhere in the file unwinds straight
// out of this loop via the parseError panic recovered below — it does not
// resync and keep going, per this language's first-error-stops-the-phase
// contract.
func (p *Parser) Parse() (prog *ast.Program) {
	prog = &ast.Program{Pos: ast.Pos{Line: 1, Column: 1}}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
		}
	}()
	for !p.check(lexer.EOF) {
		decl := p.parseDecl()
		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
		}
	}
	return prog
}

// skipUnknownDirective advances past tokens until one that can start a
// fresh top-level declaration, or EOF. It backs the one named grammar-level
// tolerance this language has for preprocessor directives other than
// #include (spec's §7 "tolerated" list) — not panic-mode error recovery, so
// it is never reached by way of a recorded diagnostic.
func (p *Parser) skipUnknownDirective() {
	for !p.check(lexer.EOF) {
		switch p.current().Kind {
		case lexer.HASH, lexer.USING, lexer.CLASS, lexer.STRUCT,
			lexer.INT, lexer.FLOAT, lexer.DOUBLE, lexer.CHAR, lexer.BOOL, lexer.VOID:
			return
		}
		p.advance()
	}
}

// ---- token-stream primitives ----

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// check reports whether the current token is one of kinds, without
// consuming it.
func (p *Parser) check(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.current().Kind == k {
			return true
		}
	}
	return false
}

// match consumes and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...lexer.Kind) bool {
	if p.check(kinds...) {
		p.advance()
		return true
	}
	return false
}

// consume requires the current token to be kind, reporting a diagnostic and
// unwinding out of Parse if it isn't.
func (p *Parser) consume(kind lexer.Kind, context string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail("expected %s (%s), got %s %q", kind, context, p.current().Kind, p.current().Lexeme)
	panic(parseError{})
}

// fail records a syntax diagnostic at the current token's position.
func (p *Parser) fail(format string, args ...any) {
	tok := p.current()
	p.errors = append(p.errors, diag.New(diag.Syntax, tok.Line, tok.Column, format, args...))
}
