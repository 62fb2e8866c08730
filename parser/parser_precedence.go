/*
File    : gomix-cpp/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/lexer"
)

// Expression precedence, loosest to tightest:
//
//	assignment  (right-assoc, =)
//	logical or  (||)
//	logical and (&&)
//	equality    (== !=)
//	relational  (< > <= >=)
//	additive    (+ -)
//	shift       (<<)
//	multiplicative (* / %)
//	unary       (! - + ++ --, prefix)
//	postfix     (call, ++ -- postfix)
//	primary
//
// shift sits between additive and multiplicative rather than below
// relational: this puts `a + b << c` through parseAdditive first, which
// descends into parseShift before it ever sees the '+', so `<<` binds
// tighter than '+' and the result is `a + (b << c)`. That one case is the
// only place this cascade is ever exercised, since the language's sole use
// of '<<' is chained cout output.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment parses a right-associative `target = value`. The target
// must already have parsed as a bare Identifier; anything else on the left
// of '=' is a syntax error.
func (p *Parser) parseAssignment() ast.Expr {
	expr := p.parseLogicalOr()

	if p.check(lexer.ASSIGN) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		p.advance()
		value := p.parseAssignment()
		ident, ok := expr.(*ast.Identifier)
		if !ok {
			p.fail("invalid assignment target")
			panic(parseError{})
		}
		return &ast.Assign{Pos: pos, TargetName: ident.Name, Value: value}
	}

	return expr
}

func (p *Parser) parseLogicalOr() ast.Expr {
	expr := p.parseLogicalAnd()
	for p.check(lexer.OR) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseLogicalAnd()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	expr := p.parseEquality()
	for p.check(lexer.AND) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseEquality()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) parseEquality() ast.Expr {
	expr := p.parseRelational()
	for p.check(lexer.EQ, lexer.NEQ) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseRelational()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) parseRelational() ast.Expr {
	expr := p.parseAdditive()
	for p.check(lexer.LT, lexer.GT, lexer.LE, lexer.GE) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseAdditive()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) parseAdditive() ast.Expr {
	expr := p.parseShift()
	for p.check(lexer.PLUS, lexer.MINUS) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseShift()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

// parseShift handles '<<', used exclusively for chained std::cout output in
// this language.
func (p *Parser) parseShift() ast.Expr {
	expr := p.parseMultiplicative()
	for p.check(lexer.SHL) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseMultiplicative()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) parseMultiplicative() ast.Expr {
	expr := p.parseUnary()
	for p.check(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		right := p.parseUnary()
		expr = &ast.Binary{Pos: pos, Op: op, Left: expr, Right: right}
	}
	return expr
}

// parseUnary parses prefix '!', unary '-'/'+' and prefix '++'/'--', and
// recurses right so stacked prefix operators such as `!-x` nest. `--x`
// arrives as one DEC token and becomes a single prefix decrement.
func (p *Parser) parseUnary() ast.Expr {
	if p.check(lexer.NOT, lexer.MINUS, lexer.PLUS, lexer.INC, lexer.DEC) {
		pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
		op := p.advance().Lexeme
		operand := p.parseUnary()
		return &ast.Unary{Pos: pos, Op: op, Operand: operand, Postfix: false}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by any number of call or postfix
// ++/-- suffixes, left to right.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.check(lexer.LPAREN):
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				p.fail("invalid function call target")
				panic(parseError{})
			}
			pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
			p.advance()
			var args []ast.Expr
			if !p.check(lexer.RPAREN) {
				args = append(args, p.parseExpression())
				for p.match(lexer.COMMA) {
					args = append(args, p.parseExpression())
				}
			}
			p.consume(lexer.RPAREN, "')'")
			expr = &ast.Call{Pos: pos, Name: ident.Name, Args: args}
		case p.check(lexer.INC, lexer.DEC):
			pos := ast.Pos{Line: p.current().Line, Column: p.current().Column}
			op := p.advance().Lexeme
			expr = &ast.Unary{Pos: pos, Op: op, Operand: expr, Postfix: true}
		default:
			return expr
		}
	}
}
