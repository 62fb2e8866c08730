/*
File    : gomix-cpp/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// kindsAndLexemes strips position info so tests can compare token shape only.
func kindsAndLexemes(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, NewToken(t.Kind, t.Lexeme))
	}
	return out
}

func TestLexer_Numbers(t *testing.T) {
	tokens := kindsAndLexemes(New("123 3.14 0").Tokenize())
	assert.Equal(t, []Token{
		NewToken(INTEGER_LITERAL, "123"),
		NewToken(FLOAT_LITERAL, "3.14"),
		NewToken(INTEGER_LITERAL, "0"),
		NewToken(EOF, ""),
	}, tokens)
}

func TestLexer_StringAndCharLiterals(t *testing.T) {
	tokens := kindsAndLexemes(New(`"hi\n" 'a'`).Tokenize())
	assert.Equal(t, []Token{
		NewToken(STRING_LITERAL, `"hi\n"`),
		NewToken(CHAR_LITERAL, `'a'`),
		NewToken(EOF, ""),
	}, tokens)
}

func TestLexer_Keywords(t *testing.T) {
	tokens := kindsAndLexemes(New("int x = 1; return x;").Tokenize())
	assert.Equal(t, []Token{
		NewToken(INT, "int"),
		NewToken(IDENTIFIER, "x"),
		NewToken(ASSIGN, "="),
		NewToken(INTEGER_LITERAL, "1"),
		NewToken(SEMI, ";"),
		NewToken(RETURN, "return"),
		NewToken(IDENTIFIER, "x"),
		NewToken(SEMI, ";"),
		NewToken(EOF, ""),
	}, tokens)
}

func TestLexer_TwoCharOperatorsBeatSingleChar(t *testing.T) {
	tokens := kindsAndLexemes(New("a==b a<=b a<<b a++ a--").Tokenize())
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{
		IDENTIFIER, EQ, IDENTIFIER,
		IDENTIFIER, LE, IDENTIFIER,
		IDENTIFIER, SHL, IDENTIFIER,
		IDENTIFIER, INC,
		IDENTIFIER, DEC,
		EOF,
	}, kinds)
}

func TestLexer_StdFusion(t *testing.T) {
	tokens := kindsAndLexemes(New("std::cout std::endl std::string std::foo std::").Tokenize())
	assert.Equal(t, []Token{
		NewToken(STD_COUT, "std::cout"),
		NewToken(STD_ENDL, "std::endl"),
		NewToken(STD_STRING, "std::string"),
		NewToken(IDENTIFIER, "std::foo"),
		NewToken(STD, "std"),
		NewToken(SCOPE_RES, "::"),
		NewToken(EOF, ""),
	}, tokens)
}

func TestLexer_CommentsAndWhitespaceStripped(t *testing.T) {
	src := "int x; // trailing comment\n/* block\ncomment */ int y;"
	tokens := kindsAndLexemes(New(src).Tokenize())
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{
		INT, IDENTIFIER, SEMI, NEWLINE, INT, IDENTIFIER, SEMI, EOF,
	}, kinds)
}

func TestLexer_UnknownByteBecomesUnknownToken(t *testing.T) {
	tokens := New("int x = 1 @ 2;").Tokenize()
	found := false
	for _, tok := range tokens {
		if tok.Kind == UNKNOWN {
			found = true
			assert.Equal(t, "@", tok.Lexeme)
		}
	}
	assert.True(t, found, "expected an UNKNOWN token for '@'")
}

func TestLexer_LineColumnTracking(t *testing.T) {
	tokens := New("int x;\nint y;").Tokenize()
	// first token of second line should be at line 2, column 1
	for _, tok := range tokens {
		if tok.Kind == INT && tok.Line == 2 {
			assert.Equal(t, 1, tok.Column)
			return
		}
	}
	t.Fatal("did not find second 'int' token on line 2")
}

func TestLexer_AlwaysEndsWithExactlyOneEOF(t *testing.T) {
	tokens := New("int main() { return 0; }").Tokenize()
	assert.Equal(t, EOF, tokens[len(tokens)-1].Kind)
	count := 0
	for _, tok := range tokens {
		if tok.Kind == EOF {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
