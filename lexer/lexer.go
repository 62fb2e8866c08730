/*
File    : gomix-cpp/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// Lexer scans raw UTF-8 source into a Token stream. Scanning is single-pass,
// left-to-right, longest-match; it never fails — unrecognised bytes become
// UNKNOWN tokens and are rejected downstream by the parser.
type Lexer struct {
	src     string
	pos     int
	line    int
	column  int
	pending *Token // a token already produced but not yet returned (std:: edge case)
}

// New creates a Lexer positioned at the start of source.
func New(source string) *Lexer {
	return &Lexer{src: source, pos: 0, line: 1, column: 1}
}

// Tokenize scans the entire source and returns its token stream, always
// terminated by exactly one EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens
}

func (l *Lexer) current() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek(offset int) byte {
	p := l.pos + offset
	if p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.current() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

// skipComment consumes a line comment ("// ... \n") or a non-nesting block
// comment ("/* ... */"). Caller has already confirmed the current char is
// '/' and the next is '/' or '*'.
func (l *Lexer) skipComment() {
	if l.peek(1) == '/' {
		for l.pos < len(l.src) && l.current() != '\n' {
			l.advance()
		}
		return
	}
	l.advance() // '/'
	l.advance() // '*'
	for l.pos < len(l.src) {
		if l.current() == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// readQuoted reads a '"'- or '\''-delimited literal, keeping the surrounding
// quotes and passing escape sequences through verbatim (backslash plus the
// escaped char, undecoded) — the evaluator decodes at use per spec.
func (l *Lexer) readQuoted() string {
	quote := l.current()
	var out []byte
	out = append(out, quote)
	l.advance()
	for l.pos < len(l.src) && l.current() != quote {
		if l.current() == '\\' {
			out = append(out, l.current())
			l.advance()
			if l.pos < len(l.src) {
				out = append(out, l.current())
				l.advance()
			}
			continue
		}
		out = append(out, l.current())
		l.advance()
	}
	if l.current() == quote {
		out = append(out, quote)
		l.advance()
	}
	return string(out)
}

func (l *Lexer) readNumber() (string, Kind) {
	start := l.pos
	kind := INTEGER_LITERAL
	for l.pos < len(l.src) && (isDigit(l.current()) || l.current() == '.') {
		if l.current() == '.' {
			kind = FLOAT_LITERAL
		}
		l.advance()
	}
	return l.src[start:l.pos], kind
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for l.pos < len(l.src) && (isAlnum(l.current()) || l.current() == '_') {
		l.advance()
	}
	return l.src[start:l.pos]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

// twoCharOps lists two-character operators. Order doesn't matter here since
// lookup is by exact two-byte key, but the caller always tries this table
// before the single-char table, guaranteeing longest-match.
var twoCharOps = map[string]Kind{
	"==": EQ, "!=": NEQ, "<=": LE, ">=": GE,
	"&&": AND, "||": OR, "++": INC, "--": DEC,
	"->": ARROW, "::": SCOPE_RES, "<<": SHL,
}

var singleCharOps = map[byte]Kind{
	'+': PLUS, '-': MINUS, '*': STAR, '/': SLASH, '%': PERCENT,
	'=': ASSIGN, '<': LT, '>': GT, '!': NOT,
	';': SEMI, ',': COMMA, '(': LPAREN, ')': RPAREN,
	'{': LBRACE, '}': RBRACE, '[': LBRACKET, ']': RBRACKET,
	'.': DOT, '#': HASH, '&': AMP, ':': COLON,
}

// next scans and returns the single next token, advancing the scan cursor.
func (l *Lexer) next() Token {
	if l.pending != nil {
		tok := *l.pending
		l.pending = nil
		return tok
	}
	for {
		if l.pos >= len(l.src) {
			return Token{Kind: EOF, Line: l.line, Column: l.column}
		}

		startLine, startCol := l.line, l.column

		switch l.current() {
		case ' ', '\t', '\r':
			l.skipWhitespace()
			continue
		case '\n':
			l.advance()
			return Token{Kind: NEWLINE, Lexeme: "\n", Line: startLine, Column: startCol}
		case '/':
			if next := l.peek(1); next == '/' || next == '*' {
				l.skipComment()
				continue
			}
		case '"', '\'':
			value := l.readQuoted()
			kind := STRING_LITERAL
			if value != "" && value[0] == '\'' {
				kind = CHAR_LITERAL
			}
			return Token{Kind: kind, Lexeme: value, Line: startLine, Column: startCol}
		}

		if isDigit(l.current()) {
			value, kind := l.readNumber()
			return Token{Kind: kind, Lexeme: value, Line: startLine, Column: startCol}
		}

		if isAlpha(l.current()) {
			return l.readIdentifierToken(startLine, startCol)
		}

		if two := string([]byte{l.current(), l.peek(1)}); l.pos+1 < len(l.src) {
			if kind, ok := twoCharOps[two]; ok {
				l.advance()
				l.advance()
				return Token{Kind: kind, Lexeme: two, Line: startLine, Column: startCol}
			}
		}

		if kind, ok := singleCharOps[l.current()]; ok {
			lex := string(l.current())
			l.advance()
			return Token{Kind: kind, Lexeme: lex, Line: startLine, Column: startCol}
		}

		lex := string(l.current())
		l.advance()
		return Token{Kind: UNKNOWN, Lexeme: lex, Line: startLine, Column: startCol}
	}
}

// readIdentifierToken handles the identifier/keyword path, including the
// special std:: fusion: "std" immediately followed by "::<ident>" becomes a
// single STD_COUT/STD_ENDL/STD_STRING token for those three names, else a
// generic IDENTIFIER with lexeme "std::<ident>". Bare "std::" with nothing
// after emits STD then SCOPE_RESOLUTION.
func (l *Lexer) readIdentifierToken(startLine, startCol int) Token {
	value := l.readIdentifier()

	if value == "std" && l.current() == ':' && l.peek(1) == ':' {
		l.advance() // first ':'
		l.advance() // second ':'
		if isAlpha(l.current()) {
			name := l.readIdentifier()
			full := "std::" + name
			switch name {
			case "cout":
				return Token{Kind: STD_COUT, Lexeme: full, Line: startLine, Column: startCol}
			case "endl":
				return Token{Kind: STD_ENDL, Lexeme: full, Line: startLine, Column: startCol}
			case "string":
				return Token{Kind: STD_STRING, Lexeme: full, Line: startLine, Column: startCol}
			default:
				return Token{Kind: IDENTIFIER, Lexeme: full, Line: startLine, Column: startCol}
			}
		}
		// Bare "std::" with nothing identifier-shaped after it: emit STD now
		// and queue SCOPE_RESOLUTION for the following next() call.
		scopeRes := Token{Kind: SCOPE_RES, Lexeme: "::", Line: startLine, Column: startCol}
		l.pending = &scopeRes
		return Token{Kind: STD, Lexeme: value, Line: startLine, Column: startCol}
	}

	kind, ok := Keywords[value]
	if !ok {
		kind = IDENTIFIER
	}
	return Token{Kind: kind, Lexeme: value, Line: startLine, Column: startCol}
}
