package lisp

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokNumber
	tokSymbol
	tokString
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokNumber:
		return "number"
	case tokSymbol:
		return "symbol"
	case tokString:
		return "string"
	default:
		return "unknown"
	}
}

type token struct {
	kind      tokenKind
	text      string
	num       float64
	line, col int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return strconv.Quote(t.text)
	default:
		return "'" + t.text + "'"
	}
}

type lexer struct {
	src       []rune
	pos       int
	line, col int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1, col: 1}
}

func (l *lexer) read() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line, l.col = l.line+1, 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// next returns the next token, or a *ParseError for unterminated strings,
// bad escapes and malformed numeric literals.
func (l *lexer) next() (token, error) {
	l.skipSpace()

	line, col := l.line, l.col
	c := l.peek()
	switch c {
	case 0:
		return token{kind: tokEOF, line: line, col: col}, nil
	case '(':
		l.read()
		return token{kind: tokLParen, text: "(", line: line, col: col}, nil
	case ')':
		l.read()
		return token{kind: tokRParen, text: ")", line: line, col: col}, nil
	case '{':
		l.read()
		return token{kind: tokLBrace, text: "{", line: line, col: col}, nil
	case '}':
		l.read()
		return token{kind: tokRBrace, text: "}", line: line, col: col}, nil
	case '"':
		return l.string(line, col)
	default:
		return l.atom(line, col)
	}
}

func (l *lexer) skipSpace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.read()
		case ';':
			for c := l.peek(); c != '\n' && c != 0; c = l.peek() {
				l.read()
			}
		default:
			return
		}
	}
}

func (l *lexer) string(line, col int) (token, error) {
	l.read() // opening quote

	var s strings.Builder
	for {
		c := l.read()
		switch c {
		case 0:
			return token{}, &ParseError{Line: line, Col: col, Expected: `closing '"'`, Found: "end of input"}
		case '"':
			return token{kind: tokString, text: s.String(), line: line, col: col}, nil
		case '\\':
			k := l.read()
			switch k {
			case '\\', '"':
				c = k
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			case 0:
				return token{}, &ParseError{Line: line, Col: col, Expected: `closing '"'`, Found: "end of input"}
			default:
				return token{}, &ParseError{Line: l.line, Col: l.col - 2, Expected: "escape character", Found: `'\` + string(k) + `'`}
			}
		}
		s.WriteRune(c)
	}
}

func (l *lexer) atom(line, col int) (token, error) {
	var text strings.Builder
	for c := l.peek(); !isDelimiter(c); c = l.peek() {
		text.WriteRune(l.read())
	}

	s := text.String()
	if !looksNumeric(s) {
		return token{kind: tokSymbol, text: s, line: line, col: col}, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return token{}, &ParseError{Line: line, Col: col, Expected: "number", Found: "'" + s + "'"}
	}
	return token{kind: tokNumber, text: s, num: n, line: line, col: col}, nil
}

// looksNumeric reports whether an atom must be a numeric literal: it
// starts with a digit, optionally after a sign and/or decimal point.
// Anything else (including a lone "+" or "-") is a symbol.
func looksNumeric(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func isDelimiter(c rune) bool {
	switch c {
	case 0, ' ', '\t', '\r', '\n', '(', ')', '{', '}', '"', ';':
		return true
	}
	return false
}
