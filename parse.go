package lisp

import (
	"fmt"
	"io"
	"strings"
)

// ParseError reports a malformed source position along with what the
// parser expected and what it found instead.
type ParseError struct {
	Line, Col int
	Expected  string
	Found     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: expected %s, found %s", e.Line, e.Col, e.Expected, e.Found)
}

// ParseString parses source text into its sequence of top-level forms.
func ParseString(s string) ([]Value, error) {
	p := &parser{l: newLexer(s)}
	return p.parseProgram()
}

// Parse reads all of r and parses it. Parsing is all-or-nothing: on
// failure no partial forms are returned.
func Parse(r io.Reader) ([]Value, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return ParseString(b.String())
}

type parser struct {
	l   *lexer
	t   *token
	err error
}

func (p *parser) peek() token {
	if p.t == nil {
		t, err := p.l.next()
		if err != nil {
			p.err = err
			t = token{kind: tokEOF}
		}
		p.t = &t
	}
	return *p.t
}

func (p *parser) next() (token, error) {
	t := p.peek()
	if p.err != nil {
		return t, p.err
	}
	p.t = nil
	return t, nil
}

func (p *parser) parseProgram() ([]Value, error) {
	var forms []Value
	for {
		if p.peek().kind == tokEOF {
			if p.err != nil {
				return nil, p.err
			}
			return forms, nil
		}
		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
}

func (p *parser) parseForm() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.kind {
	case tokNumber:
		return Number(tok.num), nil
	case tokSymbol:
		return Symbol(tok.text), nil
	case tokString:
		return String(tok.text), nil
	case tokLParen:
		elems, err := p.parseSeq(tokRParen, tok)
		if err != nil {
			return nil, err
		}
		return SExpr(elems), nil
	case tokLBrace:
		elems, err := p.parseSeq(tokRBrace, tok)
		if err != nil {
			return nil, err
		}
		return QExpr(elems), nil
	default:
		return nil, &ParseError{Line: tok.line, Col: tok.col, Expected: "expression", Found: tok.describe()}
	}
}

func (p *parser) parseSeq(close tokenKind, open token) ([]Value, error) {
	elems := []Value{}
	for {
		tok := p.peek()
		switch tok.kind {
		case close:
			p.next()
			return elems, nil
		case tokEOF:
			if p.err != nil {
				return nil, p.err
			}
			return nil, &ParseError{Line: open.line, Col: open.col, Expected: close.String(), Found: "end of input"}
		case tokRParen, tokRBrace:
			return nil, &ParseError{Line: tok.line, Col: tok.col, Expected: close.String(), Found: tok.describe()}
		}

		el, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}
}
