// Package rdparser implements a basic recursive descent parser for lusp.
package rdparser

import (
	"fmt"
	"io"

	"github.com/lusp-lang/lusp/lisp"
	"github.com/lusp-lang/lusp/parser/lexer"
	"github.com/lusp-lang/lusp/parser/token"
)

// IncompleteError is returned when the input ends in the middle of an
// expression.  Interactive frontends use it to decide whether to prompt for
// a continuation line instead of reporting a failure.
type IncompleteError struct {
	msg string
	loc *token.Location
}

func (e *IncompleteError) Error() string {
	if e.loc != nil {
		return fmt.Sprintf("%s: %s", e.loc, e.msg)
	}
	return e.msg
}

// IsIncomplete returns true if err signals truncated input rather than a
// malformed expression.
func IsIncomplete(err error) bool {
	_, ok := err.(*IncompleteError)
	return ok
}

// Reader parses a stream of lusp expressions.  It implements lisp.Reader.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses expressions from r until EOF.  The name is attached to the
// source locations of the returned expressions.
func (*Reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	p := New(token.NewScanner(name, r))
	return p.ParseProgram()
}

// Parser is a lusp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a Parser reading tokens scanned from s.
func New(s *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(s),
	}
	// Prime curr and peek.
	p.next()
	p.next()
	return p
}

// ParseProgram parses expressions until the input is exhausted.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		for p.curr.Type == token.COMMENT {
			p.next()
		}
		if p.curr.Type == token.EOF {
			return exprs, nil
		}
		v, err := p.ParseExpression()
		if err != nil {
			return exprs, err
		}
		exprs = append(exprs, v)
	}
}

// ParseExpression parses one expression from the stream.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	for p.curr.Type == token.COMMENT {
		p.next()
	}
	switch p.curr.Type {
	case token.INT:
		return p.parseInt()
	case token.STRING:
		return p.parseString()
	case token.SYMBOL:
		return p.parseSymbol()
	case token.QUOTE:
		return p.parseQuote()
	case token.PAREN_L:
		return p.parseConsExpression()
	case token.EOF:
		return nil, p.incompletef("unexpected EOF")
	case token.ERROR, token.INVALID:
		return nil, p.errorf("scan error: %s", p.curr.Text)
	default:
		return nil, p.errorf("unexpected token: %v", p.curr.Type)
	}
}

func (p *Parser) parseInt() (*lisp.LVal, error) {
	text := p.curr.Text
	loc := p.curr.Source
	p.next()
	var x int64
	_, err := fmt.Sscan(text, &x)
	if err != nil {
		return nil, p.errorfLoc(loc, "invalid integer literal: %s", text)
	}
	v := lisp.Int(x)
	v.Source = loc
	return v, nil
}

func (p *Parser) parseString() (*lisp.LVal, error) {
	text := p.curr.Text
	loc := p.curr.Source
	p.next()
	// The token text includes the surrounding quotes.
	v := lisp.String(text[1 : len(text)-1])
	v.Source = loc
	return v, nil
}

func (p *Parser) parseSymbol() (*lisp.LVal, error) {
	v := lisp.Symbol(p.curr.Text)
	v.Source = p.curr.Source
	p.next()
	return v, nil
}

// parseQuote desugars 'EXPR into (quote EXPR).
func (p *Parser) parseQuote() (*lisp.LVal, error) {
	loc := p.curr.Source
	p.next()
	inner, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	q := lisp.Symbol("quote")
	q.Source = loc
	v := lisp.Expr(q, inner)
	v.Source = loc
	return v, nil
}

// parseConsExpression parses a parenthesized list, which may be proper or
// end in a dotted tail.
func (p *Parser) parseConsExpression() (*lisp.LVal, error) {
	open := p.curr.Source
	p.next()
	front := lisp.Nil()
	front.Source = open
	var back *lisp.LVal
	for {
		for p.curr.Type == token.COMMENT {
			p.next()
		}
		switch p.curr.Type {
		case token.PAREN_R:
			p.next()
			return front, nil
		case token.DOT:
			if back == nil {
				return nil, p.errorf("unexpected `.'")
			}
			p.next()
			tail, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			for p.curr.Type == token.COMMENT {
				p.next()
			}
			if p.curr.Type != token.PAREN_R {
				if p.curr.Type == token.EOF {
					return nil, p.incompletefLoc(open, "unmatched `('")
				}
				return nil, p.errorf("expected `)' after dotted tail")
			}
			p.next()
			back.CDR = tail
			return front, nil
		case token.EOF:
			return nil, p.incompletefLoc(open, "unmatched `('")
		default:
			v, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			cell := lisp.Cons(v, lisp.Nil())
			cell.Source = v.Source
			if back == nil {
				cell.Source = open
				front = cell
			} else {
				back.CDR = cell
			}
			back = cell
		}
	}
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	return p.errorfLoc(p.curr.Source, format, v...)
}

func (p *Parser) errorfLoc(loc *token.Location, format string, v ...interface{}) error {
	if loc != nil {
		return fmt.Errorf("%s: %s", loc, fmt.Sprintf(format, v...))
	}
	return fmt.Errorf(format, v...)
}

func (p *Parser) incompletef(format string, v ...interface{}) error {
	return p.incompletefLoc(p.curr.Source, format, v...)
}

func (p *Parser) incompletefLoc(loc *token.Location, format string, v ...interface{}) error {
	return &IncompleteError{
		msg: fmt.Sprintf(format, v...),
		loc: loc,
	}
}
