package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lusp-lang/lusp/parser/token"
)

// Runes that terminate a symbol or integer literal.  A dot standing alone is
// the dotted-pair separator and never part of a symbol.
const nonWordRunes = "()'.\"#"

// Lexer scans lusp tokens from a token.Scanner.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
	}
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case '.':
		return lex.scanner.EmitToken(token.DOT)
	case '#':
		for {
			c, ok := lex.scanner.Peek()
			if !ok || c == '\n' {
				return lex.scanner.EmitToken(token.COMMENT)
			}
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
		}
	case '"':
		for {
			c, ok := lex.scanner.Peek()
			if !ok {
				return lex.errorf("unterminated string literal")
			}
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
			if c == '"' {
				return lex.scanner.EmitToken(token.STRING)
			}
		}
	default:
		if isWord(lex.ch) {
			if err := lex.readWord(); err != nil {
				return lex.emitError(err, false)
			}
			if isInt(lex.scanner.Text()) {
				return lex.scanner.EmitToken(token.INT)
			}
			return lex.scanner.EmitToken(token.SYMBOL)
		}
		lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
		return lex.emit(token.INVALID, lex.readErr.Error())
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

func (lex *Lexer) readWord() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !isWord(c) {
			return nil
		}
		if err := lex.readChar(); err != nil {
			return err
		}
	}
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		err := lex.scanner.ScanRune()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

// isWord returns true if c may appear in a symbol or integer literal.
func isWord(c rune) bool {
	return !unicode.IsSpace(c) && !strings.ContainsRune(nonWordRunes, c)
}

// isInt returns true if text is an optionally signed run of decimal digits.
func isInt(text string) bool {
	if text == "" {
		return false
	}
	if text[0] == '+' || text[0] == '-' {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
