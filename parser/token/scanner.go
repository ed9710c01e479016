package token

import (
	"bufio"
	"io"
)

// Scanner facilitates construction of tokens from a byte stream (io.Reader).
// Runes are accumulated with ScanRune until the caller emits them as a token
// with EmitToken or discards them with Ignore.
type Scanner struct {
	file string
	br   *bufio.Reader

	text []rune // runes scanned since the last EmitToken/Ignore
	c    rune   // current rune, the last rune scanned

	peeked  bool
	peekR   rune
	peekErr error

	pos  int // byte offset of the next rune
	line int // line number of the next rune
	col  int // column number of the next rune

	startPos  int
	startLine int
	startCol  int
}

// NewScanner initializes and returns a new Scanner reading from r.
func NewScanner(file string, r io.Reader) *Scanner {
	return &Scanner{
		file: file,
		br:   bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to discard all text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.text = s.text[:0]
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.text)
}

// Rune returns the current rune, the last rune included in the pending token
// text.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there is one.  A false second
// value means the next call to ScanRune will return an error explaining why
// no rune could be read.
func (s *Scanner) Peek() (rune, bool) {
	if s.peeked {
		return s.peekR, s.peekErr == nil
	}
	c, _, err := s.br.ReadRune()
	s.peeked = true
	s.peekR = c
	s.peekErr = err
	return c, err == nil
}

// ScanRune reads one rune from the input and appends it to the pending token
// text.
func (s *Scanner) ScanRune() error {
	var c rune
	var n int
	var err error
	if s.peeked {
		c, err = s.peekR, s.peekErr
		n = len(string(c))
		s.peeked = false
	} else {
		c, n, err = s.br.ReadRune()
	}
	if err != nil {
		return err
	}
	if len(s.text) == 0 {
		s.startPos = s.pos
		s.startLine = s.line
		s.startCol = s.col
	}
	s.text = append(s.text, c)
	s.c = c
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

// LocStart returns a Location referencing the first rune of the pending
// token.  If no runes are pending it references the next rune to be scanned.
func (s *Scanner) LocStart() *Location {
	if len(s.text) == 0 {
		return s.Loc()
	}
	return &Location{
		File: s.file,
		Pos:  s.startPos,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}
