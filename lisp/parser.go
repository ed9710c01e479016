package lisp

import "io"

// Reader abstracts the parser so that the lisp package does not depend on
// any one parsing strategy.  Read returns one LVal per top-level
// expression in the input.
type Reader interface {
	Read(name string, r io.Reader) ([]*LVal, error)
}
