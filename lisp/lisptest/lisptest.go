// Package lisptest provides utilities for testing lusp evaluation.
package lisptest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lusp-lang/lusp/lisp"
	"github.com/lusp-lang/lusp/parser/rdparser"
)

// TestSequence is a sequence of lusp expressions which are evaluated
// sequentially by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lusp expression
	Result string // the evaluated result, as printed
	Output string // text written to stdout during evaluation
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewTestEnv returns a global environment with output redirected to the
// returned buffer.
func NewTestEnv(t *testing.T) (*lisp.LEnv, *bytes.Buffer) {
	t.Helper()
	env := lisp.NewEnv(nil)
	buf := &bytes.Buffer{}
	env.Runtime.Stdout = buf
	env.Runtime.Stderr = &bytes.Buffer{}
	env.Runtime.Reader = rdparser.NewReader()
	lerr := lisp.InitializeUserEnv(env)
	if lisp.IsError(lerr) {
		t.Fatalf("failed to initialize environment: %v", lerr)
	}
	return env, buf
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
// Expressions within a sequence share an environment so that bindings made
// by one expression are visible to the next.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, buf := NewTestEnv(t)
		for j, expr := range test.TestSequence {
			exprs, err := rdparser.NewReader().Read("test", strings.NewReader(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(exprs) != 1 {
				t.Errorf("test %d %q: expr %d: expected one expression (got %d)", i, test.Name, j, len(exprs))
				continue
			}
			buf.Reset()
			result := env.Eval(exprs[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if buf.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, buf.String())
			}
		}
	}
}
