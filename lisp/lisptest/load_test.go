package lisptest

import (
	"bytes"
	"testing"

	"github.com/lusp-lang/lusp/lisp"
	"github.com/stretchr/testify/assert"
)

func TestLoadString(t *testing.T) {
	env, buf := NewTestEnv(t)
	v := env.LoadString("test.lusp", `
(setq x 1)
(println (+ x 1))
x
`)
	assert.False(t, lisp.IsError(v))
	assert.Equal(t, "1", v.String())
	assert.Equal(t, "2\n", buf.String())
}

func TestLoadContinuesPastEvalErrors(t *testing.T) {
	env, buf := NewTestEnv(t)
	v := env.LoadString("test.lusp", `
(setq x 1)
(println (+ x no-such-var))
(println (+ x 1))
`)
	assert.False(t, lisp.IsError(v))
	assert.Equal(t, "2\n", buf.String())
	stderr := env.Runtime.Stderr.(*bytes.Buffer).String()
	assert.Contains(t, stderr, "test.lusp:3:")
	assert.Contains(t, stderr, "undeclared identifier: no-such-var")
}

func TestLoadReadError(t *testing.T) {
	env, buf := NewTestEnv(t)
	v := env.LoadString("test.lusp", "(println 1))")
	assert.True(t, lisp.IsError(v))
	assert.Equal(t, "", buf.String())
}

func TestLoadStringComments(t *testing.T) {
	env, buf := NewTestEnv(t)
	v := env.LoadString("test.lusp", `
# doubles the input
(fn double (n) (* n 2))
(println (double 21)) # check it
`)
	assert.False(t, lisp.IsError(v))
	assert.Equal(t, "42\n", buf.String())
}
