package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		v      *LVal
		expect string
	}{
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Symbol("abc"), "abc"},
		{String("hello"), "hello"},
		{Nil(), "nil"},
		{True(), "t"},
		{Cons(Int(1), Int(2)), "(1 . 2)"},
		{Expr(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{Cons(Cons(Int(1), Int(2)), Cons(Int(3), Int(4))), "((1 . 2) 3 . 4)"},
		{Expr(Symbol("quote"), Symbol("x")), "(quote x)"},
		{Fun("car", nil), "<builtin:car>"},
		{Lambda(nil, Expr(Symbol("x")), Expr(Symbol("x"))), "(fn (x) x)"},
		{Lambda(nil, Nil(), Expr(Int(1))), "(fn () 1)"},
		{Lambda(nil, Symbol("args"), Expr(Symbol("args"))), "(fn args args)"},
		{Macro(nil, Expr(Symbol("e")), Expr(Symbol("e"))), "(macro (e) e)"},
		{Errorf(nil, "oops: %d", 1), "oops: 1"},
	}
	for i, test := range tests {
		assert.Equal(t, test.expect, test.v.String(), "test %d", i)
	}
}

func TestListLen(t *testing.T) {
	n, proper := ListLen(Nil())
	assert.Equal(t, 0, n)
	assert.True(t, proper)

	n, proper = ListLen(Expr(Int(1), Int(2)))
	assert.Equal(t, 2, n)
	assert.True(t, proper)

	n, proper = ListLen(Cons(Int(1), Int(2)))
	assert.Equal(t, 1, n)
	assert.False(t, proper)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Int(2)))
	assert.True(t, Equal(Symbol("a"), Symbol("a")))
	assert.False(t, Equal(Symbol("a"), String("a")))
	assert.True(t, Equal(Nil(), Nil()))
	assert.True(t, Equal(True(), True()))
	assert.True(t, Equal(
		Expr(Int(1), Expr(Int(2)), Int(3)),
		Expr(Int(1), Expr(Int(2)), Int(3)),
	))
	assert.False(t, Equal(
		Expr(Int(1), Int(2)),
		Expr(Int(1), Int(2), Int(3)),
	))
}

func TestGoError(t *testing.T) {
	assert.Nil(t, GoError(Int(1)))
	err := GoError(Errorf(nil, "bad thing"))
	if assert.Error(t, err) {
		assert.Equal(t, "bad thing", err.Error())
	}
}
