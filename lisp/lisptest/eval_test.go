package lisptest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"atoms", TestSequence{
			{"3", "3", ""},
			{"-7", "-7", ""},
			{`"abc"`, "abc", ""},
			{"t", "t", ""},
			{"nil", "nil", ""},
		}},
		{"quotes", TestSequence{
			{"'3", "3", ""},
			{"''3", "(quote 3)", ""},
			{"'(1 2 3)", "(1 2 3)", ""},
			{"(quote (a b))", "(a b)", ""},
			{"'()", "nil", ""},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2 3 4 5 6)", "21", ""},
			{"(- 10 1 2)", "7", ""},
			{"(* 2 3 4)", "24", ""},
			{"(/ 100 5 2)", "10", ""},
			{"(+ 5)", "5", ""},
			{"(- 5)", "5", ""},
			{"(/ 7 2)", "3", ""},
			{"(/ -7 2)", "-3", ""},
		}},
		{"arithmetic errors", TestSequence{
			{`(+ 1 2 3 "four")`, "builtin `+' takes only numeric arguments (got `string')", ""},
			{"(/ 1 0)", "division by zero", ""},
			{"(* 'x 2)", "builtin `*' takes only numeric arguments (got `symbol')", ""},
		}},
		{"comparison", TestSequence{
			{"(= 1 1 1)", "t", ""},
			{"(= 1 2)", "nil", ""},
			{"(= 5)", "t", ""},
			{"(< 3 2 1)", "t", ""},
			{"(< 1 2)", "nil", ""},
			{"(< 3 3)", "nil", ""},
			{"(< 5)", "t", ""},
			{`(= "a" "a")`, "builtin `=' takes only numeric arguments (got `string')", ""},
		}},
		{"cons car cdr", TestSequence{
			{"(cons 1 2)", "(1 . 2)", ""},
			{"(cons 1 (cons 2 (cons 3 nil)))", "(1 2 3)", ""},
			{"(cons (cons 1 2) (cons 3 4))", "((1 . 2) 3 . 4)", ""},
			{"(car '(1 2 3))", "1", ""},
			{"(cdr '(1 2 3))", "(2 3)", ""},
			{"(car nil)", "nil", ""},
			{"(cdr nil)", "nil", ""},
			{"(car 5)", "nil", ""},
		}},
		{"printing", TestSequence{
			{"(println (+ 1 2 3 4 5 6))", "nil", "21\n"},
			{`(println 1 "two" '(3))`, "nil", "1 two (3)\n"},
			{"(print 7)", "nil", "7"},
			{"(println)", "nil", "\n"},
			{"(println '((1 . 2) . (3 . 4)))", "nil", "((1 . 2) 3 . 4)\n"},
		}},
		{"set and setq", TestSequence{
			{"(setq x 5)", "5", ""},
			{"x", "5", ""},
			{"(set 'x 6)", "6", ""},
			{"x", "6", ""},
			{"(set 'y 1)", "1", ""},
			{"y", "1", ""},
			{"(setq z (+ 1 2))", "3", ""},
			{"z", "3", ""},
			{"(setq 5 1)", "builtin `setq' takes a symbol as its first argument (got `int')", ""},
			{"(set 5 1)", "builtin `set' takes a symbol as its first argument (got `int')", ""},
		}},
		{"functions", TestSequence{
			{"(fn (x) x)", "(fn (x) x)", ""},
			{"((fn (x) x) 1)", "1", ""},
			{"((fn () (+ 1 1)))", "2", ""},
			{"((fn (x y) (+ x y)) 1 2)", "3", ""},
			{"(fn inc (n) (+ n 1))", "(fn (n) (+ n 1))", ""},
			{"(inc 41)", "42", ""},
		}},
		{"function arity", TestSequence{
			{"((fn (x y) (+ x y)) 1)", "function expects 2 arguments (got 1)", ""},
			{"((fn (x) x) 1 2)", "function expects 1 arguments (got 2)", ""},
			{"((fn (a . rest) rest))", "function expects at least 1 arguments (got 0)", ""},
		}},
		{"variadic functions", TestSequence{
			{"(fn rest-args (a . rest) rest)", "(fn (a . rest) rest)", ""},
			{"(rest-args 1 2 3)", "(2 3)", ""},
			{"(rest-args 1)", "nil", ""},
			{"(fn all-args args args)", "(fn args args)", ""},
			{"(all-args 1 2)", "(1 2)", ""},
			{"(all-args)", "nil", ""},
		}},
		{"recursion", TestSequence{
			{"(fn fact (x) (if (= x 0) 1 (* x (fact (- x 1)))))",
				"(fn (x) (if (= x 0) 1 (* x (fact (- x 1)))))", ""},
			{"(println (fact 5))", "nil", "120\n"},
			{"(fact 0)", "1", ""},
		}},
		{"closures", TestSequence{
			{"(setq counter ((fn (n) (fn () (setq n (* n 2)) n)) 1))",
				"(fn () (setq n (* n 2)) n)", ""},
			{"(println (counter))", "nil", "2\n"},
			{"(println (counter))", "nil", "4\n"},
			{"(println (counter))", "nil", "8\n"},
			{"n", "undeclared identifier: n", ""},
		}},
		{"lexical scope", TestSequence{
			{"(setq x 1)", "1", ""},
			{"((fn (x) (setq x 2) x) 10)", "2", ""},
			{"x", "1", ""},
			{"((fn () (setq x 3)))", "3", ""},
			{"x", "3", ""},
		}},
		{"conditionals", TestSequence{
			{"(if t 'a 'b)", "a", ""},
			{"(if nil 'a 'b)", "b", ""},
			{"(if 1 'a 'b)", "b", ""},
			{"(if '(1) 'a 'b)", "b", ""},
			{"(if nil 'a 'b 'c)", "c", ""},
			{"(if t 'a)", "a", ""},
			{"(if nil 'a)", "nil", ""},
			{"(if t)", "builtin `if' expects at least 2 arguments (got 1)", ""},
		}},
		{"while", TestSequence{
			{"(setq i 3)", "3", ""},
			{"(setq acc 0)", "0", ""},
			{"(while (< i 0) (setq acc (+ acc i)) (setq i (- i 1)))", "0", ""},
			{"acc", "6", ""},
			{"(while nil 1)", "nil", ""},
		}},
		{"progn", TestSequence{
			{"(progn 1 2 3)", "3", ""},
			{"(progn)", "nil", ""},
			{"(progn (setq a 1) (+ a 1))", "2", ""},
		}},
		{"macros", TestSequence{
			{"(setq unless (macro (test body) (cons 'if (cons test (cons nil (cons body nil))))))",
				"(macro (test body) (cons (quote if) (cons test (cons nil (cons body nil)))))", ""},
			{"(unless nil 7)", "7", ""},
			{"(unless t 7)", "nil", ""},
			{"(setq twice (macro (e) (cons 'progn (cons e (cons e nil)))))",
				"(macro (e) (cons (quote progn) (cons e (cons e nil))))", ""},
			{"(progn (setq c 0) (twice (setq c (+ c 1))) c)", "2", ""},
		}},
		{"macro arguments are not evaluated", TestSequence{
			{"(setq first-arg (macro (a b) (cons 'quote (cons a nil))))",
				"(macro (a b) (cons (quote quote) (cons a nil)))", ""},
			{"(first-arg (undefined-function) 2)", "(undefined-function)", ""},
		}},
		{"errors propagate", TestSequence{
			{"(+ 1 (car missing))", "undeclared identifier: missing", ""},
			{"(println (+ 1 no-such-var))", "undeclared identifier: no-such-var", ""},
			{"(5 1 2)", "attempt to call non-function", ""},
			{`("not-a-function")`, "attempt to call non-function", ""},
		}},
		{"recovery after errors", TestSequence{
			{"(setq v 1)", "1", ""},
			{"(+ v unbound-thing)", "undeclared identifier: unbound-thing", ""},
			{"v", "1", ""},
			{"(progn (setq v 2) (car oops) (setq v 3))", "undeclared identifier: oops", ""},
			{"v", "2", ""},
		}},
	}
	RunTestSuite(t, tests)
}
