package lisp

import (
	"fmt"

	"github.com/lusp-lang/lusp/parser/token"
)

// BuiltinFunc is a Go function implementing a lusp builtin.  Builtins receive
// their argument list unevaluated; most evaluate it immediately, special
// forms do not.
type BuiltinFunc func(env *LEnv, args *LVal) *LVal

// LBuiltinDef is a definition of a builtin function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  BuiltinFunc
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"progn", builtinProgn},
	{"macro", builtinMacro},
	{"println", builtinPrintln},
	{"print", builtinPrint},
	{"while", builtinWhile},
	{"quote", builtinQuote},
	{"cons", builtinCons},
	{"setq", builtinSetq},
	{"set", builtinSet},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"fn", builtinFn},
	{"if", builtinIf},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"=", builtinEq},
	{"<", builtinLT},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	return funs
}

func builtinProgn(env *LEnv, args *LVal) *LVal {
	return env.Progn(args)
}

func builtinQuote(env *LEnv, args *LVal) *LVal {
	if lerr := checkArity(args, "quote", 1); lerr != nil {
		return lerr
	}
	return args.CAR
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	if lerr := checkArity(args, "cons", 2); lerr != nil {
		return lerr
	}
	args = env.EvalList(args)
	if IsError(args) {
		return args
	}
	return Cons(args.CAR, args.CDR.CAR)
}

func builtinCAR(env *LEnv, args *LVal) *LVal {
	if lerr := checkArity(args, "car", 1); lerr != nil {
		return lerr
	}
	v := env.Eval(args.CAR)
	if IsError(v) {
		return v
	}
	if v.Type != LCons {
		return Nil()
	}
	return v.CAR
}

func builtinCDR(env *LEnv, args *LVal) *LVal {
	if lerr := checkArity(args, "cdr", 1); lerr != nil {
		return lerr
	}
	v := env.Eval(args.CAR)
	if IsError(v) {
		return v
	}
	if v.Type != LCons {
		return Nil()
	}
	return v.CDR
}

// builtinSet evaluates both of its arguments.  The first must evaluate to a
// symbol, which is then bound to the second value in the nearest frame
// already binding it, or the innermost frame when unbound.
func builtinSet(env *LEnv, args *LVal) *LVal {
	if lerr := checkArity(args, "set", 2); lerr != nil {
		return lerr
	}
	sym := env.Eval(args.CAR)
	if IsError(sym) {
		return sym
	}
	if sym.Type != LSymbol {
		return Errorf(argSource(args.CAR, args), "builtin `set' takes a symbol as its first argument (got `%s')", sym.Type)
	}
	v := env.Eval(args.CDR.CAR)
	if IsError(v) {
		return v
	}
	env.Update(sym, v)
	return v
}

// builtinSetq is set without evaluation of the symbol argument.
func builtinSetq(env *LEnv, args *LVal) *LVal {
	if lerr := checkArity(args, "setq", 2); lerr != nil {
		return lerr
	}
	sym := args.CAR
	if sym.Type != LSymbol {
		return Errorf(argSource(sym, args), "builtin `setq' takes a symbol as its first argument (got `%s')", sym.Type)
	}
	v := env.Eval(args.CDR.CAR)
	if IsError(v) {
		return v
	}
	env.Update(sym, v)
	return v
}

// builtinFn constructs a function value.  With a leading symbol argument the
// function is also bound to that name in the calling environment; otherwise
// the function is anonymous.
func builtinFn(env *LEnv, args *LVal) *LVal {
	if args.Type != LCons {
		return Errorf(argSource(nil, args), "builtin `fn' missing list of parameters")
	}
	if args.CAR.Type == LSymbol {
		name := args.CAR
		fun := makeFunction(env, LLambda, args.CDR, args)
		if IsError(fun) {
			return fun
		}
		env.Put(name, fun)
		return fun
	}
	return makeFunction(env, LLambda, args, args)
}

// builtinMacro constructs an anonymous macro value.  Macros have no named
// form; they are bound with setq.
func builtinMacro(env *LEnv, args *LVal) *LVal {
	return makeFunction(env, LMacro, args, args)
}

// makeFunction validates a (PARAMS BODY...) tail and builds a callable of
// the given type closing over env.
func makeFunction(env *LEnv, typ LType, args *LVal, orig *LVal) *LVal {
	if args.Type != LCons {
		return Errorf(argSource(nil, orig), "builtin `%s' missing list of parameters", fnTag(typ))
	}
	formals := args.CAR
	if !IsList(formals) && formals.Type != LSymbol {
		return Errorf(argSource(formals, orig), "builtin `%s' parameter list must be a list (this is %s)", fnTag(typ), typeArticle(formals.Type))
	}
	p := formals
	for ; p.Type == LCons; p = p.CDR {
		if p.CAR.Type != LSymbol {
			return Errorf(argSource(p.CAR, orig), "parameter name must be a symbol (this is %s)", typeArticle(p.CAR.Type))
		}
	}
	if p.Type != LNil && p.Type != LSymbol {
		return Errorf(argSource(formals, orig), "malformed parameter list")
	}
	body := args.CDR
	if !IsList(body) {
		return Errorf(argSource(body, orig), "malformed function definition")
	}
	if typ == LMacro {
		return Macro(env, formals, body)
	}
	return Lambda(env, formals, body)
}

func fnTag(typ LType) string {
	if typ == LMacro {
		return "macro"
	}
	return "fn"
}

// typeArticle renders a type name with its indefinite article, for error
// messages that name an offending value's type.
func typeArticle(typ LType) string {
	s := typ.String()
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + s
	default:
		return "a " + s
	}
}

// builtinIf branches on its first argument.  Only the constant t selects the
// consequent; every other value selects the alternative, which is evaluated
// as an implicit progn.
func builtinIf(env *LEnv, args *LVal) *LVal {
	n, _ := ListLen(args)
	if n < 2 {
		return Errorf(argSource(nil, args), "builtin `if' expects at least 2 arguments (got %d)", n)
	}
	test := env.Eval(args.CAR)
	if IsError(test) {
		return test
	}
	if IsTrue(test) {
		return env.Eval(args.CDR.CAR)
	}
	return env.Progn(args.CDR.CDR)
}

// builtinWhile evaluates its body while the test evaluates to t.  The value
// of the last body expression of the final iteration is returned; a loop
// whose body never runs yields nil.
func builtinWhile(env *LEnv, args *LVal) *LVal {
	if args.Type != LCons {
		return Errorf(argSource(nil, args), "builtin `while' expects at least 1 argument (got 0)")
	}
	r := Nil()
	for {
		test := env.Eval(args.CAR)
		if IsError(test) {
			return test
		}
		if !IsTrue(test) {
			return r
		}
		r = env.Progn(args.CDR)
		if IsError(r) {
			return r
		}
	}
}

func builtinPrint(env *LEnv, args *LVal) *LVal {
	return printValues(env, args, "")
}

func builtinPrintln(env *LEnv, args *LVal) *LVal {
	return printValues(env, args, "\n")
}

// printValues writes the arguments to the runtime's output stream separated
// by single spaces, followed by term.
func printValues(env *LEnv, args *LVal, term string) *LVal {
	args = env.EvalList(args)
	if IsError(args) {
		return args
	}
	w := env.Runtime.Stdout
	for v := args; v.Type == LCons; v = v.CDR {
		if v != args {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v.CAR.String())
	}
	fmt.Fprint(w, term)
	return Nil()
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return arithFold(env, args, "+", func(a, b int64) (int64, bool) { return a + b, true })
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return arithFold(env, args, "-", func(a, b int64) (int64, bool) { return a - b, true })
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return arithFold(env, args, "*", func(a, b int64) (int64, bool) { return a * b, true })
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return arithFold(env, args, "/", func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	})
}

// arithFold evaluates the arguments and folds them left to right seeded by
// the first value.  A false second return from op signals division by zero.
func arithFold(env *LEnv, args *LVal, name string, op func(a, b int64) (int64, bool)) *LVal {
	args = env.EvalList(args)
	if IsError(args) {
		return args
	}
	if args.Type != LCons {
		return Errorf(argSource(nil, args), "builtin `%s' expects at least 1 argument (got 0)", name)
	}
	if args.CAR.Type != LInt {
		return Errorf(argSource(args.CAR, args), "builtin `%s' takes only numeric arguments (got `%s')", name, args.CAR.Type)
	}
	acc := args.CAR.Int
	for v := args.CDR; v.Type == LCons; v = v.CDR {
		if v.CAR.Type != LInt {
			return Errorf(argSource(v.CAR, args), "builtin `%s' takes only numeric arguments (got `%s')", name, v.CAR.Type)
		}
		r, ok := op(acc, v.CAR.Int)
		if !ok {
			return Errorf(argSource(v.CAR, args), "division by zero")
		}
		acc = r
	}
	return Int(acc)
}

// builtinEq returns t when all arguments are numerically equal.
func builtinEq(env *LEnv, args *LVal) *LVal {
	args = env.EvalList(args)
	if IsError(args) {
		return args
	}
	if args.Type != LCons {
		return Errorf(argSource(nil, args), "builtin `=' expects at least 1 argument (got 0)")
	}
	if args.CAR.Type != LInt {
		return Errorf(argSource(args.CAR, args), "builtin `=' takes only numeric arguments (got `%s')", args.CAR.Type)
	}
	first := args.CAR.Int
	for v := args.CDR; v.Type == LCons; v = v.CDR {
		if v.CAR.Type != LInt {
			return Errorf(argSource(v.CAR, args), "builtin `=' takes only numeric arguments (got `%s')", v.CAR.Type)
		}
		if v.CAR.Int != first {
			return Nil()
		}
	}
	return True()
}

// builtinLT returns t when each argument is strictly less than the one
// before it.  The comparison runs over neighboring pairs.
func builtinLT(env *LEnv, args *LVal) *LVal {
	args = env.EvalList(args)
	if IsError(args) {
		return args
	}
	if args.Type != LCons {
		return Errorf(argSource(nil, args), "builtin `<' expects at least 1 argument (got 0)")
	}
	if args.CAR.Type != LInt {
		return Errorf(argSource(args.CAR, args), "builtin `<' takes only numeric arguments (got `%s')", args.CAR.Type)
	}
	prev := args.CAR.Int
	for v := args.CDR; v.Type == LCons; v = v.CDR {
		if v.CAR.Type != LInt {
			return Errorf(argSource(v.CAR, args), "builtin `<' takes only numeric arguments (got `%s')", v.CAR.Type)
		}
		if prev <= v.CAR.Int {
			return Nil()
		}
		prev = v.CAR.Int
	}
	return True()
}

// checkArity returns nil when args is a proper list of exactly n elements.
func checkArity(args *LVal, name string, n int) *LVal {
	got, proper := ListLen(args)
	if !proper {
		return Errorf(argSource(nil, args), "malformed argument list")
	}
	if got != n {
		return Errorf(argSource(nil, args), "builtin `%s' expects %d arguments (got %d)", name, n, got)
	}
	return nil
}

// argSource selects the most specific available location, preferring the
// offending argument over the argument list as a whole.
func argSource(v *LVal, args *LVal) *token.Location {
	if v != nil && v.Source != nil {
		return v.Source
	}
	if args.Source != nil {
		return args.Source
	}
	return nil
}
