package lisp

import "github.com/lusp-lang/lusp/parser/token"

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Atoms evaluate to themselves, symbols resolve through the
// environment, and cons cells are applications whose head must evaluate to
// a callable value.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LCons:
		return env.evalCall(v)
	default:
		return v
	}
}

func (env *LEnv) evalCall(v *LVal) *LVal {
	head := env.Eval(v.CAR)
	switch head.Type {
	case LError:
		return head
	case LBuiltin:
		// Builtins receive the raw argument list and decide for themselves
		// whether to evaluate it.  Special forms are just builtins that
		// don't.
		return head.Builtin(env, v.CDR)
	case LLambda:
		args := env.EvalList(v.CDR)
		if IsError(args) {
			return args
		}
		if args.Source == nil {
			args.Source = v.Source
		}
		return env.Call(head, args)
	case LMacro:
		args := v.CDR
		if args.Source == nil {
			args.Source = v.Source
		}
		expansion := env.Call(head, args)
		if IsError(expansion) {
			return expansion
		}
		return env.Eval(expansion)
	default:
		return Errorf(v.Source, "attempt to call non-function")
	}
}

// Call invokes the callable fun with the argument list args.  Arguments to
// a function must already be evaluated; arguments to a macro must not be.
// The macro caller is responsible for evaluating the returned expansion.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	switch fun.Type {
	case LBuiltin:
		return fun.Builtin(env, args)
	case LLambda, LMacro:
		fenv := NewEnv(fun.Env)
		lerr := bindFormals(fenv, fun, args)
		if IsError(lerr) {
			return lerr
		}
		return fenv.Progn(fun.Body)
	default:
		return Errorf(fun.Source, "attempt to call non-function")
	}
}

// bindFormals binds the parameters of fun to args in fenv.  Fixed
// parameters consume arguments in order; a symbol in the tail position of
// an improper parameter list captures any remaining arguments as a fresh
// list.
func bindFormals(fenv *LEnv, fun *LVal, args *LVal) *LVal {
	loc := argLoc(fun, args)
	p := fun.Formals
	a := args
	for ; p.Type == LCons; p = p.CDR {
		if a.Type != LCons {
			return arityError(fun, args, loc)
		}
		fenv.Put(p.CAR, a.CAR)
		a = a.CDR
	}
	switch p.Type {
	case LNil:
		if a.Type == LCons {
			return arityError(fun, args, loc)
		}
	case LSymbol:
		fenv.Put(p, copyList(a))
	default:
		return Errorf(fun.Source, "malformed parameter list")
	}
	return Nil()
}

func arityError(fun *LVal, args *LVal, loc *token.Location) *LVal {
	nfixed, variadic := countFormals(fun.Formals)
	nargs, _ := ListLen(args)
	if variadic {
		return Errorf(loc, "function expects at least %d arguments (got %d)", nfixed, nargs)
	}
	return Errorf(loc, "function expects %d arguments (got %d)", nfixed, nargs)
}

func argLoc(fun *LVal, args *LVal) *token.Location {
	if args.Source != nil {
		return args.Source
	}
	return fun.Source
}

// countFormals returns the number of fixed parameters and whether the list
// ends in a variadic rest symbol.
func countFormals(formals *LVal) (int, bool) {
	n := 0
	for ; formals.Type == LCons; formals = formals.CDR {
		n++
	}
	return n, formals.Type == LSymbol
}

// copyList returns a fresh list containing the elements of v.  The elements
// themselves are shared.
func copyList(v *LVal) *LVal {
	front := Nil()
	var back *LVal
	for ; v.Type == LCons; v = v.CDR {
		cell := Cons(v.CAR, Nil())
		cell.Source = v.Source
		if back == nil {
			front = cell
		} else {
			back.CDR = cell
		}
		back = cell
	}
	return front
}

// EvalList evaluates each element of the list v from left to right and
// returns a fresh list of the results.  The first error short-circuits
// evaluation and is returned unchanged.
func (env *LEnv) EvalList(v *LVal) *LVal {
	front := Nil()
	var back *LVal
	for ; v.Type == LCons; v = v.CDR {
		r := env.Eval(v.CAR)
		if IsError(r) {
			return r
		}
		cell := Cons(r, Nil())
		cell.Source = v.Source
		if back == nil {
			front = cell
		} else {
			back.CDR = cell
		}
		back = cell
	}
	if v.Type != LNil {
		return Errorf(v.Source, "malformed argument list")
	}
	return front
}

// Progn evaluates each expression in the list v in order and returns the
// value of the last, or nil when v is empty.  Errors short-circuit the
// remaining expressions.
func (env *LEnv) Progn(v *LVal) *LVal {
	r := Nil()
	for ; v.Type == LCons; v = v.CDR {
		r = env.Eval(v.CAR)
		if IsError(r) {
			return r
		}
	}
	return r
}
