package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/lusp-lang/lusp/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LInt
	LSymbol
	LString
	LCons
	LNil
	LTrue
	LBuiltin
	LLambda
	LMacro
	LError
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LInt:     "int",
	LSymbol:  "symbol",
	LString:  "string",
	LCons:    "pair",
	LNil:     "nil",
	LTrue:    "t",
	LBuiltin: "builtin",
	LLambda:  "function",
	LMacro:   "macro",
	LError:   "error",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lusp value.  The zero value is not valid; use the constructor
// functions.  Fields are shared across variants the way a C union would be:
// Str holds a symbol name, string bytes, an error message, or a builtin's
// display name depending on Type.
type LVal struct {
	Type LType
	Int  int64
	Str  string

	// CAR and CDR are the cons cell fields, non-nil whenever Type is LCons.
	CAR *LVal
	CDR *LVal

	// Fields needed for callable values
	Builtin BuiltinFunc
	Formals *LVal
	Body    *LVal
	Env     *LEnv

	// Source is the location of the expression the value originated from.
	// It is used only for diagnostics.
	Source *token.Location
}

// Int returns an LVal representing the integer x.
func Int(x int64) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Symbol returns an LVal representing the symbol named s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Cons returns a new cons cell with the given head and tail.
func Cons(car, cdr *LVal) *LVal {
	return &LVal{
		Type: LCons,
		CAR:  car,
		CDR:  cdr,
	}
}

// Nil returns an LVal representing nil, the empty list.
func Nil() *LVal {
	return &LVal{
		Type: LNil,
	}
}

// True returns an LVal representing the true constant t.
func True() *LVal {
	return &LVal{
		Type: LTrue,
	}
}

// Fun returns an LVal representing the builtin function fn.  The name is
// used when the value is printed.
func Fun(name string, fn BuiltinFunc) *LVal {
	return &LVal{
		Type:    LBuiltin,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns a function value closing over env.
func Lambda(env *LEnv, formals, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Macro returns a macro value closing over env.
func Macro(env *LEnv, formals, body *LVal) *LVal {
	return &LVal{
		Type:    LMacro,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Errorf returns an error value with a formatted message located at loc.
func Errorf(loc *token.Location, format string, v ...interface{}) *LVal {
	return &LVal{
		Type:   LError,
		Str:    fmt.Sprintf(format, v...),
		Source: loc,
	}
}

// Expr builds a list value from the given elements.
func Expr(v ...*LVal) *LVal {
	lis := Nil()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// IsNil returns true if v is the empty list.
func IsNil(v *LVal) bool {
	return v.Type == LNil
}

// IsTrue returns true if v is the t constant.  Conditionals in lusp branch
// on this value alone; no other value counts as true.
func IsTrue(v *LVal) bool {
	return v.Type == LTrue
}

// IsError returns true if v is an error value.
func IsError(v *LVal) bool {
	return v.Type == LError
}

// IsList returns true if v is a cons cell or the empty list.
func IsList(v *LVal) bool {
	return v.Type == LCons || v.Type == LNil
}

// ListLen returns the number of elements in the list v.  ListLen returns
// false if the cons chain terminates in anything other than nil.
func ListLen(v *LVal) (int, bool) {
	n := 0
	for ; v.Type == LCons; v = v.CDR {
		n++
	}
	return n, v.Type == LNil
}

// Equal returns true if a and b are structurally equal.  Symbols compare by
// name, cons cells recursively, nil and t by identity of type.
func Equal(a, b *LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LInt:
		return a.Int == b.Int
	case LSymbol, LString:
		return a.Str == b.Str
	case LCons:
		return Equal(a.CAR, b.CAR) && Equal(a.CDR, b.CDR)
	case LNil, LTrue:
		return true
	default:
		return a == b
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LInt:
		return strconv.FormatInt(v.Int, 10)
	case LSymbol:
		return v.Str
	case LString:
		return v.Str
	case LNil:
		return "nil"
	case LTrue:
		return "t"
	case LCons:
		return consString(v)
	case LBuiltin:
		return fmt.Sprintf("<builtin:%s>", v.Str)
	case LLambda:
		return funString(v, "fn")
	case LMacro:
		return funString(v, "macro")
	case LError:
		return v.Str
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// consString renders a cons chain, using dot notation when the chain does
// not terminate in nil.
func consString(v *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for {
		buf.WriteString(v.CAR.String())
		switch v.CDR.Type {
		case LNil:
			buf.WriteString(")")
			return buf.String()
		case LCons:
			buf.WriteString(" ")
			v = v.CDR
		default:
			buf.WriteString(" . ")
			buf.WriteString(v.CDR.String())
			buf.WriteString(")")
			return buf.String()
		}
	}
}

func funString(v *LVal, tag string) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(tag)
	buf.WriteString(" ")
	if IsNil(v.Formals) {
		buf.WriteString("()")
	} else {
		buf.WriteString(v.Formals.String())
	}
	for b := v.Body; b.Type == LCons; b = b.CDR {
		buf.WriteString(" ")
		buf.WriteString(b.CAR.String())
	}
	buf.WriteString(")")
	return buf.String()
}
