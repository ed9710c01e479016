package lisp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Runtime holds interpreter state shared by every environment frame in a
// chain.  The output streams are used by the printing builtins and by
// diagnostics emitted while loading source.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
	Reader Reader
}

// StandardRuntime returns a Runtime connected to the process's standard
// streams.  The Reader field is left unset; it must be assigned before
// source can be loaded.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// LoadFile reads and evaluates the named file in env.
func (env *LEnv) LoadFile(path string) *LVal {
	f, err := os.Open(path)
	if err != nil {
		return Errorf(nil, "%v", err)
	}
	defer f.Close()
	return env.Load(path, f)
}

// LoadString reads and evaluates the expressions in the string exprs.  The
// name is used in diagnostics.
func (env *LEnv) LoadString(name, exprs string) *LVal {
	return env.Load(name, strings.NewReader(exprs))
}

// Load reads top-level expressions from r and evaluates each in order.  A
// read error stops the load and is returned.  An evaluation error is
// reported on the runtime's error stream and loading continues with the
// next expression, so one failing form does not abort the rest of the
// file.  Load returns the value of the last expression, or nil when that
// expression failed.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	reader := env.Runtime.Reader
	if reader == nil {
		return Errorf(nil, "no reader for environment runtime")
	}
	exprs, err := reader.Read(name, r)
	if err != nil {
		return Errorf(nil, "%v", err)
	}
	ret := Nil()
	for _, expr := range exprs {
		v := env.Eval(expr)
		if IsError(v) {
			fmt.Fprintln(env.Runtime.Stderr, GoError(v))
			ret = Nil()
			continue
		}
		ret = v
	}
	return ret
}
