// Package repl provides an interactive lusp session on a terminal.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lusp-lang/lusp/lisp"
	"github.com/lusp-lang/lusp/parser/rdparser"
)

// RunRepl reads expressions from the terminal and evaluates them in a fresh
// global environment, printing the value of each.  Input spanning multiple
// lines is buffered until a complete expression has been read.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil)
	env.Runtime.Reader = rdparser.NewReader()
	lisp.InitializeUserEnv(env)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		exprs, perr := rdparser.NewReader().Read("repl", strings.NewReader(string(line)))
		if perr != nil {
			if rdparser.IsIncomplete(perr) {
				buf = line
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(perr)
			continue
		}
		for _, expr := range exprs {
			v := env.Eval(expr)
			if lisp.IsError(v) {
				errln(lisp.GoError(v))
				continue
			}
			fmt.Println(v)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
