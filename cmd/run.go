package cmd

import (
	"fmt"
	"os"

	"github.com/lusp-lang/lusp/lisp"
	"github.com/lusp-lang/lusp/parser/rdparser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lusp code",
	Long:  `Run lusp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		env := lisp.NewEnv(nil)
		env.Runtime.Reader = rdparser.NewReader()
		lisp.InitializeUserEnv(env)

		for i, arg := range args {
			var v *lisp.LVal
			if runExpression {
				name := fmt.Sprintf("arg%d", i+1)
				v = env.LoadString(name, arg)
			} else {
				v = env.LoadFile(arg)
			}
			if lisp.IsError(v) {
				fmt.Fprintln(os.Stderr, lisp.GoError(v))
				os.Exit(1)
			}
			if runPrint {
				fmt.Println(v)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lusp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each argument's final expression")
}
