package cmd

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/lusp-lang/lusp/repl"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lusp",
	Short: "A small lisp interpreter",
	Long:  `lusp is an interpreter for a small lisp dialect.`,
	Run: func(cmd *cobra.Command, args []string) {
		if readline.DefaultIsTerminal() {
			repl.RunRepl("> ")
			return
		}
		cmd.Help()
	},
}

// Execute runs the root command, which dispatches to the subcommands
// registered in init.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
