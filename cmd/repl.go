package cmd

import (
	"github.com/lusp-lang/lusp/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive lusp session",
	Long:  `Read expressions from the terminal, evaluate them, and print their values.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
