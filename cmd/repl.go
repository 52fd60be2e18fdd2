// Copyright © 2024 The Slip authors

package cmd

import (
	"github.com/slip-lang/slip/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run a read-eval-print loop",
	Long:  `Runs a simple read-eval-print loop to interpret slip expressions interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ", replOptions()...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
