// Copyright © 2024 The Slip authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [files]",
	Short: "Run slip code",
	Long:  `Run slip code supplied via the command line or files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newSession(os.Stdout)
		if err != nil {
			return err
		}
		for i, arg := range args {
			if runExpression {
				err = lisp.RunReader(env, fmt.Sprintf("expr%d", i), strings.NewReader(arg), runPrint)
			} else {
				err = runFile(env, arg, runPrint)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
	SilenceUsage: true,
}

// newSession builds a root environment wired to a fresh source stack and
// parser, writing to out.
func newSession(out io.Writer) (*lisp.Env, error) {
	env := lisp.NewEnv(nil)
	stream := parser.NewStream()
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.New(stream)),
		lisp.WithSources(stream),
		lisp.WithStdout(out),
		lisp.WithLibrary(&lisp.RelativeFileSystemLibrary{}),
	)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// runFile evaluates one file against env, printing top-level results when
// print is set.
func runFile(env *lisp.Env, path string, print bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return lisp.RunReader(env, path, f, print)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as slip expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
