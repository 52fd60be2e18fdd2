// Copyright © 2024 The Slip authors

package cmd

import (
	"fmt"
	"os"

	"github.com/slip-lang/slip/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	printFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slip [file]",
	Short: "Slip — a small Lisp interpreter",
	Long: `Slip is a tree-walking interpreter for a small Lisp-like expression
language.

Getting started:
  slip                         Start an interactive REPL
  slip file.slip               Evaluate a file silently
  slip file.slip -p            Evaluate a file and print each result
  slip run -e '(+ 1 2)'        Evaluate an expression
  slip repl                    Start the REPL explicitly

Language overview:
  Programs are parenthesised expressions over IEEE double numbers and
  names.  Procedures are first-class closures built with lambda or the
  (define (f args) body) shorthand.  cond selects the first clause with a
  truthy predicate; only f is falsy.  let binds locals, begin sequences,
  quote suppresses evaluation and (include "file") reads another file in
  place.  Type :help in the REPL for a fuller summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			repl.RunRepl("> ", replOptions()...)
			return nil
		}
		env, err := newSession(os.Stdout)
		if err != nil {
			return err
		}
		return runFile(env, args[0], printFlag || viper.GetBool("print"))
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slip.yaml)")
	rootCmd.Flags().BoolVarP(&printFlag, "print", "p", false,
		"Print each top-level result to stdout")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".slip")
	}

	viper.SetEnvPrefix("slip")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func replOptions() []repl.Option {
	var opts []repl.Option
	if path := viper.GetString("history"); path != "" {
		opts = append(opts, repl.WithHistoryFile(path))
	}
	return opts
}
