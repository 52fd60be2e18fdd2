// Copyright © 2024 The Slip authors

// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ergochat/readline"
	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser"
	"github.com/slip-lang/slip/parser/token"
)

type config struct {
	stdin   io.ReadCloser
	stdout  io.Writer
	history string
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Option customizes the REPL.
type Option func(*config)

// WithStdin overrides the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStdout overrides the output of the REPL.
func WithStdout(stdout io.Writer) Option {
	return func(c *config) {
		c.stdout = stdout
	}
}

// WithHistoryFile overrides the line-history file location.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.history = path
	}
}

// RunRepl runs a REPL against a fresh session.
func RunRepl(prompt string, opts ...Option) {
	env := lisp.NewEnv(nil)
	stream := parser.NewStream()
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.New(stream)),
		lisp.WithSources(stream),
		lisp.WithLibrary(&lisp.RelativeFileSystemLibrary{}),
	)
	if err != nil {
		errlnf("Interpreter initialization failure: %v", err)
		os.Exit(1)
	}
	RunEnv(env, prompt, opts...)
}

// RunEnv runs a REPL with env as the global frame.  The session keeps its
// definitions across failed expressions; errors are reported and the loop
// continues reading.
func RunEnv(env *lisp.Env, prompt string, opts ...Option) {
	if env.Outer != nil {
		errlnf("REPL environment is not a root environment.")
		os.Exit(1)
	}

	cfg := newConfig(opts...)
	if cfg.stdout != nil {
		env.Runtime.Stdout = cfg.stdout
	}
	out := env.Runtime.Stdout
	if cfg.history == "" {
		cfg.history = historyPath()
	}

	rlCfg := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       cfg.history,
		HistorySearchFold: true,
		Stdout:            out,
		Stderr:            out,
		AutoComplete:      &symbolCompleter{env: env},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	stream, ok := env.Runtime.Sources.(*parser.CellStream)
	if !ok || env.Runtime.Reader == nil {
		errlnf("REPL session has no parser attached.")
		os.Exit(1)
	}
	stream.Push("stdin", io.NopCloser(&lineReader{rl: rl, out: out}))

	for {
		expr, err := env.Runtime.Reader.ParseOne()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(out, "Bad expression: %s\n", lisp.Message(err)) //nolint:errcheck // best-effort report
			continue
		}
		if len(expr) == 0 && stream.EOF() {
			break
		}
		v, err := env.Eval(expr)
		if err != nil {
			fmt.Fprintf(out, "Bad expression: %s\n", lisp.Message(err)) //nolint:errcheck // best-effort report
			continue
		}
		if v.Kind != token.Include {
			fmt.Fprintln(out, v) //nolint:errcheck // best-effort REPL output
		}
	}
}

// lineReader adapts readline to the io.Reader consumed by the token
// scanner.  Meta commands are intercepted at the line level so they never
// reach the lexer.
type lineReader struct {
	rl  *readline.Instance
	out io.Writer
	buf []byte
}

func (r *lineReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		line, err := r.rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return 0, io.EOF
		}
		trimmed := bytes.TrimSpace(line)
		if string(trimmed) == ":help" {
			printHelp(r.out)
			continue
		}
		r.buf = append(r.buf, line...)
		r.buf = append(r.buf, '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slip_history")
}

func errlnf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}
