// Copyright © 2024 The Slip authors

// Package sliptest runs scripted interpreter sessions for tests.
package sliptest

import (
	"strings"
	"testing"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser"
)

// TestSequence is a sequence of expressions evaluated in order against one
// session.  Result is the expected printed output of the expression; failed
// expressions print in the REPL's "Bad expression" form, so error cases are
// expressed the same way.
type TestSequence []struct {
	Expr   string // a slip expression
	Result string // the printed result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a session wired to a fresh source stack for t.
func NewEnv(t testing.TB) *lisp.Env {
	t.Helper()
	env := lisp.NewEnv(nil)
	stream := parser.NewStream()
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.New(stream)),
		lisp.WithSources(stream),
		lisp.WithStdout(NewLogger(t)),
	)
	if err != nil {
		t.Fatalf("environment initialization failure: %v", err)
	}
	return env
}

// RunTestSuite runs each TestSequence in tests on an isolated session.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			env := NewEnv(t)
			for j, step := range test.TestSequence {
				out, err := lisp.RunString(env, step.Expr)
				if err != nil {
					t.Errorf("expr %d %q: %v", j, step.Expr, err)
					continue
				}
				result := strings.TrimRight(out, "\n")
				if result != step.Result {
					t.Errorf("expr %d %q: expected result %q (got %q)", j, step.Expr, step.Result, result)
				}
			}
		})
	}
}
