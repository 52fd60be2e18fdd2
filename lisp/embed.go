// Copyright © 2024 The Slip authors

package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/slip-lang/slip/parser/token"
)

// Message returns the human-readable part of err, without the condition
// prefix, for user-facing reports.
func Message(err error) string {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Message
	}
	return err.Error()
}

// RunReader pushes r onto the session's source stack and evaluates top-level
// expressions until the stack is exhausted.  Failed expressions are reported
// to the output sink as "Bad expression: <message>" and evaluation continues
// with the next form; definitions made before a failure remain in effect.
// When print is true the value of each expression is written to the sink.
func RunReader(env *Env, name string, r io.Reader, print bool) error {
	rt := env.Runtime
	if rt.Reader == nil || rt.Sources == nil {
		return ErrorConditionf(IncludeError, "session has no reader or source stack")
	}
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	rt.Sources.Push(name, rc)
	for {
		expr, err := rt.Reader.ParseOne()
		if err == io.EOF {
			rt.Sources.Pop()
			return nil
		}
		if err != nil {
			fmt.Fprintf(rt.Stdout, "Bad expression: %s\n", Message(err)) //nolint:errcheck // best-effort report
			continue
		}
		if len(expr) == 0 && rt.Sources.EOF() {
			// Trailing junk before end of input; there is nothing to evaluate.
			continue
		}
		v, err := env.Eval(expr)
		if err != nil {
			fmt.Fprintf(rt.Stdout, "Bad expression: %s\n", Message(err)) //nolint:errcheck // best-effort report
			continue
		}
		if print && v.Kind != token.Include {
			fmt.Fprintln(rt.Stdout, v) //nolint:errcheck // best-effort output
		}
	}
}

// RunString evaluates source against env's session and returns the printed
// output accumulated while it ran.  Definitions persist in the session, so
// successive calls share state the way successive REPL lines do.
func RunString(env *Env, source string) (string, error) {
	var buf bytes.Buffer
	old := env.Runtime.Stdout
	env.Runtime.Stdout = &buf
	defer func() { env.Runtime.Stdout = old }()
	err := RunReader(env, "string", strings.NewReader(source), true)
	return buf.String(), err
}
