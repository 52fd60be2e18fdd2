// Copyright © 2024 The Slip authors

package lisp_test

import (
	"strings"
	"testing"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser"
	"github.com/slip-lang/slip/sliptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStringCapturesOutput(t *testing.T) {
	env := sliptest.NewEnv(t)
	out, err := lisp.RunString(env, "(+ 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestRunStringSessionPersists(t *testing.T) {
	env := sliptest.NewEnv(t)
	out, err := lisp.RunString(env, "(define x 10)")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, err = lisp.RunString(env, "(+ x 5)")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestRunStringReportsErrors(t *testing.T) {
	env := sliptest.NewEnv(t)
	out, err := lisp.RunString(env, "(nope) (+ 1 1)")
	require.NoError(t, err)
	assert.Equal(t, "Bad expression: unbound name: nope\n2\n", out)
}

func TestRunStringRestoresSink(t *testing.T) {
	env := sliptest.NewEnv(t)
	var buf strings.Builder
	env.Runtime.Stdout = &buf
	_, err := lisp.RunString(env, "(+ 1 1)")
	require.NoError(t, err)
	assert.Zero(t, buf.Len(), "captured output does not leak to the session sink")

	err = lisp.RunReader(env, "direct", strings.NewReader("(+ 2 2)"), true)
	require.NoError(t, err)
	assert.Equal(t, "4\n", buf.String(), "the session sink is restored afterwards")
}

func TestRunReaderWithoutSources(t *testing.T) {
	env := lisp.NewEnv(nil)
	err := lisp.RunReader(env, "test", strings.NewReader("(+ 1 1)"), false)
	require.Error(t, err)
	assert.Equal(t, lisp.IncludeError, lisp.Condition(err))
}

func TestRunReaderSilent(t *testing.T) {
	env := lisp.NewEnv(nil)
	stream := parser.NewStream()
	var buf strings.Builder
	require.NoError(t, lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.New(stream)),
		lisp.WithSources(stream),
		lisp.WithStdout(&buf),
	))
	require.NoError(t, lisp.RunReader(env, "test", strings.NewReader("(define x 1) (+ x 1)"), false))
	assert.Zero(t, buf.Len(), "silent evaluation prints nothing")

	v, err := env.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
}
