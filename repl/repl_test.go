// Copyright © 2024 The Slip authors

package repl

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runReplWithString(t *testing.T, input string) string {
	t.Helper()
	history := filepath.Join(t.TempDir(), "history")
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	go func() {
		defer inW.Close() //nolint:errcheck // test cleanup
		_, _ = io.WriteString(inW, input)
	}()

	go func() {
		RunRepl("> ", WithStdin(inR), WithStdout(outW), WithHistoryFile(history))
		inR.Close()  //nolint:errcheck,gosec // test cleanup
		outW.Close() //nolint:errcheck,gosec // test cleanup
	}()

	var output bytes.Buffer
	_, _ = io.Copy(&output, outR)
	outR.Close() //nolint:errcheck,gosec // test cleanup

	return output.String()
}

func TestReplEvaluates(t *testing.T) {
	out := runReplWithString(t, "(+ 1 2)\n")
	assert.Contains(t, out, "3")
}

func TestReplPersistsDefinitions(t *testing.T) {
	out := runReplWithString(t, "(define x 10)\n(+ x 5)\n")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "15")
}

func TestReplContinuesAfterError(t *testing.T) {
	out := runReplWithString(t, "(define x 1)\n(nope)\n(+ x 1)\n")
	assert.Contains(t, out, "Bad expression: unbound name: nope")
	assert.Contains(t, out, "2")
}

func TestReplMultiLineExpression(t *testing.T) {
	out := runReplWithString(t, "(+ 1\n2)\n")
	assert.Contains(t, out, "3")
}

func TestReplHelp(t *testing.T) {
	out := runReplWithString(t, ":help\n")
	assert.Contains(t, out, "Special forms")
	assert.Contains(t, out, "Primitives")
}

func TestPrintHelpWraps(t *testing.T) {
	var buf strings.Builder
	printHelp(&buf)
	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len(line), helpWidth+2, "line %q", line)
	}
}

func TestLineReaderInterceptsHelp(t *testing.T) {
	// The :help command never reaches the lexer, so it cannot shadow or
	// collide with user names.
	out := runReplWithString(t, ":help\n(+ 1 2)\n")
	require.Contains(t, out, "Syntax")
	assert.Contains(t, out, "3")
}
