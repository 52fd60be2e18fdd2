// Copyright © 2024 The Slip authors

package repl

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const helpWidth = 72

var helpSections = []struct {
	heading string
	body    string
}{
	{"Syntax", "Programs are parenthesised expressions. Numbers are IEEE doubles, " +
		"names evaluate to their binding, 'x quotes the next expression unevaluated " +
		"and a semicolon comments out the rest of the line."},
	{"Special forms", "(define x e) binds a name. (define (f a b) body) is the " +
		"function shorthand. (lambda (a b) body) builds a closure over the current " +
		"frame. (cond (pred e) ... (else e)) selects the first clause whose " +
		"predicate is truthy; only f is falsy. (let ((a 1) (b 2)) body) binds " +
		"locals in a fresh frame. (begin a b c) sequences and returns the last " +
		"value. (include \"file\") reads another file in place."},
	{"Primitives", "+ - * / fold numerically left to right. < = > compare by the " +
		"first argument's kind. and returns the first false operand, or returns " +
		"the first true operand, not negates. cat concatenates strings. list and " +
		"cons build lists; car, cdr and empty? take them apart."},
	{"Commands", ":help prints this summary. End of input (ctrl-d) leaves the " +
		"interpreter."},
}

func printHelp(w io.Writer) {
	for _, s := range helpSections {
		fmt.Fprintln(w, s.heading)                                       //nolint:errcheck // best-effort output
		fmt.Fprintln(w, indent.String(wordwrap.String(s.body, helpWidth), 2)) //nolint:errcheck // best-effort output
	}
}
