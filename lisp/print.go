// Copyright © 2024 The Slip authors

package lisp

import (
	"bytes"
	"strconv"

	"github.com/slip-lang/slip/parser/token"
)

// String renders the printed form of c.  Numbers use the shortest decimal
// representation of the double, names print verbatim, booleans print as the
// single characters t and f, procedures print as the literal proc, and lists
// print parenthesised with single spaces between elements.  When a list's
// head is a non-atom primitive or special kind its representation is emitted
// immediately after the opening paren.
func (c *Cell) String() string {
	var buf bytes.Buffer
	writeCell(&buf, c)
	return buf.String()
}

// String renders a list the way an Expr cell containing it would print.
func (l List) String() string {
	var buf bytes.Buffer
	writeList(&buf, l)
	return buf.String()
}

func writeCell(buf *bytes.Buffer, c *Cell) {
	switch c.Kind {
	case token.Number:
		buf.WriteString(strconv.FormatFloat(c.Num, 'g', -1, 64))
	case token.Name:
		buf.WriteString(c.Str)
	case token.Proc:
		buf.WriteString("proc")
	case token.Expr:
		writeList(buf, c.List)
	default:
		buf.WriteString(c.Kind.String())
	}
}

func writeList(buf *bytes.Buffer, l List) {
	buf.WriteByte('(')
	rest := l
	if len(l) > 0 && !l[0].Kind.IsAtom() && l[0].Kind != token.Expr {
		writeCell(buf, l[0])
		rest = l[1:]
		if len(rest) > 0 {
			buf.WriteByte(' ')
		}
	}
	for i, c := range rest {
		if i > 0 {
			buf.WriteByte(' ')
		}
		writeCell(buf, c)
	}
	buf.WriteByte(')')
}
