// Copyright © 2024 The Slip authors

package parser

import (
	"io"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser/lexer"
	"github.com/slip-lang/slip/parser/token"
)

// CellStream produces tokens from a stack of character sources.  The stack,
// rather than a single source, is what makes include work: evaluating
// (include "f") pushes f onto the stack and subsequent tokens are drawn from
// it until it is exhausted, whereupon the stream transparently pops back to
// the previous source at the character immediately after the include form.
// Each source keeps its own scanner, so no buffered characters are lost
// across a switch.
type CellStream struct {
	stack []*streamSource
	cur   *token.Token
}

type streamSource struct {
	lex *lexer.Lexer
	rc  io.Closer
}

var _ lisp.SourceStack = (*CellStream)(nil)

// NewStream returns an empty CellStream.  A stream with no sources produces
// End tokens.
func NewStream() *CellStream {
	return &CellStream{cur: &token.Token{Kind: token.End}}
}

// Push makes r the active source.  The stream closes r when the source is
// exhausted or popped.
func (cs *CellStream) Push(name string, r io.ReadCloser) {
	cs.stack = append(cs.stack, &streamSource{
		lex: lexer.New(token.NewScanner(name, r)),
		rc:  r,
	})
}

// Pop discards the active source.  It returns false when the stack is empty.
func (cs *CellStream) Pop() bool {
	n := len(cs.stack)
	if n == 0 {
		return false
	}
	cs.stack[n-1].rc.Close() //nolint:errcheck // best-effort cleanup
	cs.stack = cs.stack[:n-1]
	return true
}

// Base reports whether the base source is active.
func (cs *CellStream) Base() bool {
	return len(cs.stack) <= 1
}

// EOF reports whether every source on the stack is exhausted.
func (cs *CellStream) EOF() bool {
	if len(cs.stack) == 0 {
		return true
	}
	return cs.Base() && cs.stack[0].lex.EOF()
}

// Get produces the next token and caches it as current.  An exhausted
// non-base source is popped and reading continues with the source beneath
// it; End is only produced once the base source is exhausted.
func (cs *CellStream) Get() *token.Token {
	for {
		n := len(cs.stack)
		if n == 0 {
			cs.cur = &token.Token{Kind: token.End}
			return cs.cur
		}
		tok := cs.stack[n-1].lex.ReadToken()
		if tok.Kind == token.End && n > 1 {
			cs.Pop()
			continue
		}
		cs.cur = tok
		return tok
	}
}

// Current returns the most recently produced token.
func (cs *CellStream) Current() *token.Token {
	return cs.cur
}

// IgnoreLine discards characters through the next newline on the active
// source.
func (cs *CellStream) IgnoreLine() {
	if n := len(cs.stack); n > 0 {
		cs.stack[n-1].lex.IgnoreLine()
	}
}
