// Copyright © 2024 The Slip authors

// Package parser reads parenthesised expressions from a stack of character
// sources and produces cell lists for the evaluator.
package parser

import (
	"io"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser/token"
)

// Parser reads balanced expressions from a CellStream.
type Parser struct {
	stream *CellStream
}

var _ lisp.Reader = (*Parser)(nil)

// New initializes and returns a Parser reading from cs.
func New(cs *CellStream) *Parser {
	return &Parser{stream: cs}
}

// Stream returns the parser's underlying token stream.
func (p *Parser) Stream() *CellStream {
	return p.stream
}

// ParseOne reads one top-level expression and returns its contents.  Leading
// comments are skipped, the opening paren is consumed, and io.EOF is
// returned when the source stack is exhausted.
func (p *Parser) ParseOne() (lisp.List, error) {
	tok := p.stream.Get()
	for tok.Kind == token.Comment {
		p.stream.IgnoreLine()
		tok = p.stream.Get()
	}
	if tok.Kind == token.End {
		return nil, io.EOF
	}
	return p.expr()
}

// expr accumulates cells until the matching close paren.  It is entered with
// the opening paren already consumed.  A nested form recurses and is
// appended as a single Expr cell; reaching End inside a nested form is an
// unbalanced-parens error.
func (p *Parser) expr() (lisp.List, error) {
	var res lisp.List
	for {
		tok := p.stream.Get()
		switch tok.Kind {
		case token.Lp:
			sub, err := p.expr()
			if err != nil {
				return nil, err
			}
			if p.stream.Current().Kind != token.Rp {
				return nil, lisp.ErrorConditionf(lisp.UnbalancedParens, "')' expected")
			}
			res = append(res, lisp.Expr(sub))
		case token.Rp, token.End:
			return res, nil
		case token.Comment:
			p.stream.IgnoreLine()
		default:
			res = append(res, lisp.FromToken(tok))
		}
	}
}

// Read parses every top-level expression from a standalone source.  It is a
// convenience for callers that do not need a live source stack.
func Read(name string, r io.Reader) ([]lisp.List, error) {
	cs := NewStream()
	cs.Push(name, io.NopCloser(r))
	p := New(cs)
	var exprs []lisp.List
	for {
		expr, err := p.ParseOne()
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}
