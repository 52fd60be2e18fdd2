// Copyright © 2024 The Slip authors

package lisp

import (
	"github.com/slip-lang/slip/parser/token"
)

// List is an ordered sequence of cells, the sole compound data shape.  The
// parser produces one List per parenthesised form and the evaluator consumes
// and returns them.
type List []*Cell

// Cell is a tagged value: a kind plus the payload that kind calls for.  Num
// is set for Number cells, Str for Name cells, List for Expr cells and Proc
// for procedure values.  Every other kind carries no payload.  Cells are
// treated as immutable once constructed; environments rebind names to new
// cells rather than mutating old ones.
type Cell struct {
	Kind token.Kind
	Num  float64
	Str  string
	List List
	Proc *Proc
}

// Proc is a user-defined procedure: a parameter list of Name cells, a body
// list, and the environment frame captured at creation time.  The captured
// frame is a non-owning reference into the session's frame pool; many
// procedures may share one frame.  Name records the symbol the procedure was
// bound to by define, when any, and exists only for diagnostics.
type Proc struct {
	Params List
	Body   List
	Env    *Env
	Name   string
}

// New returns a payload-free cell of kind k.  It is used for keyword,
// primitive and sentinel cells.
func New(k token.Kind) *Cell {
	return &Cell{Kind: k}
}

// Number returns a Number cell.
func Number(n float64) *Cell {
	return &Cell{Kind: token.Number, Num: n}
}

// Name returns a Name cell.  Names double as the language's strings.
func Name(s string) *Cell {
	return &Cell{Kind: token.Name, Str: s}
}

// Expr wraps a list in an Expr cell.
func Expr(l List) *Cell {
	return &Cell{Kind: token.Expr, List: l}
}

// Nil returns an empty list value.
func Nil() *Cell {
	return &Cell{Kind: token.Expr}
}

// Bool returns the True or False cell for b.
func Bool(b bool) *Cell {
	if b {
		return &Cell{Kind: token.True}
	}
	return &Cell{Kind: token.False}
}

// FromToken converts a lexer token into a cell.
func FromToken(tok *token.Token) *Cell {
	switch tok.Kind {
	case token.Number:
		return Number(tok.Num)
	case token.Name:
		return Name(tok.Text)
	default:
		return New(tok.Kind)
	}
}

// Truthy reports the truthiness of c.  The only falsy value is a cell of
// kind False; numbers including zero, names, procedures and lists including
// the empty list are all truthy.
func (c *Cell) Truthy() bool {
	return c.Kind != token.False
}

// IsList reports whether c is an Expr cell.
func (c *Cell) IsList() bool {
	return c.Kind == token.Expr
}

// number extracts the Number payload or reports a type mismatch.
func (c *Cell) number() (float64, error) {
	if c.Kind != token.Number {
		return 0, ErrorConditionf(TypeMismatch, "expected a number: %s", c)
	}
	return c.Num, nil
}

// text extracts the Name payload or reports a type mismatch.
func (c *Cell) text() (string, error) {
	if c.Kind != token.Name {
		return "", ErrorConditionf(TypeMismatch, "expected a name: %s", c)
	}
	return c.Str, nil
}

// exprList extracts the Expr payload or reports a type mismatch.
func (c *Cell) exprList() (List, error) {
	if c.Kind != token.Expr {
		return nil, ErrorConditionf(TypeMismatch, "expected a list: %s", c)
	}
	return c.List, nil
}
