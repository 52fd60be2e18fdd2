// Copyright © 2024 The Slip authors

package lisp

import (
	"testing"

	"github.com/slip-lang/slip/parser/token"
	"github.com/stretchr/testify/assert"
)

func TestCellString(t *testing.T) {
	env := NewEnv(nil)
	proc := env.Runtime.NewProc(nil, nil, env, "")
	for _, tt := range []struct {
		cell *Cell
		want string
	}{
		{Number(6), "6"},
		{Number(0.5), "0.5"},
		{Number(120), "120"},
		{Number(1e21), "1e+21"},
		{Number(-3.25), "-3.25"},
		{Name("hello"), "hello"},
		{Bool(true), "t"},
		{Bool(false), "f"},
		{proc, "proc"},
		{Nil(), "()"},
		{Expr(List{Number(1), Number(2)}), "(1 2)"},
		{Expr(List{New(token.Add), Number(1), Number(2)}), "(+ 1 2)"},
		{Expr(List{New(token.Quote), Name("x")}), "(' x)"},
		{Expr(List{Name("a"), Expr(List{Name("b")})}), "(a (b))"},
		{Expr(List{New(token.List), Number(1)}), "(list 1)"},
	} {
		assert.Equal(t, tt.want, tt.cell.String())
	}
}

func TestTruthy(t *testing.T) {
	env := NewEnv(nil)
	proc := env.Runtime.NewProc(nil, nil, env, "")
	for _, c := range []*Cell{
		Number(0),
		Number(1),
		Name(""),
		Name("x"),
		Bool(true),
		Nil(),
		Expr(List{Number(1)}),
		proc,
	} {
		assert.True(t, c.Truthy(), "cell %s", c)
	}
	assert.False(t, Bool(false).Truthy())
}

func TestFromToken(t *testing.T) {
	c := FromToken(&token.Token{Kind: token.Number, Num: 4})
	assert.Equal(t, Number(4), c)
	c = FromToken(&token.Token{Kind: token.Name, Text: "abc"})
	assert.Equal(t, Name("abc"), c)
	c = FromToken(&token.Token{Kind: token.Lambda})
	assert.Equal(t, New(token.Lambda), c)
}
