// Copyright © 2024 The Slip authors

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyword(t *testing.T) {
	for lexeme, want := range map[string]Kind{
		"define":  Define,
		"lambda":  Lambda,
		"cond":    Cond,
		"else":    Else,
		"cons":    Cons,
		"car":     Car,
		"cdr":     Cdr,
		"list":    List,
		"empty?":  Empty,
		"and":     And,
		"or":      Or,
		"not":     Not,
		"cat":     Cat,
		"include": Include,
		"begin":   Begin,
		"let":     Let,
	} {
		assert.Equal(t, want, Keyword(lexeme), "keyword %q", lexeme)
	}
}

func TestKeywordNotIsNotOr(t *testing.T) {
	// The table must keep not and or distinct.
	assert.Equal(t, Not, Keyword("not"))
	assert.Equal(t, Or, Keyword("or"))
	assert.NotEqual(t, Keyword("not"), Keyword("or"))
}

func TestKeywordMisses(t *testing.T) {
	assert.Equal(t, Invalid, Keyword("Define"), "keywords are case-sensitive")
	assert.Equal(t, Invalid, Keyword("defined"))
	assert.Equal(t, Invalid, Keyword("empty"))
	assert.Equal(t, Invalid, Keyword(""))
}

func TestSelf(t *testing.T) {
	for c, want := range map[byte]Kind{
		'!':  Not,
		'&':  And,
		'\'': Quote,
		'(':  Lp,
		')':  Rp,
		'*':  Mul,
		'+':  Add,
		'-':  Sub,
		';':  Comment,
		'/':  Div,
		'<':  Less,
		'=':  Equal,
		'>':  Greater,
		'|':  Or,
	} {
		assert.Equal(t, want, Self(c), "character %q", string(c))
	}
	assert.Equal(t, Invalid, Self('a'))
	assert.Equal(t, Invalid, Self('?'))
}

func TestIsPrim(t *testing.T) {
	prims := []Kind{Add, Sub, Mul, Div, Less, Equal, Greater, And, Or, Not, Cat, Cons, Car, Cdr, List, Empty}
	for _, k := range prims {
		assert.True(t, k.IsPrim(), "kind %s", k)
	}
	for _, k := range []Kind{Number, Name, True, False, End, Lp, Rp, Expr, Quote, Comment, Define, Lambda, Cond, Else, Let, Begin, Include, Proc} {
		assert.False(t, k.IsPrim(), "kind %s", k)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "+", Add.String())
	assert.Equal(t, "define", Define.String())
	assert.Equal(t, "t", True.String())
	assert.Equal(t, "f", False.String())
	assert.Equal(t, "empty?", Empty.String())
	assert.Equal(t, "invalid", Kind(250).String())
}
