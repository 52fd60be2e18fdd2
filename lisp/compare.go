// Copyright © 2024 The Slip authors

package lisp

import (
	"github.com/slip-lang/slip/parser/token"
)

// less implements the < primitive.  Comparison is driven by the first
// argument's kind: numbers compare numerically, names lexically, lists
// lexicographically on cell order and procedures by their body lists.
// Mismatched kinds are a type error.
func less(a, b *Cell) (bool, error) {
	if a.Kind != b.Kind {
		return false, ErrorConditionf(TypeMismatch, "cannot compare %s with %s", a, b)
	}
	switch a.Kind {
	case token.Number:
		return a.Num < b.Num, nil
	case token.Name:
		return a.Str < b.Str, nil
	case token.Expr:
		return lessList(a.List, b.List)
	case token.Proc:
		return lessList(a.Proc.Body, b.Proc.Body)
	default:
		return false, ErrorConditionf(TypeMismatch, "cannot order %s values", a.Kind)
	}
}

func lessList(a, b List) (bool, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		lt, err := less(a[i], b[i])
		if err != nil {
			return false, err
		}
		if lt {
			return true, nil
		}
		gt, err := less(b[i], a[i])
		if err != nil {
			return false, err
		}
		if gt {
			return false, nil
		}
	}
	return len(a) < len(b), nil
}

// equal implements the = primitive.  Procedure equality is handle identity;
// list equality is elementwise.
func equal(a, b *Cell) (bool, error) {
	if a.Kind != b.Kind {
		return false, ErrorConditionf(TypeMismatch, "cannot compare %s with %s", a, b)
	}
	switch a.Kind {
	case token.Number:
		return a.Num == b.Num, nil
	case token.Name:
		return a.Str == b.Str, nil
	case token.True, token.False:
		return true, nil
	case token.Proc:
		return a.Proc == b.Proc, nil
	case token.Expr:
		if len(a.List) != len(b.List) {
			return false, nil
		}
		for i := range a.List {
			eq, err := equal(a.List[i], b.List[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, ErrorConditionf(TypeMismatch, "cannot compare %s values", a.Kind)
	}
}
