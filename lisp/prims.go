// Copyright © 2024 The Slip authors

package lisp

import (
	"strings"

	"github.com/slip-lang/slip/parser/token"
)

// applyPrim applies a primitive operator to a fully evaluated argument list.
// The evaluator guarantees at least one argument.
func applyPrim(prim token.Kind, args List) (*Cell, error) {
	if len(args) == 0 {
		return nil, ErrorConditionf(PrimitiveArity, "%s takes at least one argument", prim)
	}
	switch prim {
	case token.Add:
		return foldNumeric(args, func(acc, x float64) float64 { return acc + x })
	case token.Sub:
		return foldNumeric(args, func(acc, x float64) float64 { return acc - x })
	case token.Mul:
		return foldNumeric(args, func(acc, x float64) float64 { return acc * x })
	case token.Div:
		// Division by zero is unchecked and yields IEEE infinity or NaN.
		return foldNumeric(args, func(acc, x float64) float64 { return acc / x })
	case token.Cat:
		var sb strings.Builder
		for _, a := range args {
			s, err := a.text()
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
		}
		return Name(sb.String()), nil
	case token.Less:
		if err := wantBinary(prim, args); err != nil {
			return nil, err
		}
		lt, err := less(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return Bool(lt), nil
	case token.Equal:
		if err := wantBinary(prim, args); err != nil {
			return nil, err
		}
		eq, err := equal(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return Bool(eq), nil
	case token.Greater:
		// a > b is b < a, not the negation of < and =.
		if err := wantBinary(prim, args); err != nil {
			return nil, err
		}
		gt, err := less(args[1], args[0])
		if err != nil {
			return nil, err
		}
		return Bool(gt), nil
	case token.And:
		for _, a := range args {
			if a.Kind == token.False {
				return a, nil
			}
		}
		return Bool(true), nil
	case token.Or:
		for _, a := range args {
			if a.Kind == token.True {
				return a, nil
			}
		}
		return Bool(false), nil
	case token.Not:
		return Bool(args[0].Kind == token.False), nil
	case token.List, token.Cons:
		// Identical; cons conventionally takes two arguments.
		return Expr(args), nil
	case token.Car:
		if !args[0].IsList() {
			return args[0], nil
		}
		if len(args[0].List) == 0 {
			return Nil(), nil
		}
		return args[0].List[0], nil
	case token.Cdr:
		if !args[0].IsList() {
			return Nil(), nil
		}
		l := args[0].List
		switch {
		case len(l) <= 1:
			return Nil(), nil
		case len(l) == 2:
			return l[1], nil
		default:
			return Expr(l[1:]), nil
		}
	case token.Empty:
		return Bool(args[0].IsList() && len(args[0].List) == 0), nil
	default:
		return nil, ErrorConditionf(UnmatchedCell, "mismatch in apply_prim: %s", prim)
	}
}

func foldNumeric(args List, op func(acc, x float64) float64) (*Cell, error) {
	acc, err := args[0].number()
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		x, err := a.number()
		if err != nil {
			return nil, err
		}
		acc = op(acc, x)
	}
	return Number(acc), nil
}

func wantBinary(prim token.Kind, args List) error {
	if len(args) < 2 {
		return ErrorConditionf(PrimitiveArity, "%s takes two arguments", prim)
	}
	return nil
}
