// Copyright © 2024 The Slip authors

package lisp

import (
	"errors"
	"fmt"
)

// Error condition names.  Conditions classify an error for programmatic
// handling; the accompanying message is for people.
const (
	UnbalancedParens = "unbalanced-parens"
	MalformedDefine  = "malformed-define"
	MalformedLambda  = "malformed-lambda"
	MalformedLet     = "malformed-let"
	MalformedQuote   = "malformed-quote"
	ElseMisplaced    = "else-misplaced"
	PrimitiveArity   = "primitive-arity"
	ArityMismatch    = "arity-mismatch"
	UnboundName      = "unbound-name"
	TypeMismatch     = "type-mismatch"
	UnmatchedCell    = "unmatched-cell"
	IncludeError     = "include-error"
)

// Error is an evaluation or parse failure.  Errors unwind eagerly to the
// driver; the global frame and the session pools are not rolled back, so
// definitions made before the failure remain in effect.
type Error struct {
	Condition string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Condition, e.Message)
}

// ErrorConditionf constructs an Error with the given condition and a
// formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) error {
	return &Error{Condition: condition, Message: fmt.Sprintf(format, v...)}
}

// Condition returns the condition name carried by err, or the empty string
// when err is not a lisp error.
func Condition(err error) string {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Condition
	}
	return ""
}
