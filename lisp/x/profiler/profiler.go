// Package profiler instruments procedure application with tracing spans.
package profiler

import (
	"fmt"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser/token"
)

// profiler is a minimal lisp.Profiler
type profiler struct {
	runtime    *lisp.Runtime
	enabled    bool
	skipFilter SkipFilter
}

var _ lisp.Profiler = &profiler{}

// SkipFilter reports procedures that should not be traced.
type SkipFilter func(fun *lisp.Cell) bool

// Option customizes an annotator.
type Option func(*profiler)

// WithSkipFilter installs a filter suppressing spans for selected
// procedures.
func WithSkipFilter(fn SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = fn
	}
}

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Start(fun *lisp.Cell) func() {
	return func() {}
}

func (p *profiler) Complete() error {
	return nil
}

// funLabel names the span for an application: the symbol the procedure was
// bound to by define, or "lambda" for anonymous procedures.
func funLabel(fun *lisp.Cell) string {
	if fun == nil || fun.Kind != token.Proc || fun.Proc == nil {
		return ""
	}
	if fun.Proc.Name != "" {
		return fun.Proc.Name
	}
	return "lambda"
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(fun *lisp.Cell) bool {
	if !p.enabled {
		return true
	}
	if funLabel(fun) == "" {
		return true
	}
	return p.skipFilter != nil && p.skipFilter(fun)
}
