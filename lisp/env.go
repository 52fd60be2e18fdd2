// Copyright © 2024 The Slip authors

package lisp

import (
	"github.com/slip-lang/slip/parser/token"
)

// Env is one level of the environment: a name-to-cell mapping with a link to
// the lexically enclosing frame.  A frame with no outer link is the global
// frame.  Frames live in the session's append-only pool and are never
// reclaimed; closures hold long-lived references to them.
type Env struct {
	Scope   map[string]*Cell
	Outer   *Env
	Runtime *Runtime
}

// NewEnv initializes and returns a new Env.  When parent is nil the returned
// frame is a global frame with a fresh standard runtime; otherwise the frame
// chains to parent and shares its runtime.
func NewEnv(parent *Env) *Env {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = StandardRuntime()
	}
	return rt.NewEnv(parent)
}

// Lookup resolves name by walking frames outward.  A miss at the global
// frame is an unbound-name error.
func (env *Env) Lookup(name string) (*Cell, error) {
	for e := env; e != nil; e = e.Outer {
		if v, ok := e.Scope[name]; ok {
			return v, nil
		}
	}
	return nil, ErrorConditionf(UnboundName, "unbound name: %s", name)
}

// Define binds name in the current frame, shadowing any outer binding.
func (env *Env) Define(name string, v *Cell) {
	env.Scope[name] = v
}

// Bind allocates a call frame whose outer link is outer and binds each
// parameter to the corresponding argument.  Each parameter consumes exactly
// one argument and the counts must agree.
func Bind(params, args List, outer *Env) (*Env, error) {
	if len(params) != len(args) {
		return nil, ErrorConditionf(ArityMismatch,
			"procedure expects %d arguments, got %d", len(params), len(args))
	}
	frame := outer.Runtime.NewEnv(outer)
	for i, p := range params {
		if p.Kind != token.Name {
			return nil, ErrorConditionf(TypeMismatch, "parameter is not a name: %s", p)
		}
		frame.Scope[p.Str] = args[i]
	}
	return frame, nil
}
