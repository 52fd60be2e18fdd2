// Copyright © 2024 The Slip authors

package lisp

import (
	"github.com/slip-lang/slip/parser/token"
)

// Eval evaluates the expression whose contents are expr and returns its
// value.  Eval and EvList form a recursive pair: Eval produces the single
// value of one parenthesised form while EvList produces the list of values
// of a sequence.  Both walk expr from the front and dispatch on cell kind.
func (env *Env) Eval(expr List) (*Cell, error) {
	for p := 0; p < len(expr); p++ {
		c := expr[p]
		switch {
		case c.Kind == token.Include:
			return env.include(expr, p)
		case c.Kind == token.Number, c.Kind == token.True, c.Kind == token.False:
			return c, nil
		case c.Kind == token.Quote:
			if p+1 >= len(expr) {
				return nil, ErrorConditionf(MalformedQuote, "quote expects an expression")
			}
			return expr[p+1], nil
		case c.Kind == token.Begin:
			return env.begin(expr[p+1:])
		case c.Kind == token.Lambda:
			return env.lambda(expr, p)
		case c.Kind == token.Define:
			return env.define(expr, p)
		case c.Kind == token.Expr:
			res, err := env.EvList(c.List)
			if err != nil {
				return nil, err
			}
			if len(res) != 1 {
				return Expr(res), nil
			}
			// A form evaluating to a procedure consumes the cells that
			// follow it as arguments, like a procedure-valued name does.
			if res[0].Kind == token.Proc && p+1 < len(expr) {
				args, err := env.collectArgs(expr, p+1)
				if err != nil {
					return nil, err
				}
				return env.Apply(res[0], args)
			}
			return res[0], nil
		case c.Kind == token.Let:
			return env.let(expr, p)
		case c.Kind == token.Cond:
			return env.cond(expr[p+1:])
		case c.Kind.IsPrim():
			if p+1 >= len(expr) {
				return nil, ErrorConditionf(PrimitiveArity, "%s takes at least one argument", c.Kind)
			}
			args, err := env.EvList(expr[p+1:])
			if err != nil {
				return nil, err
			}
			return applyPrim(c.Kind, args)
		case c.Kind == token.Name:
			x, err := env.Lookup(c.Str)
			if err != nil {
				return nil, err
			}
			if x.Kind != token.Proc {
				return x, nil
			}
			args, err := env.collectArgs(expr, p+1)
			if err != nil {
				return nil, err
			}
			return env.Apply(x, args)
		default:
			return nil, ErrorConditionf(UnmatchedCell, "unmatched cell in eval: %s", c.Kind)
		}
	}
	return Nil(), nil
}

// EvList evaluates a sequence of sub-expressions and returns the list of
// their values.  The dispatch mirrors Eval except that results accumulate;
// forms that consume the remainder of the sequence (define, primitives,
// procedure application) stop the walk.
func (env *Env) EvList(expr List) (List, error) {
	var res List
	for p := 0; p < len(expr); p++ {
		c := expr[p]
		switch {
		case c.Kind == token.Include:
			if _, err := env.include(expr, p); err != nil {
				return nil, err
			}
			return res, nil
		case c.Kind == token.Number, c.Kind == token.True, c.Kind == token.False:
			res = append(res, c)
		case c.Kind == token.Quote:
			if p+1 >= len(expr) {
				return nil, ErrorConditionf(MalformedQuote, "quote expects an expression")
			}
			p++
			res = append(res, expr[p])
		case c.Kind == token.Begin:
			v, err := env.begin(expr[p+1:])
			if err != nil {
				return nil, err
			}
			return append(res, v), nil
		case c.Kind == token.Lambda:
			v, err := env.lambda(expr, p)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
			p += 2
		case c.Kind == token.Define:
			v, err := env.define(expr, p)
			if err != nil {
				return nil, err
			}
			return append(res, v), nil
		case c.Kind == token.Expr:
			sub, err := env.EvList(c.List)
			if err != nil {
				return nil, err
			}
			if len(sub) != 1 {
				res = append(res, Expr(sub))
				continue
			}
			if sub[0].Kind == token.Proc && p+1 < len(expr) {
				args, err := env.collectArgs(expr, p+1)
				if err != nil {
					return nil, err
				}
				v, err := env.Apply(sub[0], args)
				if err != nil {
					return nil, err
				}
				return append(res, v), nil
			}
			res = append(res, sub[0])
		case c.Kind == token.Let:
			v, err := env.let(expr, p)
			if err != nil {
				return nil, err
			}
			return append(res, v), nil
		case c.Kind == token.Cond:
			v, err := env.cond(expr[p+1:])
			if err != nil {
				return nil, err
			}
			return append(res, v), nil
		case c.Kind.IsPrim():
			if p+1 >= len(expr) {
				return nil, ErrorConditionf(PrimitiveArity, "%s takes at least one argument", c.Kind)
			}
			args, err := env.EvList(expr[p+1:])
			if err != nil {
				return nil, err
			}
			v, err := applyPrim(c.Kind, args)
			if err != nil {
				return nil, err
			}
			return append(res, v), nil
		case c.Kind == token.Name:
			x, err := env.Lookup(c.Str)
			if err != nil {
				return nil, err
			}
			if x.Kind != token.Proc {
				res = append(res, x)
				continue
			}
			args, err := env.collectArgs(expr, p+1)
			if err != nil {
				return nil, err
			}
			v, err := env.Apply(x, args)
			if err != nil {
				return nil, err
			}
			return append(res, v), nil
		default:
			return nil, ErrorConditionf(UnmatchedCell, "unmatched cell in evlist: %s", c.Kind)
		}
	}
	return res, nil
}

// collectArgs gathers the arguments of a named procedure call beginning at
// index start.  Locally resolvable arguments are taken left to right:
// numbers stand for themselves, a quote takes the following cell unevaluated
// and a name is looked up.  The first compound cell delegates the remainder
// of the sequence to EvList and the results are concatenated.
func (env *Env) collectArgs(expr List, start int) (List, error) {
	var args List
	for p := start; p < len(expr); p++ {
		c := expr[p]
		switch c.Kind {
		case token.Number:
			args = append(args, c)
		case token.Quote:
			if p+1 >= len(expr) {
				return nil, ErrorConditionf(MalformedQuote, "quote expects an expression")
			}
			p++
			args = append(args, expr[p])
		case token.Name:
			v, err := env.Lookup(c.Str)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		default:
			rest, err := env.EvList(expr[p:])
			if err != nil {
				return nil, err
			}
			return append(args, rest...), nil
		}
	}
	return args, nil
}

// Apply applies a procedure value to fully evaluated arguments: a fresh
// frame is allocated with the procedure's captured environment as its outer
// link, parameters are bound positionally and the body is evaluated in the
// new frame.
func (env *Env) Apply(fun *Cell, args List) (*Cell, error) {
	if fun.Kind != token.Proc {
		return nil, ErrorConditionf(TypeMismatch, "not a procedure: %s", fun)
	}
	if prof := env.Runtime.Profiler; prof != nil && prof.IsEnabled() {
		defer prof.Start(fun)()
	}
	frame, err := Bind(fun.Proc.Params, args, fun.Proc.Env)
	if err != nil {
		return nil, err
	}
	return frame.Eval(fun.Proc.Body)
}

// begin evaluates a sequence for effect and returns the last value.
func (env *Env) begin(rest List) (*Cell, error) {
	if len(rest) == 0 {
		return Nil(), nil
	}
	if len(rest) > 1 {
		if _, err := env.EvList(rest[:len(rest)-1]); err != nil {
			return nil, err
		}
	}
	return env.Eval(List{rest[len(rest)-1]})
}

// lambda builds a procedure from the two cells following index p: the
// parameter list and the body.  The frame active now is captured.
func (env *Env) lambda(expr List, p int) (*Cell, error) {
	if p+2 >= len(expr) {
		return nil, ErrorConditionf(MalformedLambda, "malformed lambda expression")
	}
	params, err := expr[p+1].exprList()
	if err != nil {
		return nil, ErrorConditionf(MalformedLambda, "lambda parameters must be a list: %s", expr[p+1])
	}
	body, err := expr[p+2].exprList()
	if err != nil {
		return nil, ErrorConditionf(MalformedLambda, "lambda body must be a list: %s", expr[p+2])
	}
	return env.Runtime.NewProc(params, body, env, ""), nil
}

// define binds a name in the current frame.  The target may be a plain name
// followed by an expression, or the function shorthand whose head names the
// procedure and whose tail lists its parameters.
func (env *Env) define(expr List, p int) (*Cell, error) {
	if p+2 >= len(expr) {
		return nil, ErrorConditionf(MalformedDefine, "malformed define expression")
	}
	target := expr[p+1]
	switch target.Kind {
	case token.Name:
		v, err := env.Eval(expr[p+2:])
		if err != nil {
			return nil, err
		}
		if v.Kind == token.Proc && v.Proc.Name == "" {
			v.Proc.Name = target.Str
		}
		env.Define(target.Str, v)
		return v, nil
	case token.Expr:
		decl := target.List
		if len(decl) == 0 || decl[0].Kind != token.Name {
			return nil, ErrorConditionf(MalformedDefine, "function shorthand requires a name: %s", target)
		}
		body, err := expr[p+2].exprList()
		if err != nil {
			return nil, err
		}
		fun := env.Runtime.NewProc(decl[1:], body, env, decl[0].Str)
		env.Define(decl[0].Str, fun)
		return fun, nil
	default:
		return nil, ErrorConditionf(MalformedDefine, "unfamiliar form to define: %s", target)
	}
}

// let evaluates a list of (name value) pairs against the current frame,
// binds them into a fresh frame chained to it, and evaluates the body there.
// The fresh frame comes from the pool so that closures created in the body
// outlive it.
func (env *Env) let(expr List, p int) (*Cell, error) {
	if p+2 >= len(expr) {
		return nil, ErrorConditionf(MalformedLet, "let expects a list of bindings and a body")
	}
	bindings, err := expr[p+1].exprList()
	if err != nil {
		return nil, ErrorConditionf(MalformedLet, "let bindings must be a list: %s", expr[p+1])
	}
	local := env.Runtime.NewEnv(env)
	for _, pair := range bindings {
		b, err := pair.exprList()
		if err != nil || len(b) < 2 || b[0].Kind != token.Name {
			return nil, ErrorConditionf(MalformedLet, "malformed let binding: %s", pair)
		}
		v, err := env.Eval(b[1:])
		if err != nil {
			return nil, err
		}
		local.Define(b[0].Str, v)
	}
	body := expr[p+2:]
	if len(body) == 1 && body[0].Kind == token.Expr {
		return local.Eval(body[0].List)
	}
	return local.Eval(body)
}

// cond walks clauses in order.  A clause whose predicate is else must come
// last; otherwise the first truthy predicate selects the clause.  With no
// matching clause the value is the empty list.
func (env *Env) cond(clauses List) (*Cell, error) {
	for p := 0; p < len(clauses); p++ {
		clause, err := clauses[p].exprList()
		if err != nil || len(clause) < 2 {
			return nil, ErrorConditionf(TypeMismatch, "malformed cond clause: %s", clauses[p])
		}
		if clause[0].Kind == token.Else {
			if p != len(clauses)-1 {
				return nil, ErrorConditionf(ElseMisplaced, "else clause not at end of cond")
			}
			return env.Eval(clause[1:])
		}
		pred, err := env.Eval(List{clause[0]})
		if err != nil {
			return nil, err
		}
		if pred.Truthy() {
			return env.Eval(clause[1:])
		}
	}
	return Nil(), nil
}

// include pushes the named file onto the source stack and returns the
// Include sentinel.  The path may be written bare or in double quotes.
// Parsing resumes from the new source and pops back transparently when it
// is exhausted.
func (env *Env) include(expr List, p int) (*Cell, error) {
	if p+1 >= len(expr) {
		return nil, ErrorConditionf(IncludeError, "include expects a file path")
	}
	path, err := expr[p+1].text()
	if err != nil {
		return nil, err
	}
	if len(path) >= 2 && path[0] == '"' && path[len(path)-1] == '"' {
		path = path[1 : len(path)-1]
	}
	if env.Runtime.Sources == nil {
		return nil, ErrorConditionf(IncludeError, "no source stack to include %s into", path)
	}
	lib := env.Runtime.Library
	if lib == nil {
		lib = &RelativeFileSystemLibrary{}
	}
	rc, err := lib.Open(path)
	if err != nil {
		return nil, ErrorConditionf(IncludeError, "cannot include %s: %v", path, err)
	}
	env.Runtime.Sources.Push(path, rc)
	return New(token.Include), nil
}
