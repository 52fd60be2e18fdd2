// Copyright © 2024 The Slip authors

package lisp

import (
	"io"
	"os"

	"github.com/slip-lang/slip/parser/token"
)

// Pool capacities reserved at session start.  The pools are append-only and
// grow past these sizes if needed; handles are pointers, which remain stable
// regardless.
const (
	defaultProcCap = 10000
	defaultEnvCap  = 40000
)

// Reader parses one top-level expression from the session's source stack.
// The parser package provides the standard implementation.
type Reader interface {
	// ParseOne reads one balanced expression and returns its contents.  It
	// returns io.EOF when the source stack is exhausted.
	ParseOne() (List, error)
}

// SourceStack is the LIFO of character sources feeding the token stream.
// Include pushes a new source; an exhausted source pops transparently.
type SourceStack interface {
	// Push makes r the active source.  The stream takes ownership of r and
	// closes it when the source is exhausted or popped.
	Push(name string, r io.ReadCloser)
	// Pop discards the active source, the base source included, returning
	// false when the stack is already empty.
	Pop() bool
	// Base reports whether the base source is active.
	Base() bool
	// EOF reports whether every source on the stack is exhausted.
	EOF() bool
}

// Library opens included files.  Abstracting the filesystem keeps file I/O
// out of the evaluator and lets embeddings deny or redirect includes.
type Library interface {
	Open(path string) (io.ReadCloser, error)
}

// RelativeFileSystemLibrary opens include paths relative to the process
// working directory.
type RelativeFileSystemLibrary struct{}

// Open implements Library.
func (*RelativeFileSystemLibrary) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Profiler instruments procedure application.  A Profiler must be enabled
// before it records anything.
type Profiler interface {
	// IsEnabled returns true if the profiler is recording applications.
	IsEnabled() bool
	// Enable starts the profiler.
	Enable() error
	// Complete finalizes any trace data.
	Complete() error
	// Start records entry into fun and returns a function recording the
	// corresponding exit.
	Start(fun *Cell) func()
}

// Runtime owns the per-session state shared by every frame: the procedure
// and frame pools, the output sink, the source stack and reader feeding the
// evaluator, and the include library.  A Runtime must not be shared between
// sessions.
type Runtime struct {
	Procs    []*Proc
	Envs     []*Env
	Stdout   io.Writer
	Reader   Reader
	Sources  SourceStack
	Library  Library
	Profiler Profiler
}

// StandardRuntime returns a Runtime with pre-reserved pools writing to the
// process standard output.
func StandardRuntime() *Runtime {
	return &Runtime{
		Procs:   make([]*Proc, 0, defaultProcCap),
		Envs:    make([]*Env, 0, defaultEnvCap),
		Stdout:  os.Stdout,
		Library: &RelativeFileSystemLibrary{},
	}
}

// NewEnv allocates a frame from the pool.
func (rt *Runtime) NewEnv(outer *Env) *Env {
	env := &Env{
		Scope:   make(map[string]*Cell),
		Outer:   outer,
		Runtime: rt,
	}
	rt.Envs = append(rt.Envs, env)
	return env
}

// NewProc allocates a procedure from the pool and returns its handle cell.
// The environment captured is the frame active at creation time.
func (rt *Runtime) NewProc(params, body List, env *Env, name string) *Cell {
	proc := &Proc{
		Params: params,
		Body:   body,
		Env:    env,
		Name:   name,
	}
	rt.Procs = append(rt.Procs, proc)
	return &Cell{Kind: token.Proc, Proc: proc}
}
