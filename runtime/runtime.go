/*
File    : reach/runtime/runtime.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package runtime holds the three objects.Value variants that need to
// refer back to the parser's AST and the env package's Environment -
// Function, Closure and HostCallable - which would create an import
// cycle if they lived in package objects alongside the plain data values.
package runtime

import (
	"fmt"

	"github.com/akashmaji946/reach/env"
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/parser"
)

// Function is the bare shape of a `fn(param?) { ... }` literal: a
// parameter name (empty for zero-arg) and a body, with no captured
// environment. spec.md §4.3 treats this as an intermediate that gets
// "promoted" to a Closure the moment it becomes a runtime value; in this
// implementation that promotion happens immediately when the reach is
// evaluated (see eval.Evaluator.evalReach), so Function mostly
// exists to be embedded inside Closure rather than to circulate on its
// own.
type Function struct {
	Param string
	Body  *parser.BlockExpr
}

func (f *Function) Kind() objects.Kind { return objects.KindFunction }
func (f *Function) String() string     { return fmt.Sprintf("fn(%s)", f.Param) }
func (f *Function) Inspect() string    { return fmt.Sprintf("<function fn(%s)>", f.Param) }

// Closure pairs a Function with the environment that was live at the
// moment the function literal was evaluated. Per spec.md's §3 invariant,
// capture is by handle: Env is the same *env.Environment pointer every
// other holder of that frame chain has, so writes through the closure and
// writes through any sibling binding are mutually visible.
type Closure struct {
	Fn  *Function
	Env *env.Environment
}

func (c *Closure) Kind() objects.Kind { return objects.KindClosure }
func (c *Closure) String() string     { return fmt.Sprintf("closure fn(%s)", c.Fn.Param) }
func (c *Closure) Inspect() string    { return fmt.Sprintf("<closure fn(%s)>", c.Fn.Param) }

// NewClosure promotes fn to a closure by snapshotting currentEnv: per
// spec.md §4.3, that snapshot is currentEnv.PushWindow(), so the body
// always sees a fresh, empty frame sitting on top of whatever the
// defining scope captured - not the defining scope's own frame directly.
func NewClosure(fn *Function, currentEnv *env.Environment) *Closure {
	return &Closure{Fn: fn, Env: currentEnv.PushWindow()}
}

// HostFunc is the shape every host-provided builtin implements: single
// argument in (objects.NoneValue when the caller passed none), single
// value out, and its own error channel so a builtin can raise the
// generic user-raised runtime error spec.md §7 describes.
type HostFunc func(arg objects.Value) (objects.Value, error)

// HostCallable is a function provided by the embedder, carrying a stable
// id and a display name alongside its implementation (spec.md §4.3's
// "Host-callable registration").
type HostCallable struct {
	ID   int
	Name string
	Fn   HostFunc
}

func (h *HostCallable) Kind() objects.Kind { return objects.KindHostCallable }
func (h *HostCallable) String() string     { return fmt.Sprintf("builtin %s", h.Name) }
func (h *HostCallable) Inspect() string    { return fmt.Sprintf("<builtin %s#%d>", h.Name, h.ID) }

// HostBuilder hands out HostCallables with monotonically increasing,
// stable ids - the contract spec.md §4.3 describes for an embedder
// registering builtins before a program runs.
type HostBuilder struct {
	next int
}

// NewHostBuilder returns a builder ready to mint its first id.
func NewHostBuilder() *HostBuilder {
	return &HostBuilder{}
}

// Register mints the next id and wraps fn as a named HostCallable.
func (b *HostBuilder) Register(name string, fn HostFunc) *HostCallable {
	b.next++
	return &HostCallable{ID: b.next, Name: name, Fn: fn}
}
