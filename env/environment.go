/*
File    : reach/env/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements reach's layered variable environment: the
// get/set/assign/push_window contract that both the interpreter and
// closures are built on.
//
// An Environment is one frame in a chain of frames, newest on the outside.
// Unlike the teacher go-mix's Scope (which can be Copy()'d into an
// independent snapshot for closures), an Environment is always shared by
// pointer: a closure captures the *Environment that was current at the
// moment it was created, and because a Go pointer to a struct containing a
// map is already a shared, mutable handle, writes made through any path
// that reaches the same frame are visible on every other path that holds
// it. That is exactly the "capture by handle, not by value" invariant
// spec.md requires of closures (§3 Invariants) — it falls out of Go's
// reference semantics for free, where the original Rust implementation
// needed an explicit Rc<RefCell<_>> (and a deliberate, documented memory
// leak to avoid fighting the borrow checker over the resulting cycles).
// Go's garbage collector already handles the cycles a closure capturing
// its own binding would create, so there is nothing to bend here.
package env

import "github.com/akashmaji946/reach/objects"

// Environment is one scope frame plus a link to the frame it was pushed
// on top of. The zero value is not useful; construct with New.
type Environment struct {
	vars   map[string]objects.Value
	parent *Environment
}

// New creates a fresh root environment with no parent and the given
// initial bindings (the "prelude" the embedder interface passes to
// Interpreter::new).
func New(prelude map[string]objects.Value) *Environment {
	vars := make(map[string]objects.Value, len(prelude))
	for k, v := range prelude {
		vars[k] = v
	}
	return &Environment{vars: vars}
}

// PushWindow returns a new Environment whose frame list is e's frames plus
// a fresh, empty frame on top. e itself is untouched, so holders of e
// (including any closure that has already captured it) keep seeing e's
// own frame grow independently of what happens in the pushed child -
// blocks, function calls and for-loop bodies all push a window at entry.
func (e *Environment) PushWindow() *Environment {
	return &Environment{vars: make(map[string]objects.Value), parent: e}
}

// Get walks frames newest-to-oldest looking for name, per spec.md's
// "Lookup walks the frames newest-to-oldest."
func (e *Environment) Get(name string) (objects.Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set inserts name into the current (newest) frame, shadowing any outer
// binding of the same name for subsequent lookups from inside this frame.
// This is the binding half of `let`.
func (e *Environment) Set(name string, v objects.Value) {
	e.vars[name] = v
}

// Parent returns the frame e was pushed on top of, or nil for a root
// environment. Exposed so callers like __dump_ctx can walk the whole
// chain without package env growing a bespoke dump method of its own.
func (e *Environment) Parent() *Environment { return e.parent }

// Names returns the variable names bound directly in e's own frame (not
// its ancestors), in no particular order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}

// Assign updates the nearest enclosing frame that already binds name,
// walking newest-to-oldest exactly like Get. It reports whether any frame
// had the name; assignment never creates a new binding.
func (e *Environment) Assign(name string, v objects.Value) bool {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = v
			return true
		}
	}
	return false
}
