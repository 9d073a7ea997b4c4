/*
File    : reach/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/reach/objects"
)

// UndefinedVariableError reports a lookup or assignment against a name no
// enclosing frame binds. IsAssign distinguishes the two spec.md §7 calls
// out: reading an undefined name vs. assigning to one.
type UndefinedVariableError struct {
	Name     string
	IsAssign bool
}

func (e *UndefinedVariableError) Error() string {
	if e.IsAssign {
		return fmt.Sprintf("eval: cannot assign to undefined variable %q", e.Name)
	}
	return fmt.Sprintf("eval: undefined variable %q", e.Name)
}

// TypeError reports an operator applied to a pair of value kinds it has
// no case for.
type TypeError struct {
	Op    string
	Left  objects.Value
	Right objects.Value
}

func (e *TypeError) Error() string {
	right := "<none>"
	if e.Right != nil {
		right = string(e.Right.Kind())
	}
	return fmt.Sprintf("eval: %s not defined for %s and %s", e.Op, e.Left.Kind(), right)
}

// NonCallableError reports a call whose callee is neither a closure nor a
// host-callable.
type NonCallableError struct {
	Value objects.Value
}

func (e *NonCallableError) Error() string {
	return fmt.Sprintf("eval: %s is not callable", e.Value.Kind())
}

// MissingArgumentError reports a call to a one-parameter closure with no
// argument supplied.
type MissingArgumentError struct {
	Param string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("eval: missing argument for parameter %q", e.Param)
}

// NonIterableError reports a `for` whose iterable is neither an array nor
// an object exposing a `next` closure.
type NonIterableError struct {
	Value objects.Value
}

func (e *NonIterableError) Error() string {
	return fmt.Sprintf("eval: %s is not iterable", e.Value.Kind())
}

// UserError is the generic user-raised runtime error spec.md §7 names: a
// string payload, typically produced by a host-callable.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// BreakOutsideLoopError reports a `break` signal that unwound all the way
// to the outermost evaluation without being caught by any `loop`/`for`.
type BreakOutsideLoopError struct{}

func (e *BreakOutsideLoopError) Error() string {
	return "eval: break outside of any loop"
}

// InternalError marks a state the interpreter considers unreachable; it
// exists so a defensive default branch has something distinct to return
// rather than silently misbehaving.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "eval: internal error: " + e.Message }

// withContext prepends a context string to err, building the message
// chain spec.md §7 describes ("while parsing an object literal", "while
// declaring variable X", ...).
func withContext(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
