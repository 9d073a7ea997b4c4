/*
File    : reach/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks a parser.Program over a layered env.Environment,
// producing objects.Value results and side effects. It owns the
// Running/Breaking state machine spec.md §4.3 describes for `break`
// propagation, closure creation and invocation, and the debug surface
// (`__pause`, `__dump_ctx`).
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/reach/env"
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/parser"
	"github.com/akashmaji946/reach/runtime"
)

// Evaluator holds everything needed to run a program: the root
// environment, the registered builtins, and the I/O sinks the debug
// surface reads and writes through.
type Evaluator struct {
	Root     *env.Environment
	Builtins *runtime.HostBuilder
	Writer   io.Writer
	Reader   *bufio.Reader
}

// New constructs an Evaluator with a root environment seeded from
// prelude (the embedder interface's `Interpreter::new(prelude)`).
// Output defaults to os.Stdout and input to os.Stdin; override with
// SetWriter/SetReader before Exec for tests or embedding.
func New(prelude map[string]objects.Value) *Evaluator {
	return &Evaluator{
		Root:     env.New(prelude),
		Builtins: runtime.NewHostBuilder(),
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects the output sink __dump_ctx writes through. Host
// callables are not affected: each writes wherever it was built to (e.g.
// stdlib's print writes to the writer passed to stdlib.Register).
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects the input source __pause reads one line from.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// RegisterBuiltin mints a new host callable via e.Builtins and binds it
// directly into the root environment's `builtins` object, per spec.md
// §4.3: "the interpreter exposes all builtins as an object bound under
// the name builtins".
func (e *Evaluator) RegisterBuiltin(name string, fn runtime.HostFunc) {
	e.BindBuiltin(e.Builtins.Register(name, fn))
}

// BindBuiltin exposes an already-minted host callable (e.g. one returned
// by stdlib.Register, which shares e.Builtins so ids stay unique) under
// its own name in the `builtins` object.
func (e *Evaluator) BindBuiltin(c *runtime.HostCallable) {
	e.builtinsObject().Set(c.Name, c)
}

func (e *Evaluator) builtinsObject() *objects.Object {
	v, ok := e.Root.Get("builtins")
	if !ok {
		obj := objects.NewObject()
		e.Root.Set("builtins", obj)
		return obj
	}
	return v.(*objects.Object)
}

// Exec runs prog's statements in the root environment and returns the
// value of the last one (or None for an empty program), per the
// embedder interface's `Interpreter::exec`.
func (e *Evaluator) Exec(prog *parser.Program) (objects.Value, error) {
	value, breaking, err := e.evalStatementsInWindow(prog.Statements, e.Root)
	if err != nil {
		return nil, err
	}
	if breaking {
		return nil, &BreakOutsideLoopError{}
	}
	return value, nil
}

// evalStatementsInWindow evaluates stmts directly inside window (which
// the caller has already pushed, or is the root environment) - used both
// by Exec at the top level and by block/loop/for bodies that need to
// bind a loop variable into the same frame the body statements run in.
func (e *Evaluator) evalStatementsInWindow(stmts []parser.Statement, window *env.Environment) (objects.Value, bool, error) {
	result := objects.NoneValue
	for i, stmt := range stmts {
		value, breaking, err := e.evalStatement(stmt, window)
		if err != nil {
			return nil, false, err
		}
		if breaking {
			return value, true, nil
		}
		if i == len(stmts)-1 {
			result = value
		}
	}
	return result, false, nil
}

// evalBlock pushes a fresh window on top of current and evaluates
// block's statements inside it - the shared entry point for block
// expressions, if/else branches and loop bodies. Function and for bodies
// push their own window and call evalStatementsInWindow directly, so they
// can bind the parameter or loop variable first.
func (e *Evaluator) evalBlock(block *parser.BlockExpr, current *env.Environment) (objects.Value, bool, error) {
	window := current.PushWindow()
	return e.evalStatementsInWindow(block.Statements, window)
}

// dumpContext writes a textual env dump to e.Writer for the __dump_ctx
// debug statement.
func (e *Evaluator) dumpContext(current *env.Environment) {
	fmt.Fprintln(e.Writer, "--- env dump ---")
	for frame := current; frame != nil; frame = frame.Parent() {
		for _, name := range frame.Names() {
			v, _ := frame.Get(name)
			fmt.Fprintf(e.Writer, "%s = %s\n", name, v.Inspect())
		}
	}
	fmt.Fprintln(e.Writer, "----------------")
}

// pause blocks on a single line of host input for the __pause debug
// statement.
func (e *Evaluator) pause() error {
	_, err := e.Reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
