/*
File    : reach/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/reach/env"
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/parser"
	"github.com/akashmaji946/reach/runtime"
)

// evalLoop repeatedly evaluates the loop body in a fresh window each
// iteration until a `break` is observed, at which point the Breaking
// state is caught here and the loop itself completes normally.
func (e *Evaluator) evalLoop(s *parser.LoopStatement, current *env.Environment) (objects.Value, bool, error) {
	for {
		_, breaking, err := e.evalBlock(s.Block, current)
		if err != nil {
			return nil, false, withContext("while running loop body", err)
		}
		if breaking {
			return objects.NoneValue, false, nil
		}
	}
}

// evalFor evaluates s.Iter once, then drives the body once per produced
// value: element-by-element for an array, or by repeatedly invoking a
// `next` closure on an object until it yields None. A `break` observed
// inside the body is caught here, same as evalLoop.
func (e *Evaluator) evalFor(s *parser.ForStatement, current *env.Environment) (objects.Value, bool, error) {
	iterVal, breaking, err := e.evalExpression(s.Iter, current)
	if err != nil {
		return nil, false, withContext("while evaluating for-loop iterable", err)
	}
	if breaking {
		return iterVal, true, nil
	}

	switch iterable := iterVal.(type) {
	case *objects.Array:
		for _, elem := range iterable.Elements {
			window := current.PushWindow()
			window.Set(s.Name, elem)
			_, breaking, err := e.evalStatementsInWindow(s.Block.Statements, window)
			if err != nil {
				return nil, false, withContext("while running for-loop body", err)
			}
			if breaking {
				break
			}
		}
		return objects.NoneValue, false, nil

	case *objects.Object:
		nextVal, ok := iterable.Get("next")
		if !ok {
			return nil, false, &NonIterableError{Value: iterVal}
		}
		closure, ok := nextVal.(*runtime.Closure)
		if !ok {
			return nil, false, &NonIterableError{Value: iterVal}
		}
		for {
			produced, err := e.callClosure(closure, objects.NoneValue)
			if err != nil {
				return nil, false, withContext("while calling for-loop's next closure", err)
			}
			if objects.IsNone(produced) {
				break
			}
			window := current.PushWindow()
			window.Set(s.Name, produced)
			_, breaking, err := e.evalStatementsInWindow(s.Block.Statements, window)
			if err != nil {
				return nil, false, withContext("while running for-loop body", err)
			}
			if breaking {
				break
			}
		}
		return objects.NoneValue, false, nil

	default:
		return nil, false, &NonIterableError{Value: iterVal}
	}
}
