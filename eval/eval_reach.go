/*
File    : reach/eval/eval_reach.go
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

// evalReach evaluates a Reach node: a literal is handed back as-is, a
// name is looked up, a parenthesized sub-expression is evaluated
// recursively, and the two composite literals evaluate their elements
// left-to-right / in source order (spec.md §5's ordering guarantee).
func (e *Evaluator) evalReach(reach parser.Reach, current *env.Environment) (objects.Value, bool, error) {
	switch r := reach.(type) {
	case *parser.ValueReach:
		return r.Value, false, nil

	case *parser.NamedReach:
		v, ok := current.Get(r.Name)
		if !ok {
			return nil, false, &UndefinedVariableError{Name: r.Name}
		}
		return v, false, nil

	case *parser.ExprReach:
		return e.evalExpression(r.Expr, current)

	case *parser.ArrayLiteralReach:
		elements := make([]objects.Value, 0, len(r.Elements))
		for _, elemExpr := range r.Elements {
			value, breaking, err := e.evalExpression(elemExpr, current)
			if err != nil {
				return nil, false, err
			}
			if breaking {
				return value, true, nil
			}
			elements = append(elements, value)
		}
		return &objects.Array{Elements: elements}, false, nil

	case *parser.ObjectLiteralReach:
		obj := objects.NewObject()
		for i, valueExpr := range r.Values {
			value, breaking, err := e.evalExpression(valueExpr, current)
			if err != nil {
				return nil, false, withContext("while parsing an object literal", err)
			}
			if breaking {
				return value, true, nil
			}
			obj.Set(r.Keys[i], value)
		}
		return obj, false, nil

	case *parser.FunctionLiteralReach:
		fn := &runtime.Function{Param: r.Param, Body: r.Body}
		return runtime.NewClosure(fn, current), false, nil

	default:
		return nil, false, &InternalError{Message: "unknown reach node"}
	}
}

// callClosure pushes a window on the closure's captured environment,
// binds its single parameter (if any) to arg, and evaluates its body -
// spec.md §4.3's Call/Closure rule.
func (e *Evaluator) callClosure(c *runtime.Closure, arg objects.Value) (objects.Value, error) {
	if c.Fn.Param != "" && arg == nil {
		return nil, &MissingArgumentError{Param: c.Fn.Param}
	}
	window := c.Env.PushWindow()
	if c.Fn.Param != "" {
		bound := arg
		if bound == nil {
			bound = objects.NoneValue
		}
		window.Set(c.Fn.Param, bound)
	}
	value, breaking, err := e.evalStatementsInWindow(c.Fn.Body.Statements, window)
	if err != nil {
		return nil, err
	}
	if breaking {
		return nil, &BreakOutsideLoopError{}
	}
	return value, nil
}
