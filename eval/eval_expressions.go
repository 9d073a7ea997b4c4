/*
File    : reach/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strconv"

	"github.com/akashmaji946/reach/env"
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/parser"
	"github.com/akashmaji946/reach/runtime"
)

// evalExpression is the central evaluation dispatcher: it routes each
// Expression node to its handler and threads the Running/Breaking signal
// through every case, since a `break` inside a nested block must unwind
// through whatever expression contains that block (spec.md §4.3's state
// machine).
func (e *Evaluator) evalExpression(expr parser.Expression, current *env.Environment) (objects.Value, bool, error) {
	switch x := expr.(type) {
	case *parser.ReachExpr:
		return e.evalReach(x.Reach, current)

	case *parser.BlockExpr:
		return e.evalBlock(x, current)

	case *parser.IndexExpr:
		return e.evalIndex(x, current)

	case *parser.BinaryExpr:
		return e.evalBinary(x, current)

	case *parser.ConditionalExpr:
		return e.evalConditional(x, current)

	case *parser.CallExpr:
		return e.evalCall(x, current)

	default:
		return nil, false, &InternalError{Message: "unknown expression node"}
	}
}

func (e *Evaluator) evalConditional(x *parser.ConditionalExpr, current *env.Environment) (objects.Value, bool, error) {
	cond, breaking, err := e.evalExpression(x.Cond, current)
	if err != nil {
		return nil, false, withContext("while evaluating if-condition", err)
	}
	if breaking {
		return cond, true, nil
	}
	if objects.Truthy(cond) {
		return e.evalBlock(x.IfTrue, current)
	}
	return e.evalExpression(x.IfFalse, current)
}

func (e *Evaluator) evalBinary(x *parser.BinaryExpr, current *env.Environment) (objects.Value, bool, error) {
	left, breaking, err := e.evalExpression(x.Left, current)
	if err != nil {
		return nil, false, err
	}
	if breaking {
		return left, true, nil
	}

	// Or/And are truthiness tests; spec.md §4.3 permits short-circuiting
	// but does not require it; this implementation evaluates both sides
	// unconditionally, which is the more conservative of the two
	// permitted behaviors and matches the observed source.
	right, breaking, err := e.evalExpression(x.Right, current)
	if err != nil {
		return nil, false, err
	}
	if breaking {
		return right, true, nil
	}

	switch x.Op {
	case parser.Add:
		result, ok := objects.Add(left, right)
		if !ok {
			return nil, false, &TypeError{Op: "add", Left: left, Right: right}
		}
		return result, false, nil

	case parser.Sub:
		result, ok := objects.Sub(left, right)
		if !ok {
			return nil, false, &TypeError{Op: "sub", Left: left, Right: right}
		}
		return result, false, nil

	case parser.Cmp:
		return &objects.Boolean{Value: objects.Eq(left, right)}, false, nil

	case parser.Gt:
		result, ok := objects.Gt(left, right)
		if !ok {
			return nil, false, &TypeError{Op: "gt", Left: left, Right: right}
		}
		return result, false, nil

	case parser.Lt:
		result, ok := objects.Lt(left, right)
		if !ok {
			return nil, false, &TypeError{Op: "lt", Left: left, Right: right}
		}
		return result, false, nil

	case parser.Or:
		return &objects.Boolean{Value: objects.Truthy(left) || objects.Truthy(right)}, false, nil

	case parser.And:
		return &objects.Boolean{Value: objects.Truthy(left) && objects.Truthy(right)}, false, nil

	default:
		return nil, false, &InternalError{Message: "unknown binary operator"}
	}
}

func (e *Evaluator) evalCall(x *parser.CallExpr, current *env.Environment) (objects.Value, bool, error) {
	callee, breaking, err := e.evalExpression(x.Callee, current)
	if err != nil {
		return nil, false, err
	}
	if breaking {
		return callee, true, nil
	}

	var arg objects.Value
	if x.Arg != nil {
		argVal, breaking, err := e.evalExpression(x.Arg, current)
		if err != nil {
			return nil, false, err
		}
		if breaking {
			return argVal, true, nil
		}
		arg = argVal
	}

	switch c := callee.(type) {
	case *runtime.Closure:
		value, err := e.callClosure(c, arg)
		if err != nil {
			return nil, false, err
		}
		return value, false, nil

	case *runtime.HostCallable:
		callArg := arg
		if callArg == nil {
			callArg = objects.NoneValue
		}
		value, err := c.Fn(callArg)
		if err != nil {
			return nil, false, &UserError{Message: err.Error()}
		}
		return value, false, nil

	default:
		return nil, false, &NonCallableError{Value: callee}
	}
}

// evalIndex resolves x.Target and then its index - a virtual `.len`
// field works on any indexable value; everything else dispatches to the
// target's own kind (spec.md §4.3's Index rule).
func (e *Evaluator) evalIndex(x *parser.IndexExpr, current *env.Environment) (objects.Value, bool, error) {
	target, breaking, err := e.evalExpression(x.Target, current)
	if err != nil {
		return nil, false, err
	}
	if breaking {
		return target, true, nil
	}

	switch x.Kind {
	case parser.IndexIdent:
		if x.Name == "len" {
			return indexLen(target)
		}
		return indexByKey(target, x.Name)

	case parser.IndexNumber:
		return indexByNumber(target, x.Number)

	case parser.IndexExprKind:
		idxVal, breaking, err := e.evalExpression(x.Expr, current)
		if err != nil {
			return nil, false, err
		}
		if breaking {
			return idxVal, true, nil
		}
		switch iv := idxVal.(type) {
		case *objects.Int:
			return indexByNumber(target, iv.Value)
		case *objects.String:
			return indexByKey(target, iv.Value)
		default:
			return nil, false, &TypeError{Op: "index", Left: target, Right: idxVal}
		}

	default:
		return nil, false, &InternalError{Message: "unknown index kind"}
	}
}

func indexLen(target objects.Value) (objects.Value, bool, error) {
	switch t := target.(type) {
	case *objects.Array:
		return &objects.Int{Value: int32(len(t.Elements))}, false, nil
	case *objects.String:
		return &objects.Int{Value: int32(len(t.Value))}, false, nil
	case *objects.Object:
		return &objects.Int{Value: int32(len(t.Keys))}, false, nil
	default:
		return nil, false, &TypeError{Op: "len", Left: target}
	}
}

func indexByKey(target objects.Value, key string) (objects.Value, bool, error) {
	obj, ok := target.(*objects.Object)
	if !ok {
		return nil, false, &TypeError{Op: "index", Left: target}
	}
	v, ok := obj.Get(key)
	if !ok {
		return objects.NoneValue, false, nil
	}
	return v, false, nil
}

func indexByNumber(target objects.Value, n int32) (objects.Value, bool, error) {
	switch t := target.(type) {
	case *objects.Array:
		if n < 0 || int(n) >= len(t.Elements) {
			return objects.NoneValue, false, nil
		}
		return t.Elements[n], false, nil
	case *objects.String:
		if n < 0 || int(n) >= len(t.Value) {
			return objects.NoneValue, false, nil
		}
		return &objects.String{Value: string(t.Value[n])}, false, nil
	case *objects.Object:
		return indexByKey(target, strconv.Itoa(int(n)))
	default:
		return nil, false, &TypeError{Op: "index", Left: target}
	}
}
