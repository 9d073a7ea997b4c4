/*
File    : reach/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/reach/env"
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/parser"
)

// evalStatement evaluates one statement, returning its value (None for
// statement kinds that carry no expression result), whether a `break`
// signal is now propagating, and any error.
func (e *Evaluator) evalStatement(stmt parser.Statement, current *env.Environment) (objects.Value, bool, error) {
	switch s := stmt.(type) {
	case *parser.LetStatement:
		value, breaking, err := e.evalExpression(s.Value, current)
		if err != nil {
			return nil, false, withContext("while declaring variable "+s.Name, err)
		}
		if breaking {
			return value, true, nil
		}
		current.Set(s.Name, value)
		return value, false, nil

	case *parser.AssignStatement:
		value, breaking, err := e.evalExpression(s.Value, current)
		if err != nil {
			return nil, false, withContext("while assigning to "+s.Name, err)
		}
		if breaking {
			return value, true, nil
		}
		if !current.Assign(s.Name, value) {
			return nil, false, &UndefinedVariableError{Name: s.Name, IsAssign: true}
		}
		return value, false, nil

	case *parser.ExprStatement:
		return e.evalExpression(s.Expr, current)

	case *parser.ReturnStatement:
		value, breaking, err := e.evalExpression(s.Value, current)
		if err != nil {
			return nil, false, err
		}
		return value, breaking, nil

	case *parser.LoopStatement:
		return e.evalLoop(s, current)

	case *parser.BreakStatement:
		return objects.NoneValue, true, nil

	case *parser.ForStatement:
		return e.evalFor(s, current)

	case *parser.PauseStatement:
		if err := e.pause(); err != nil {
			return nil, false, err
		}
		return objects.NoneValue, false, nil

	case *parser.DumpContextStatement:
		e.dumpContext(current)
		return objects.NoneValue, false, nil

	default:
		return nil, false, &InternalError{Message: "unknown statement node"}
	}
}
