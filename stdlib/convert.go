/*
File    : reach/stdlib/convert.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/reach/objects"
)

// Every builtin in this package takes exactly one call argument (spec.md's
// call form admits a single reach), so anything that needs more than one
// logical input takes it bundled as an array literal: replace([s a b]).

// argsFrom requires arg be an array and returns its elements, erroring with
// name in the message so callers don't have to repeat it.
func argsFrom(name string, arg objects.Value, want int) ([]objects.Value, error) {
	arr, ok := arg.(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("%s: expected an array of %d argument(s)", name, want)
	}
	if len(arr.Elements) != want {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", name, want, len(arr.Elements))
	}
	return arr.Elements, nil
}

func errNotArray(name string) error {
	return fmt.Errorf("%s: expected an array", name)
}

func asString(name string, v objects.Value) (string, error) {
	s, ok := v.(*objects.String)
	if !ok {
		return "", fmt.Errorf("%s: expected a string", name)
	}
	return s.Value, nil
}

func asFloat(name string, v objects.Value) (float64, error) {
	switch n := v.(type) {
	case *objects.Float:
		return float64(n.Value), nil
	case *objects.Int:
		return float64(n.Value), nil
	default:
		return 0, fmt.Errorf("%s: expected a number", name)
	}
}

func asInt(name string, v objects.Value) (int32, error) {
	n, ok := v.(*objects.Int)
	if !ok {
		return 0, fmt.Errorf("%s: expected an int", name)
	}
	return n.Value, nil
}

// valueToAny lowers a reach value into plain Go data json.Marshal can walk.
func valueToAny(v objects.Value) (interface{}, error) {
	switch val := v.(type) {
	case *objects.Boolean:
		return val.Value, nil
	case *objects.Int:
		return val.Value, nil
	case *objects.Float:
		return val.Value, nil
	case *objects.String:
		return val.Value, nil
	case *objects.None:
		return nil, nil
	case *objects.Array:
		out := make([]interface{}, len(val.Elements))
		for i, el := range val.Elements {
			conv, err := valueToAny(el)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case *objects.Object:
		out := make(map[string]interface{}, len(val.Keys))
		for _, k := range val.Keys {
			conv, err := valueToAny(val.Values[k])
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	default:
		return nil, errors.New("cannot convert value to JSON")
	}
}

// anyToValue lifts decoded JSON data back into a reach value.
func anyToValue(a interface{}) objects.Value {
	switch val := a.(type) {
	case nil:
		return objects.NoneValue
	case bool:
		return &objects.Boolean{Value: val}
	case float64:
		return &objects.Float{Value: float32(val)}
	case string:
		return &objects.String{Value: val}
	case []interface{}:
		elems := make([]objects.Value, len(val))
		for i, el := range val {
			elems[i] = anyToValue(el)
		}
		return &objects.Array{Elements: elems}
	case map[string]interface{}:
		obj := objects.NewObject()
		for k, v := range val {
			obj.Set(k, anyToValue(v))
		}
		return obj
	default:
		return objects.NoneValue
	}
}
