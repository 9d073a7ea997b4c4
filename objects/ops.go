/*
File    : reach/objects/ops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

// This file holds the total dispatch tables for reach's binary operators.
// Each operator is a function over the tag-pair space of Value, returning
// (result, ok); ok == false means the operator is not defined for that
// pair of kinds and the caller (package eval) turns that into a runtime
// error. Keeping the tables here, local to the operator, mirrors the
// original Rust implementation's langlib::Value::{add,sub,gt,lt} match
// blocks rather than scattering dispatch across per-type methods.

// Add implements spec §4.3's Add table: matching numerics (with int/float
// promotion), string concatenation, element-wise array concatenation, and
// None acting as identity on either side.
func Add(a, b Value) (Value, bool) {
	switch x := a.(type) {
	case *Int:
		switch y := b.(type) {
		case *Int:
			return &Int{Value: x.Value + y.Value}, true
		case *Float:
			return &Float{Value: float32(x.Value) + y.Value}, true
		case *None:
			return x, true
		}
	case *Float:
		switch y := b.(type) {
		case *Float:
			return &Float{Value: x.Value + y.Value}, true
		case *Int:
			return &Float{Value: x.Value + float32(y.Value)}, true
		case *None:
			return x, true
		}
	case *String:
		if y, ok := b.(*String); ok {
			return &String{Value: x.Value + y.Value}, true
		}
	case *Array:
		if y, ok := b.(*Array); ok {
			combined := make([]Value, 0, len(x.Elements)+len(y.Elements))
			combined = append(combined, x.Elements...)
			combined = append(combined, y.Elements...)
			return &Array{Elements: combined}, true
		}
	case *None:
		return b, true
	}
	if IsNone(b) {
		return a, true
	}
	return nil, false
}

// Sub implements spec §4.3's Sub table: numeric only (with promotion);
// None on the left behaves as 0, None on the right is identity.
func Sub(a, b Value) (Value, bool) {
	if _, ok := a.(*None); ok {
		return Sub(&Int{Value: 0}, b)
	}
	if IsNone(b) {
		return a, true
	}
	switch x := a.(type) {
	case *Int:
		switch y := b.(type) {
		case *Int:
			return &Int{Value: x.Value - y.Value}, true
		case *Float:
			return &Float{Value: float32(x.Value) - y.Value}, true
		}
	case *Float:
		switch y := b.(type) {
		case *Float:
			return &Float{Value: x.Value - y.Value}, true
		case *Int:
			return &Float{Value: x.Value - float32(y.Value)}, true
		}
	}
	return nil, false
}

// Eq implements the Cmp operator: lenient cross-type numeric comparison
// (int vs float promoted) and structural equality otherwise.
func Eq(a, b Value) bool {
	switch x := a.(type) {
	case *Int:
		switch y := b.(type) {
		case *Int:
			return x.Value == y.Value
		case *Float:
			return float32(x.Value) == y.Value
		}
		return false
	case *Float:
		switch y := b.(type) {
		case *Float:
			return x.Value == y.Value
		case *Int:
			return x.Value == float32(y.Value)
		}
		return false
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *None:
		_, ok := b.(*None)
		return ok
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Eq(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || len(x.Values) != len(y.Values) {
			return false
		}
		for k, v := range x.Values {
			yv, ok := y.Values[k]
			if !ok || !Eq(v, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Gt implements the Gt table: numeric with promotion; None orders below
// every other value (None > x is always false, x > None is always true,
// None > None is false).
func Gt(a, b Value) (Value, bool) {
	if _, aNone := a.(*None); aNone {
		// None orders below everything, including itself: None > None is false.
		return &Boolean{Value: false}, true
	}
	if _, bNone := b.(*None); bNone {
		return &Boolean{Value: true}, true
	}
	switch x := a.(type) {
	case *Int:
		switch y := b.(type) {
		case *Int:
			return &Boolean{Value: x.Value > y.Value}, true
		case *Float:
			return &Boolean{Value: float32(x.Value) > y.Value}, true
		}
	case *Float:
		switch y := b.(type) {
		case *Float:
			return &Boolean{Value: x.Value > y.Value}, true
		case *Int:
			return &Boolean{Value: x.Value > float32(y.Value)}, true
		}
	}
	return nil, false
}

// Lt implements the Lt table: numeric with promotion; None orders below
// every other value (None < x is always true except None < None, which
// is false; x < None is always false).
func Lt(a, b Value) (Value, bool) {
	_, aNone := a.(*None)
	_, bNone := b.(*None)
	if aNone && bNone {
		return &Boolean{Value: false}, true
	}
	if aNone {
		return &Boolean{Value: true}, true
	}
	if bNone {
		return &Boolean{Value: false}, true
	}
	switch x := a.(type) {
	case *Int:
		switch y := b.(type) {
		case *Int:
			return &Boolean{Value: x.Value < y.Value}, true
		case *Float:
			return &Boolean{Value: float32(x.Value) < y.Value}, true
		}
	case *Float:
		switch y := b.(type) {
		case *Float:
			return &Boolean{Value: x.Value < y.Value}, true
		case *Int:
			return &Boolean{Value: x.Value < float32(y.Value)}, true
		}
	}
	return nil, false
}
