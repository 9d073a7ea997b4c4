/*
File    : reach/objects/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime value model for the reach language:
// the tagged variants a program can produce, pass around, and index into.
// Functions, closures and host-callables are deliberately NOT defined here
// (see package runtime) because they need to refer back to the parser's
// AST and the env package's Environment, which would create an import
// cycle if objects depended on them.
package objects

import "fmt"

// Kind identifies which variant of Value a given object is. It exists
// mainly so evaluator dispatch tables can switch on a comparable, printable
// tag instead of type-asserting everywhere.
type Kind string

const (
	KindBoolean Kind = "bool"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindNone    Kind = "none"

	// KindFunction, KindClosure and KindHostCallable are reserved for the
	// runtime package's types; listed here so switch statements over Kind
	// can reference them without importing runtime.
	KindFunction     Kind = "function"
	KindClosure      Kind = "closure"
	KindHostCallable Kind = "builtin"
)

// Value is the interface every reach runtime value implements: scalars,
// strings, arrays, objects, the distinguished None, and (via package
// runtime) functions, closures and host-callables.
type Value interface {
	// Kind reports which tagged variant this value is.
	Kind() Kind
	// String renders the value the way "print" would display it.
	String() string
	// Inspect renders a debug form used by __dump_ctx, with type markers.
	Inspect() string
}

// Boolean wraps the two truth values.
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind        { return KindBoolean }
func (b *Boolean) String() string    { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) Inspect() string   { return fmt.Sprintf("<bool %t>", b.Value) }

// Int is a 32-bit signed integer, per spec.
type Int struct {
	Value int32
}

func (i *Int) Kind() Kind      { return KindInt }
func (i *Int) String() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Int) Inspect() string { return fmt.Sprintf("<int %d>", i.Value) }

// Float is a 32-bit floating point number, per spec.
type Float struct {
	Value float32
}

func (f *Float) Kind() Kind      { return KindFloat }
func (f *Float) String() string  { return fmt.Sprintf("%v", f.Value) }
func (f *Float) Inspect() string { return fmt.Sprintf("<float %v>", f.Value) }

// String is a reach string value. String literals carry no escape
// processing (spec §4.1): whatever bytes were between the quotes in the
// source are the value, verbatim.
type String struct {
	Value string
}

func (s *String) Kind() Kind      { return KindString }
func (s *String) String() string  { return s.Value }
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.Value) }

// Array is an ordered, mutable-by-rebinding sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) String() string {
	out := "["
	for i, el := range a.Elements {
		if i > 0 {
			out += " "
		}
		out += el.String()
	}
	return out + "]"
}

func (a *Array) Inspect() string {
	out := "["
	for _, el := range a.Elements {
		out += " " + el.Inspect()
	}
	return out + " ]"
}

// Object is a string-keyed mapping with insertion order preserved for
// display purposes (spec notes key ordering itself is not significant).
type Object struct {
	Keys   []string
	Values map[string]Value
}

// NewObject returns an empty object ready for insertion.
func NewObject() *Object {
	return &Object{Values: make(map[string]Value)}
}

// Set inserts or overwrites a key. Duplicate keys during object-literal
// construction resolve last-write, which is exactly what a repeated Set
// does: the key keeps its original position in Keys, the value is
// replaced.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.Values[key]; !ok {
		o.Keys = append(o.Keys, key)
	}
	o.Values[key] = v
}

// Get looks up a key, returning (nil, false) if absent.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.Values[key]
	return v, ok
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) String() string {
	out := "obj {"
	for i, k := range o.Keys {
		if i > 0 {
			out += ","
		}
		out += " " + k + ": " + o.Values[k].String()
	}
	return out + " }"
}

func (o *Object) Inspect() string {
	out := "obj {"
	for _, k := range o.Keys {
		out += " " + k + ": " + o.Values[k].Inspect()
	}
	return out + " }"
}

// None is the distinguished absent value. There is exactly one logical
// None; NoneValue is the shared instance callers should use so that
// equality checks (used by Cmp) work by value, not identity.
type None struct{}

func (n *None) Kind() Kind      { return KindNone }
func (n *None) String() string  { return "None" }
func (n *None) Inspect() string { return "<None>" }

// NoneValue is the canonical None instance. Reach for it instead of
// allocating a fresh &None{} everywhere.
var NoneValue Value = &None{}

// IsNone reports whether v is the None value.
func IsNone(v Value) bool {
	_, ok := v.(*None)
	return ok
}

// Truthy implements spec §4.3's truthiness rule: boolean true is true, any
// nonzero int is true, everything else (floats, strings, arrays, objects,
// functions, closures, None, boolean false) is false.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Boolean:
		return val.Value
	case *Int:
		return val.Value != 0
	default:
		return false
	}
}
