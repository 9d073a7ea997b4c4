/*
File    : reach/stdlib/arrays.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func registerArrays(builder *runtime.HostBuilder) []*runtime.HostCallable {
	return []*runtime.HostCallable{
		builder.Register("push", pushBuiltin),
		builder.Register("pop", popBuiltin),
		builder.Register("slice", sliceBuiltin),
	}
}

// pushBuiltin takes [array, value] and returns a new array with value
// appended. Arrays are rebind-on-mutate in reach (spec.md §2), so this
// returns a fresh value rather than mutating in place.
func pushBuiltin(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("push", arg, 2)
	if err != nil {
		return nil, err
	}
	arr, ok := elems[0].(*objects.Array)
	if !ok {
		return nil, errNotArray("push")
	}
	out := make([]objects.Value, len(arr.Elements)+1)
	copy(out, arr.Elements)
	out[len(arr.Elements)] = elems[1]
	return &objects.Array{Elements: out}, nil
}

// popBuiltin returns a new array with its last element removed. Popping
// an empty array returns an empty array.
func popBuiltin(arg objects.Value) (objects.Value, error) {
	arr, ok := arg.(*objects.Array)
	if !ok {
		return nil, errNotArray("pop")
	}
	if len(arr.Elements) == 0 {
		return &objects.Array{}, nil
	}
	out := make([]objects.Value, len(arr.Elements)-1)
	copy(out, arr.Elements[:len(arr.Elements)-1])
	return &objects.Array{Elements: out}, nil
}

// sliceBuiltin takes [array, start, end] and returns the elements in
// [start, end), clamped to the array's bounds.
func sliceBuiltin(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("slice", arg, 3)
	if err != nil {
		return nil, err
	}
	arr, ok := elems[0].(*objects.Array)
	if !ok {
		return nil, errNotArray("slice")
	}
	start, err := asInt("slice", elems[1])
	if err != nil {
		return nil, err
	}
	end, err := asInt("slice", elems[2])
	if err != nil {
		return nil, err
	}
	n := int32(len(arr.Elements))
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return &objects.Array{}, nil
	}
	out := make([]objects.Value, end-start)
	copy(out, arr.Elements[start:end])
	return &objects.Array{Elements: out}, nil
}
