/*
File    : reach/stdlib/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package stdlib is the concrete set of host builtins spec.md's §1 calls
// an "external collaborator": print, len and typeof plus math, string,
// JSON, time, crypto, regex, array and OS builtins (see Register),
// following the original Rust cli::std_builtins crate's pattern of one function-pointer
// builtin per name, registered through the interpreter's HostBuilder
// contract rather than baked into the core.
package stdlib

import (
	"errors"
	"fmt"
	"io"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

// Register wires every builtin this package provides into builder,
// writing through w, and returns them in registration order so the
// caller can bind each under the shared `builtins` object. Beyond the
// original print/len/typeof trio, this pulls in the teacher's wider
// standard library (math, strings, json, time, crypto, regex, arrays,
// os) adapted to reach's single-call-argument convention: a builtin
// needing more than one input takes an array literal as its one
// argument, e.g. replace([s old new]).
func Register(builder *runtime.HostBuilder, w io.Writer) []*runtime.HostCallable {
	out := []*runtime.HostCallable{
		builder.Register("print", printBuiltin(w)),
		builder.Register("len", lenBuiltin),
		builder.Register("typeof", typeofBuiltin),
	}
	out = append(out, registerMath(builder)...)
	out = append(out, registerStrings(builder)...)
	out = append(out, registerJSON(builder)...)
	out = append(out, registerTime(builder)...)
	out = append(out, registerCrypto(builder)...)
	out = append(out, registerRegex(builder)...)
	out = append(out, registerArrays(builder)...)
	out = append(out, registerOS(builder)...)
	return out
}

// printBuiltin writes arg's display form followed by a newline to w,
// mirroring the original print builtin's per-Value-kind formatting, and
// returns None.
func printBuiltin(w io.Writer) runtime.HostFunc {
	return func(arg objects.Value) (objects.Value, error) {
		fmt.Fprintln(w, arg.String())
		return objects.NoneValue, nil
	}
}

// lenBuiltin exposes the same length notion as the `.len` virtual index:
// array element count, string byte length, or object key count.
func lenBuiltin(arg objects.Value) (objects.Value, error) {
	switch v := arg.(type) {
	case *objects.Array:
		return &objects.Int{Value: int32(len(v.Elements))}, nil
	case *objects.String:
		return &objects.Int{Value: int32(len(v.Value))}, nil
	case *objects.Object:
		return &objects.Int{Value: int32(len(v.Keys))}, nil
	default:
		return nil, errors.New("len: argument has no length")
	}
}

// typeofBuiltin reports arg's Kind as a string, for scripts that want to
// branch on a value's runtime type.
func typeofBuiltin(arg objects.Value) (objects.Value, error) {
	return &objects.String{Value: string(arg.Kind())}, nil
}
