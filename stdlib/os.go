/*
File    : reach/stdlib/os.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"os"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func registerOS(builder *runtime.HostBuilder) []*runtime.HostCallable {
	return []*runtime.HostCallable{
		builder.Register("env", envBuiltin),
		builder.Register("args", argsBuiltin),
	}
}

// envBuiltin looks up an environment variable by name, returning an empty
// string when it is unset.
func envBuiltin(arg objects.Value) (objects.Value, error) {
	name, err := asString("env", arg)
	if err != nil {
		return nil, err
	}
	return &objects.String{Value: os.Getenv(name)}, nil
}

// argsBuiltin ignores its argument and returns the process's command-line
// arguments (excluding the binary name itself) as an array of strings.
func argsBuiltin(objects.Value) (objects.Value, error) {
	raw := os.Args[1:]
	out := make([]objects.Value, len(raw))
	for i, a := range raw {
		out[i] = &objects.String{Value: a}
	}
	return &objects.Array{Elements: out}, nil
}
