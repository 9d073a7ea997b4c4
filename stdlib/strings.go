/*
File    : reach/stdlib/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"strings"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

// registerStrings wires the single-string builtins (upper/lower/trim/...)
// plus the multi-input ones (contains/starts_with/ends_with/split/join/
// replace), each taking its inputs bundled as an array.
func registerStrings(builder *runtime.HostBuilder) []*runtime.HostCallable {
	unary := []struct {
		name string
		fn   func(string) string
	}{
		{"upper", strings.ToUpper},
		{"lower", strings.ToLower},
		{"trim", strings.TrimSpace},
		{"reverse", reverseString},
	}

	out := make([]*runtime.HostCallable, 0, len(unary)+4)
	for _, u := range unary {
		u := u
		out = append(out, builder.Register(u.name, stringUnary(u.name, u.fn)))
	}
	out = append(out,
		builder.Register("contains", stringPredicate("contains", strings.Contains)),
		builder.Register("starts_with", stringPredicate("starts_with", strings.HasPrefix)),
		builder.Register("ends_with", stringPredicate("ends_with", strings.HasSuffix)),
		builder.Register("split", splitBuiltin),
		builder.Register("join", joinBuiltin),
		builder.Register("replace", replaceBuiltin),
	)
	return out
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func stringUnary(name string, fn func(string) string) runtime.HostFunc {
	return func(arg objects.Value) (objects.Value, error) {
		s, err := asString(name, arg)
		if err != nil {
			return nil, err
		}
		return &objects.String{Value: fn(s)}, nil
	}
}

func stringPredicate(name string, fn func(s, sub string) bool) runtime.HostFunc {
	return func(arg objects.Value) (objects.Value, error) {
		elems, err := argsFrom(name, arg, 2)
		if err != nil {
			return nil, err
		}
		s, err := asString(name, elems[0])
		if err != nil {
			return nil, err
		}
		sub, err := asString(name, elems[1])
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: fn(s, sub)}, nil
	}
}

// splitBuiltin takes [s, sep] and returns an array of string pieces.
func splitBuiltin(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("split", arg, 2)
	if err != nil {
		return nil, err
	}
	s, err := asString("split", elems[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString("split", elems[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	out := make([]objects.Value, len(parts))
	for i, p := range parts {
		out[i] = &objects.String{Value: p}
	}
	return &objects.Array{Elements: out}, nil
}

// joinBuiltin takes [array, sep] and returns the joined string.
func joinBuiltin(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("join", arg, 2)
	if err != nil {
		return nil, err
	}
	arr, ok := elems[0].(*objects.Array)
	if !ok {
		return nil, errNotArray("join")
	}
	sep, err := asString("join", elems[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = el.String()
	}
	return &objects.String{Value: strings.Join(parts, sep)}, nil
}

// replaceBuiltin takes [s, old, new] and replaces every occurrence.
func replaceBuiltin(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("replace", arg, 3)
	if err != nil {
		return nil, err
	}
	s, err := asString("replace", elems[0])
	if err != nil {
		return nil, err
	}
	old, err := asString("replace", elems[1])
	if err != nil {
		return nil, err
	}
	new, err := asString("replace", elems[2])
	if err != nil {
		return nil, err
	}
	return &objects.String{Value: strings.ReplaceAll(s, old, new)}, nil
}
