/*
File    : reach/stdlib/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"math"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

// registerMath wires the single-number math builtins (abs/sqrt/floor/...)
// plus the two-number ones (pow/min/max, called as e.g. pow([base exp])).
func registerMath(builder *runtime.HostBuilder) []*runtime.HostCallable {
	unary := []struct {
		name string
		fn   func(float64) float64
	}{
		{"abs", math.Abs},
		{"sqrt", math.Sqrt},
		{"floor", math.Floor},
		{"ceil", math.Ceil},
		{"round", math.Round},
		{"sin", math.Sin},
		{"cos", math.Cos},
		{"tan", math.Tan},
		{"log", math.Log},
		{"log10", math.Log10},
		{"exp", math.Exp},
	}

	out := make([]*runtime.HostCallable, 0, len(unary)+3)
	for _, u := range unary {
		u := u
		out = append(out, builder.Register(u.name, floatUnary(u.name, u.fn)))
	}
	out = append(out,
		builder.Register("pow", floatBinary("pow", math.Pow)),
		builder.Register("min", floatBinary("min", math.Min)),
		builder.Register("max", floatBinary("max", math.Max)),
	)
	return out
}

func floatUnary(name string, fn func(float64) float64) runtime.HostFunc {
	return func(arg objects.Value) (objects.Value, error) {
		n, err := asFloat(name, arg)
		if err != nil {
			return nil, err
		}
		return &objects.Float{Value: float32(fn(n))}, nil
	}
}

func floatBinary(name string, fn func(a, b float64) float64) runtime.HostFunc {
	return func(arg objects.Value) (objects.Value, error) {
		elems, err := argsFrom(name, arg, 2)
		if err != nil {
			return nil, err
		}
		a, err := asFloat(name, elems[0])
		if err != nil {
			return nil, err
		}
		b, err := asFloat(name, elems[1])
		if err != nil {
			return nil, err
		}
		return &objects.Float{Value: float32(fn(a, b))}, nil
	}
}
