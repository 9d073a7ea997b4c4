/*
File    : reach/stdlib/extra_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"crypto/md5"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/reach/objects"
)

func arr(vs ...objects.Value) *objects.Array { return &objects.Array{Elements: vs} }
func str(s string) *objects.String           { return &objects.String{Value: s} }
func in(i int32) *objects.Int                { return &objects.Int{Value: i} }

func TestMathBuiltins(t *testing.T) {
	result, err := floatUnary("sqrt", math.Sqrt)(&objects.Float{Value: 9})
	require.NoError(t, err)
	assert.Equal(t, &objects.Float{Value: 3}, result)

	result, err = floatBinary("pow", math.Pow)(arr(&objects.Float{Value: 2}, &objects.Float{Value: 3}))
	require.NoError(t, err)
	assert.Equal(t, &objects.Float{Value: 8}, result)
}

func TestStringBuiltins(t *testing.T) {
	result, err := stringUnary("upper", strings.ToUpper)(str("hi"))
	require.NoError(t, err)
	assert.Equal(t, str("HI"), result)

	result, err = splitBuiltin(arr(str("a,b,c"), str(",")))
	require.NoError(t, err)
	assert.Equal(t, arr(str("a"), str("b"), str("c")), result)

	result, err = joinBuiltin(arr(arr(str("a"), str("b")), str("-")))
	require.NoError(t, err)
	assert.Equal(t, str("a-b"), result)

	result, err = replaceBuiltin(arr(str("aaa"), str("a"), str("b")))
	require.NoError(t, err)
	assert.Equal(t, str("bbb"), result)
}

func TestJSONBuiltins(t *testing.T) {
	encoded, err := encodeJSON(arr(in(1), in(2)))
	require.NoError(t, err)
	assert.Equal(t, str("[1,2]"), encoded)

	decoded, err := decodeJSON(str(`{"a": 1}`))
	require.NoError(t, err)
	obj, ok := decoded.(*objects.Object)
	require.True(t, ok)
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, &objects.Float{Value: 1}, v)
}

func TestArrayBuiltins(t *testing.T) {
	pushed, err := pushBuiltin(arr(arr(in(1)), in(2)))
	require.NoError(t, err)
	assert.Equal(t, arr(in(1), in(2)), pushed)

	popped, err := popBuiltin(arr(in(1), in(2)))
	require.NoError(t, err)
	assert.Equal(t, arr(in(1)), popped)

	sliced, err := sliceBuiltin(arr(arr(in(1), in(2), in(3)), in(1), in(3)))
	require.NoError(t, err)
	assert.Equal(t, arr(in(2), in(3)), sliced)
}

func TestCryptoBuiltins(t *testing.T) {
	result, err := digestBuiltin("md5", func(b []byte) []byte { sum := md5.Sum(b); return sum[:] })(str(""))
	require.NoError(t, err)
	assert.Equal(t, str("d41d8cd98f00b204e9800998ecf8427e"), result)
}
