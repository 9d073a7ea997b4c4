/*
File    : reach/stdlib/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func TestRegister_AssignsDistinctIDsAndNames(t *testing.T) {
	var buf bytes.Buffer
	builder := runtime.NewHostBuilder()
	callables := Register(builder, &buf)

	assert.Greater(t, len(callables), 3)
	seen := map[int]bool{}
	names := map[string]bool{}
	for _, c := range callables {
		assert.False(t, seen[c.ID], "duplicate builtin id %d", c.ID)
		seen[c.ID] = true
		assert.False(t, names[c.Name], "duplicate builtin name %s", c.Name)
		names[c.Name] = true
	}
	assert.Equal(t, "print", callables[0].Name)
	assert.Equal(t, "len", callables[1].Name)
	assert.Equal(t, "typeof", callables[2].Name)
	assert.True(t, names["sqrt"])
	assert.True(t, names["encode_json"])
	assert.True(t, names["md5"])
}

func TestPrintBuiltin_WritesValueAndReturnsNone(t *testing.T) {
	var buf bytes.Buffer
	result, err := printBuiltin(&buf)(&objects.String{Value: "hi"})
	assert.NoError(t, err)
	assert.True(t, objects.IsNone(result))
	assert.Equal(t, "hi\n", buf.String())
}

func TestLenBuiltin(t *testing.T) {
	result, err := lenBuiltin(&objects.Array{Elements: []objects.Value{&objects.Int{Value: 1}, &objects.Int{Value: 2}}})
	assert.NoError(t, err)
	assert.Equal(t, &objects.Int{Value: 2}, result)

	result, err = lenBuiltin(&objects.String{Value: "abc"})
	assert.NoError(t, err)
	assert.Equal(t, &objects.Int{Value: 3}, result)

	_, err = lenBuiltin(&objects.Boolean{Value: true})
	assert.Error(t, err)
}

func TestTypeofBuiltin(t *testing.T) {
	result, err := typeofBuiltin(&objects.Int{Value: 1})
	assert.NoError(t, err)
	assert.Equal(t, &objects.String{Value: "int"}, result)
}
