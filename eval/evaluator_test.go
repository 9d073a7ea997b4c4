/*
File    : reach/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/reach/lexer"
	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/parser"
)

func run(t *testing.T, src string) (objects.Value, error) {
	t.Helper()
	tokens, err := lexer.New(src).All()
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)
	ev := New(nil)
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	return ev.Exec(prog)
}

func assertValuesEqual(t *testing.T, want, got objects.Value) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestExec_IntegerAddition(t *testing.T) {
	v, err := run(t, `let x = 2 let y = 3 x + y`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 5}, v)
}

func TestExec_StringConcatenation(t *testing.T) {
	v, err := run(t, `let s = "ab" s + "cd"`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.String{Value: "abcd"}, v)
}

func TestExec_ClosureCapturesByHandle(t *testing.T) {
	v, err := run(t, `let mk = fn(n) { fn() { n = n + 1 n } } let c = mk(10) c() c()`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 12}, v)
}

func TestExec_ObjectLiteralAndIndex(t *testing.T) {
	v, err := run(t, `let p = obj { name: "a" age: 3 } p.name`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.String{Value: "a"}, v)

	v, err = run(t, `let p = obj { name: "a" age: 3 } p.age + 1`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 4}, v)

	v, err = run(t, `let p = obj { name: "a" age: 3 } p.len`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 2}, v)
}

func TestExec_ForOverArraySum(t *testing.T) {
	v, err := run(t, `let xs = [10 20 30] let sum = 0 for v in xs { sum = sum + v } sum`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 60}, v)
}

func TestExec_LoopBreak(t *testing.T) {
	v, err := run(t, `let i = 0 loop { if i == 3 { break } else { i = i + 1 } } i`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 3}, v)
}

func TestExec_Shadowing(t *testing.T) {
	v, err := run(t, `let x = 1 let y = if x == 1 { let x = 2 x } else { 0 } y + x`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 3}, v)
}

func TestExec_NumericPromotion(t *testing.T) {
	v, err := run(t, `1 + 2.5`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Float{Value: 3.5}, v)
}

func TestExec_BreakOutsideLoopIsError(t *testing.T) {
	_, err := run(t, `break`)
	assert.Error(t, err)
	var brk *BreakOutsideLoopError
	assert.ErrorAs(t, err, &brk)
}

func TestExec_UndefinedVariable(t *testing.T) {
	_, err := run(t, `x`)
	assert.Error(t, err)
	var undef *UndefinedVariableError
	assert.ErrorAs(t, err, &undef)
	assert.False(t, undef.IsAssign)
}

func TestExec_UndefinedAssignment(t *testing.T) {
	_, err := run(t, `x = 1`)
	assert.Error(t, err)
	var undef *UndefinedVariableError
	assert.ErrorAs(t, err, &undef)
	assert.True(t, undef.IsAssign)
}

func TestExec_NonCallable(t *testing.T) {
	_, err := run(t, `let x = 1 x()`)
	assert.Error(t, err)
	var nc *NonCallableError
	assert.ErrorAs(t, err, &nc)
}

func TestExec_TypeErrorOnAdd(t *testing.T) {
	_, err := run(t, `let x = 1 let y = "a" x + y`)
	assert.Error(t, err)
	var te *TypeError
	assert.ErrorAs(t, err, &te)
}

func TestExec_ArrayOutOfRangeYieldsNone(t *testing.T) {
	v, err := run(t, `let xs = [1 2] xs.5`)
	assert.NoError(t, err)
	assert.True(t, objects.IsNone(v))
}

func TestExec_NoneIsIdentityForAdd(t *testing.T) {
	// an if without else whose condition is false yields None
	v, err := run(t, `let none = if 0 { 1 } none + 5`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 5}, v)
}

func TestExec_DumpContextWritesOutput(t *testing.T) {
	tokens, err := lexer.New(`let x = 1 "__dump_ctx"`).All()
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)
	ev := New(nil)
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	_, err = ev.Exec(prog)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "x = ")
}

func TestExec_ForOverObjectNextClosure(t *testing.T) {
	v, err := run(t, `
let mk = fn(n) {
	obj { next: fn() { if n > 0 { let cur = n n = n - 1 cur } } }
}
let counter = mk(3)
let total = 0
for v in counter { total = total + v }
total`)
	assert.NoError(t, err)
	assertValuesEqual(t, &objects.Int{Value: 6}, v)
}
