/*
File    : reach/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/reach/lexer"
	"github.com/akashmaji946/reach/objects"
)

func parseOne(t *testing.T, src string) Statement {
	t.Helper()
	tokens, err := lexer.New(src).All()
	assert.NoError(t, err)
	prog, err := Parse(tokens)
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 1)
	return prog.Statements[0]
}

func TestParser_NumberReach(t *testing.T) {
	stmt := parseOne(t, `12`)
	exprStmt, ok := stmt.(*ExprStatement)
	assert.True(t, ok)
	reachExpr, ok := exprStmt.Expr.(*ReachExpr)
	assert.True(t, ok)
	valueReach, ok := reachExpr.Reach.(*ValueReach)
	assert.True(t, ok)
	assert.Equal(t, &objects.Int{Value: 12}, valueReach.Value)
}

func TestParser_FloatReach(t *testing.T) {
	stmt := parseOne(t, `3.5`)
	exprStmt := stmt.(*ExprStatement)
	reachExpr := exprStmt.Expr.(*ReachExpr)
	valueReach := reachExpr.Reach.(*ValueReach)
	assert.Equal(t, &objects.Float{Value: 3.5}, valueReach.Value)
}

func TestParser_AddExpression_RightAssociative(t *testing.T) {
	stmt := parseOne(t, `1 + 2 + 3`)
	exprStmt := stmt.(*ExprStatement)
	top, ok := exprStmt.Expr.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, Add, top.Op)

	left := top.Left.(*ReachExpr).Reach.(*ValueReach)
	assert.Equal(t, &objects.Int{Value: 1}, left.Value)

	right, ok := top.Right.(*BinaryExpr)
	assert.True(t, ok, "right operand of + must itself be a full expression (right-associative)")
	assert.Equal(t, Add, right.Op)
}

func TestParser_LetStatement(t *testing.T) {
	stmt := parseOne(t, `let x = 5`)
	let, ok := stmt.(*LetStatement)
	assert.True(t, ok)
	assert.Equal(t, "x", let.Name)
	value := let.Value.(*ReachExpr).Reach.(*ValueReach)
	assert.Equal(t, &objects.Int{Value: 5}, value.Value)
}

func TestParser_AssignStatement(t *testing.T) {
	stmt := parseOne(t, `x = 5`)
	assign, ok := stmt.(*AssignStatement)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParser_LoopAndBreak(t *testing.T) {
	tokens, err := lexer.New(`loop { break }`).All()
	assert.NoError(t, err)
	prog, err := Parse(tokens)
	assert.NoError(t, err)
	loop, ok := prog.Statements[0].(*LoopStatement)
	assert.True(t, ok)
	assert.Len(t, loop.Block.Statements, 1)
	_, ok = loop.Block.Statements[0].(*BreakStatement)
	assert.True(t, ok)
}

func TestParser_ForStatement(t *testing.T) {
	stmt := parseOne(t, `for v in xs { v }`)
	forStmt, ok := stmt.(*ForStatement)
	assert.True(t, ok)
	assert.Equal(t, "v", forStmt.Name)
	named, ok := forStmt.Iter.(*ReachExpr).Reach.(*NamedReach)
	assert.True(t, ok)
	assert.Equal(t, "xs", named.Name)
}

func TestParser_IfElseExpression(t *testing.T) {
	stmt := parseOne(t, `if x { 1 } else { 2 }`)
	exprStmt := stmt.(*ExprStatement)
	cond, ok := exprStmt.Expr.(*ConditionalExpr)
	assert.True(t, ok)
	assert.NotNil(t, cond.IfTrue)
	ifFalseBlock, ok := cond.IfFalse.(*BlockExpr)
	assert.True(t, ok)
	assert.Len(t, ifFalseBlock.Statements, 1)
}

func TestParser_IfWithoutElseYieldsEmptyBlock(t *testing.T) {
	stmt := parseOne(t, `if x { 1 }`)
	cond := stmt.(*ExprStatement).Expr.(*ConditionalExpr)
	ifFalseBlock, ok := cond.IfFalse.(*BlockExpr)
	assert.True(t, ok)
	assert.Empty(t, ifFalseBlock.Statements)
}

func TestParser_IndexByIdent(t *testing.T) {
	stmt := parseOne(t, `p.name`)
	idx, ok := stmt.(*ExprStatement).Expr.(*IndexExpr)
	assert.True(t, ok)
	assert.Equal(t, IndexIdent, idx.Kind)
	assert.Equal(t, "name", idx.Name)
}

func TestParser_IndexByNumber(t *testing.T) {
	stmt := parseOne(t, `xs.0`)
	idx := stmt.(*ExprStatement).Expr.(*IndexExpr)
	assert.Equal(t, IndexNumber, idx.Kind)
	assert.Equal(t, int32(0), idx.Number)
}

func TestParser_IndexByExpr(t *testing.T) {
	stmt := parseOne(t, `xs.[i]`)
	idx := stmt.(*ExprStatement).Expr.(*IndexExpr)
	assert.Equal(t, IndexExprKind, idx.Kind)
	assert.NotNil(t, idx.Expr)
}

func TestParser_CallNoArg(t *testing.T) {
	stmt := parseOne(t, `f()`)
	call, ok := stmt.(*ExprStatement).Expr.(*CallExpr)
	assert.True(t, ok)
	assert.Nil(t, call.Arg)
}

func TestParser_CallWithArg(t *testing.T) {
	stmt := parseOne(t, `f(x)`)
	call := stmt.(*ExprStatement).Expr.(*CallExpr)
	assert.NotNil(t, call.Arg)
}

func TestParser_FunctionLiteral(t *testing.T) {
	stmt := parseOne(t, `let add = fn(n) { n + 1 }`)
	let := stmt.(*LetStatement)
	fnLit, ok := let.Value.(*ReachExpr).Reach.(*FunctionLiteralReach)
	assert.True(t, ok)
	assert.Equal(t, "n", fnLit.Param)
	assert.Len(t, fnLit.Body.Statements, 1)
}

func TestParser_FunctionLiteralNoParam(t *testing.T) {
	stmt := parseOne(t, `let f = fn() { 1 }`)
	let := stmt.(*LetStatement)
	fnLit := let.Value.(*ReachExpr).Reach.(*FunctionLiteralReach)
	assert.Equal(t, "", fnLit.Param)
}

func TestParser_ArrayLiteral(t *testing.T) {
	stmt := parseOne(t, `[1 2 3]`)
	arr, ok := stmt.(*ExprStatement).Expr.(*ReachExpr).Reach.(*ArrayLiteralReach)
	assert.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParser_ObjectLiteral(t *testing.T) {
	stmt := parseOne(t, `obj { name: "a" age: 3 }`)
	obj, ok := stmt.(*ExprStatement).Expr.(*ReachExpr).Reach.(*ObjectLiteralReach)
	assert.True(t, ok)
	assert.Equal(t, []string{"name", "age"}, obj.Keys)
	assert.Len(t, obj.Values, 2)
}

func TestParser_ObjIdentifierElsewhereIsNamed(t *testing.T) {
	stmt := parseOne(t, `obj`)
	named, ok := stmt.(*ExprStatement).Expr.(*ReachExpr).Reach.(*NamedReach)
	assert.True(t, ok)
	assert.Equal(t, "obj", named.Name)
}

func TestParser_ParenthesizedExpression(t *testing.T) {
	stmt := parseOne(t, `(1 + 2)`)
	reach, ok := stmt.(*ExprStatement).Expr.(*ReachExpr).Reach.(*ExprReach)
	assert.True(t, ok)
	_, ok = reach.Expr.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParser_DebugPreprocessor(t *testing.T) {
	tokens, err := lexer.New(`"__pause" "__dump_ctx" "hello"`).All()
	assert.NoError(t, err)
	prog, err := Parse(tokens)
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 3)
	_, ok := prog.Statements[0].(*PauseStatement)
	assert.True(t, ok)
	_, ok = prog.Statements[1].(*DumpContextStatement)
	assert.True(t, ok)
	_, ok = prog.Statements[2].(*ExprStatement)
	assert.True(t, ok)
}

func TestParser_CmpOperator(t *testing.T) {
	stmt := parseOne(t, `a == b`)
	bin, ok := stmt.(*ExprStatement).Expr.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, Cmp, bin.Op)
}

func TestParser_MalformedNumberIsError(t *testing.T) {
	tok := lexer.Token{Kind: lexer.Number, Literal: "1.2.3"}
	_, err := parseNumberReach(tok.Literal)
	assert.Error(t, err)
	var malformed *MalformedNumberError
	assert.ErrorAs(t, err, &malformed)
}
