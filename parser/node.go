/*
File    : reach/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a lexer token stream into reach's abstract program
// tree: Reach nodes (where a value comes from), Expression nodes (what is
// done with a value), and Statement nodes (what a block does, line by
// line).
package parser

import "github.com/akashmaji946/reach/objects"

// Node is the base interface every tree node satisfies.
type Node interface {
	Literal() string
}

// Reach is a "where do I get a value from" node: a literal, a named
// variable, a parenthesized sub-expression, or a composite (array/object)
// literal.
type Reach interface {
	Node
	reachNode()
}

// Expression is anything that produces a value: a reach, a block, an
// index, a binary/logical operator application, a conditional, or a call.
type Expression interface {
	Node
	expressionNode()
}

// Statement is one line of a block.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: the top-level statement sequence.
type Program struct {
	Statements []Statement
}

func (p *Program) Literal() string { return "program" }

// --- Reach variants -------------------------------------------------------

// ValueReach wraps an already-known literal Value (a string or a number).
// Function literals are FunctionLiteralReach nodes instead.
type ValueReach struct {
	Value objects.Value
}

func (*ValueReach) reachNode()        {}
func (r *ValueReach) Literal() string { return r.Value.String() }

// NamedReach looks a variable up by name in the current environment.
type NamedReach struct {
	Name string
}

func (*NamedReach) reachNode()        {}
func (r *NamedReach) Literal() string { return r.Name }

// ExprReach is a parenthesized sub-expression: `( expr )`.
type ExprReach struct {
	Expr Expression
}

func (*ExprReach) reachNode()        {}
func (r *ExprReach) Literal() string { return "(" + r.Expr.Literal() + ")" }

// ArrayLiteralReach is an ordered sequence of element expressions.
type ArrayLiteralReach struct {
	Elements []Expression
}

func (*ArrayLiteralReach) reachNode()        {}
func (r *ArrayLiteralReach) Literal() string { return "[array]" }

// ObjectLiteralReach is an ordered sequence of (key, expression) pairs;
// parsing preserves source order but duplicate keys resolve last-write
// at evaluation time, mirroring objects.Object.Set.
type ObjectLiteralReach struct {
	Keys   []string
	Values []Expression
}

func (*ObjectLiteralReach) reachNode()        {}
func (r *ObjectLiteralReach) Literal() string { return "obj{...}" }

// FunctionLiteralReach is `fn(param?) block`. It stays a bare AST shape
// rather than an objects.Value: package objects cannot import parser (it
// would cycle back through runtime), so the promotion to a running
// closure - pairing this shape with a captured environment handle -
// happens in package eval/runtime when the reach is evaluated, not here.
type FunctionLiteralReach struct {
	// Param is "" when the function takes no argument (spec.md only
	// supports zero-or-one parameters).
	Param string
	Body  *BlockExpr
}

func (*FunctionLiteralReach) reachNode()        {}
func (r *FunctionLiteralReach) Literal() string { return "fn(" + r.Param + ")" }

// --- Expression variants --------------------------------------------------

// ReachExpr lifts a Reach to an Expression; every other Expression variant
// is built by expanding one of these (or another expression) with a
// trailing operator.
type ReachExpr struct {
	Reach Reach
}

func (*ReachExpr) expressionNode()    {}
func (e *ReachExpr) Literal() string  { return e.Reach.Literal() }

// BlockExpr is a brace-delimited statement sequence; its value is the
// value of its last statement (for let and assignment, the value bound),
// or None when the block is empty.
type BlockExpr struct {
	Statements []Statement
}

func (*BlockExpr) expressionNode()    {}
func (e *BlockExpr) Literal() string  { return "{block}" }

// IndexKind distinguishes the three index-RHS shapes §4.2 allows.
type IndexKind int

const (
	// IndexIdent: `.name` - a plain identifier field/virtual-field name.
	IndexIdent IndexKind = iota
	// IndexNumber: `.3` - an integer literal index.
	IndexNumber
	// IndexExprKind: `.[expr]` - a single-element bracket group holding a
	// sub-expression to evaluate for the index value.
	IndexExprKind
)

// IndexExpr is `target . index`.
type IndexExpr struct {
	Target Expression
	Kind   IndexKind
	Name   string     // set when Kind == IndexIdent
	Number int32      // set when Kind == IndexNumber
	Expr   Expression // set when Kind == IndexExprKind
}

func (*IndexExpr) expressionNode()   {}
func (e *IndexExpr) Literal() string { return e.Target.Literal() + "." }

// BinaryOp names the dyadic operators the expansion loop recognizes.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Cmp
	Gt
	Lt
	Or
	And
)

// BinaryExpr is `left op right`; per spec.md §9 the right operand is a
// full expression, so these associate to the right as written - an
// observed, intentional property of the grammar, not a bug.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (*BinaryExpr) expressionNode()  {}
func (e *BinaryExpr) Literal() string { return "(binary)" }

// ConditionalExpr is `if cond ifTrue [else ifFalse]`; ifFalse is a
// None-valued block expression when no else clause is present.
type ConditionalExpr struct {
	Cond    Expression
	IfTrue  *BlockExpr
	IfFalse Expression
}

func (*ConditionalExpr) expressionNode()  {}
func (e *ConditionalExpr) Literal() string { return "if" }

// CallExpr applies Callee to at most one Arg (nil means no argument).
type CallExpr struct {
	Callee Expression
	Arg    Expression
}

func (*CallExpr) expressionNode()  {}
func (e *CallExpr) Literal() string { return e.Callee.Literal() + "(...)" }

// --- Statement variants ----------------------------------------------------

// LetStatement declares Name in the current (innermost) scope frame.
type LetStatement struct {
	Name  string
	Value Expression
}

func (*LetStatement) statementNode()  {}
func (s *LetStatement) Literal() string { return "let " + s.Name }

// AssignStatement assigns to the nearest enclosing frame that already
// binds Name.
type AssignStatement struct {
	Name  string
	Value Expression
}

func (*AssignStatement) statementNode()  {}
func (s *AssignStatement) Literal() string { return s.Name + " =" }

// ExprStatement is a bare expression; its value is discarded unless it is
// the last statement of its enclosing block.
type ExprStatement struct {
	Expr Expression
}

func (*ExprStatement) statementNode()  {}
func (s *ExprStatement) Literal() string { return s.Expr.Literal() }

// LoopStatement repeats Block until a Break signal is caught.
type LoopStatement struct {
	Block *BlockExpr
}

func (*LoopStatement) statementNode()  {}
func (s *LoopStatement) Literal() string { return "loop" }

// BreakStatement raises the break signal.
type BreakStatement struct{}

func (*BreakStatement) statementNode()  {}
func (s *BreakStatement) Literal() string { return "break" }

// ForStatement iterates Iter (an array, or an object exposing a `next`
// closure), binding each produced value to Name for one run of Block.
type ForStatement struct {
	Name  string
	Iter  Expression
	Block *BlockExpr
}

func (*ForStatement) statementNode()  {}
func (s *ForStatement) Literal() string { return "for " + s.Name }

// PauseStatement is the `__pause` debug directive: wait for one line of
// host input.
type PauseStatement struct{}

func (*PauseStatement) statementNode()  {}
func (s *PauseStatement) Literal() string { return "__pause" }

// DumpContextStatement is the `__dump_ctx` debug directive: write a
// textual environment dump to the host output sink.
type DumpContextStatement struct{}

func (*DumpContextStatement) statementNode()  {}
func (s *DumpContextStatement) Literal() string { return "__dump_ctx" }

// ReturnStatement exists in the tree for embedder use only; no surface
// syntax emits it (spec.md §9).
type ReturnStatement struct {
	Value Expression
}

func (*ReturnStatement) statementNode()  {}
func (s *ReturnStatement) Literal() string { return "return" }
