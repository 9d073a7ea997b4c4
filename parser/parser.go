/*
File    : reach/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/reach/lexer"
	"github.com/akashmaji946/reach/objects"
)

// Parser walks a flat []lexer.Token with one-token lookahead, recursing
// into a fresh Parser whenever it steps into a grouped token's nested
// sequence (parens, curly braces, brackets).
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New returns a Parser over tokens, ready to read its first statement,
// expression, or reach.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream as a Program: a statement
// sequence read until EOF.
func Parse(tokens []lexer.Token) (*Program, error) {
	p := New(tokens)
	stmts, err := p.ReadStatements()
	if err != nil {
		return nil, err
	}
	return &Program{Statements: stmts}, nil
}

func (p *Parser) atEOF() bool { return p.pos >= len(p.tokens) }

// peek returns the next token without consuming it.
func (p *Parser) peek() (lexer.Token, bool) {
	if p.atEOF() {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

// peekAt looks ahead offset tokens (0 == peek).
func (p *Parser) peekAt(offset int) (lexer.Token, bool) {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[i], true
}

// advance consumes and returns the next token.
func (p *Parser) advance() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// expect consumes the next token only if it has the given kind.
func (p *Parser) expect(kind lexer.Kind, want string) (lexer.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return lexer.Token{}, &ExpectedTokenError{Want: want}
	}
	if tok.Kind != kind {
		t := tok
		return lexer.Token{}, &ExpectedTokenError{Want: want, Got: &t}
	}
	p.pos++
	return tok, nil
}

// ReadStatements reads a sequence of statements until the token stream is
// exhausted - the "statements-until-EOF" derived sequence spec.md §4.2
// names, used for both the whole program and block bodies. It runs the
// debug-statement preprocessor (§4.2.4) over the result before returning.
func (p *Parser) ReadStatements() ([]Statement, error) {
	var stmts []Statement
	for {
		stmt, err := p.ReadStatement()
		if err == ErrEOFStatement {
			break
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return preprocess(stmts), nil
}

// ReadExpressionList reads the "comma-free expression list" derived
// sequence used for array literals and `.[expr]` index groups: expressions
// packed back-to-back with no separator, read until EOF.
func (p *Parser) ReadExpressionList() ([]Expression, error) {
	var exprs []Expression
	for {
		start := p.pos
		expr, err := p.ReadExpression()
		if err == ErrEOFExpr && p.pos == start {
			break
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// preprocess rewrites bare `"__pause"` / `"__dump_ctx"` string-literal
// expression statements into their debug-action statements. Every other
// statement passes through unchanged.
func preprocess(stmts []Statement) []Statement {
	out := make([]Statement, len(stmts))
	for i, s := range stmts {
		out[i] = s
		exprStmt, ok := s.(*ExprStatement)
		if !ok {
			continue
		}
		reachExpr, ok := exprStmt.Expr.(*ReachExpr)
		if !ok {
			continue
		}
		valueReach, ok := reachExpr.Reach.(*ValueReach)
		if !ok {
			continue
		}
		str, ok := valueReach.Value.(*objects.String)
		if !ok {
			continue
		}
		switch str.Value {
		case "__pause":
			out[i] = &PauseStatement{}
		case "__dump_ctx":
			out[i] = &DumpContextStatement{}
		}
	}
	return out
}

// ReadStatement reads one statement, or ErrEOFStatement if the stream is
// exhausted at a statement boundary.
func (p *Parser) ReadStatement() (Statement, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrEOFStatement
	}

	switch tok.Kind {
	case lexer.Let:
		p.advance()
		name, err := p.expect(lexer.Ident, "identifier after let")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Eq, "'=' after let-bound name"); err != nil {
			return nil, err
		}
		value, err := p.ReadExpression()
		if err != nil {
			return nil, err
		}
		return &LetStatement{Name: name.Literal, Value: value}, nil

	case lexer.Loop:
		p.advance()
		block, err := p.readBlock()
		if err != nil {
			return nil, err
		}
		return &LoopStatement{Block: block}, nil

	case lexer.Break:
		p.advance()
		return &BreakStatement{}, nil

	case lexer.For:
		p.advance()
		name, err := p.expect(lexer.Ident, "identifier after for")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.In, "'in' after for-loop variable"); err != nil {
			return nil, err
		}
		iter, err := p.ReadExpression()
		if err != nil {
			return nil, err
		}
		block, err := p.readBlock()
		if err != nil {
			return nil, err
		}
		return &ForStatement{Name: name.Literal, Iter: iter, Block: block}, nil
	}

	expr, err := p.ReadExpression()
	if err != nil {
		return nil, err
	}

	if reachExpr, ok := expr.(*ReachExpr); ok {
		if named, ok := reachExpr.Reach.(*NamedReach); ok {
			if next, ok := p.peek(); ok && next.Kind == lexer.Eq {
				p.advance()
				rhs, err := p.ReadExpression()
				if err != nil {
					return nil, err
				}
				return &AssignStatement{Name: named.Name, Value: rhs}, nil
			}
		}
	}

	return &ExprStatement{Expr: expr}, nil
}

// ReadExpression reads one expression: either the `if` form, or a reach
// expanded by zero or more trailing operators (§4.2's expansion loop).
func (p *Parser) ReadExpression() (Expression, error) {
	if p.atEOF() {
		return nil, ErrEOFExpr
	}
	if tok, ok := p.peek(); ok && tok.Kind == lexer.If {
		return p.readConditional()
	}

	reach, err := p.ReadReach()
	if err != nil {
		return nil, err
	}
	return p.expand(&ReachExpr{Reach: reach})
}

func (p *Parser) readConditional() (Expression, error) {
	p.advance() // consume `if`
	cond, err := p.ReadExpression()
	if err != nil {
		return nil, err
	}
	ifTrue, err := p.readBlock()
	if err != nil {
		return nil, err
	}
	var ifFalse Expression = &BlockExpr{}
	if tok, ok := p.peek(); ok && tok.Kind == lexer.Else {
		p.advance()
		ifFalseBlock, err := p.readBlock()
		if err != nil {
			return nil, err
		}
		ifFalse = ifFalseBlock
	}
	return &ConditionalExpr{Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse}, nil
}

// expand repeatedly looks at the next token and, if it names an operator,
// consumes it and builds a larger expression with expr as its left
// operand - exactly the left-associative postfix/binary loop of §4.2.
// When no operator matches, expansion stops and expr is returned as-is;
// that "cannot expand further" condition is not itself an error.
func (p *Parser) expand(expr Expression) (Expression, error) {
	for {
		tok, ok := p.peek()
		if !ok {
			return expr, nil
		}

		switch tok.Kind {
		case lexer.Plus:
			p.advance()
			right, err := p.ReadExpression()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: Add, Left: expr, Right: right}

		case lexer.Minus:
			p.advance()
			right, err := p.ReadExpression()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: Sub, Left: expr, Right: right}

		case lexer.Gt:
			p.advance()
			right, err := p.ReadExpression()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: Gt, Left: expr, Right: right}

		case lexer.Lt:
			p.advance()
			right, err := p.ReadExpression()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: Lt, Left: expr, Right: right}

		case lexer.Or:
			p.advance()
			right, err := p.ReadExpression()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: Or, Left: expr, Right: right}

		case lexer.And:
			p.advance()
			right, err := p.ReadExpression()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: And, Left: expr, Right: right}

		case lexer.Eq:
			// "==" is never its own token: it is two consecutive Eq
			// tokens, disambiguated here with a one-token clone-ahead
			// peek rather than at the tokenizer.
			if next, ok := p.peekAt(1); ok && next.Kind == lexer.Eq {
				p.advance()
				p.advance()
				right, err := p.ReadExpression()
				if err != nil {
					return nil, err
				}
				expr = &BinaryExpr{Op: Cmp, Left: expr, Right: right}
				continue
			}
			return expr, nil

		case lexer.Dot:
			p.advance()
			idx, err := p.readIndexRHS()
			if err != nil {
				return nil, err
			}
			idx.Target = expr
			expr = idx

		case lexer.Parens:
			p.advance()
			arg, err := p.readOptionalCallArg(tok)
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{Callee: expr, Arg: arg}

		default:
			return expr, nil
		}
	}
}

// readIndexRHS parses the right-hand side of `.`: an identifier name, an
// integer literal, or a single-element bracket group holding a
// sub-expression (spec.md §9's documented open question: the zero- and
// many-element cases are left unspecified, so only the one-element shape
// is accepted here).
func (p *Parser) readIndexRHS() (*IndexExpr, error) {
	tok, ok := p.advance()
	if !ok {
		return nil, &InvalidIndexRHSError{}
	}
	switch tok.Kind {
	case lexer.Ident:
		return &IndexExpr{Kind: IndexIdent, Name: tok.Literal}, nil
	case lexer.Number:
		n, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return nil, &InvalidIndexRHSError{Got: tok}
		}
		return &IndexExpr{Kind: IndexNumber, Number: int32(n)}, nil
	case lexer.Bracket:
		inner := New(tok.Group)
		elems, err := inner.ReadExpressionList()
		if err != nil {
			return nil, err
		}
		if len(elems) != 1 {
			return nil, &InvalidIndexRHSError{Got: tok}
		}
		return &IndexExpr{Kind: IndexExprKind, Expr: elems[0]}, nil
	default:
		return nil, &InvalidIndexRHSError{Got: tok}
	}
}

// readOptionalCallArg parses the inside of a call's parenthesized group:
// empty means no argument, otherwise exactly one reach is read from it.
func (p *Parser) readOptionalCallArg(parensTok lexer.Token) (Expression, error) {
	if len(parensTok.Group) == 0 {
		return nil, nil
	}
	inner := New(parensTok.Group)
	reach, err := inner.ReadReach()
	if err != nil {
		return nil, err
	}
	return &ReachExpr{Reach: reach}, nil
}

// ReadReach reads one reach, or ErrEOFReach if the stream is exhausted at
// a reach boundary.
func (p *Parser) ReadReach() (Reach, error) {
	tok, ok := p.advance()
	if !ok {
		return nil, ErrEOFReach
	}

	switch tok.Kind {
	case lexer.Ident:
		if tok.Literal == "obj" {
			if next, ok := p.peek(); ok && next.Kind == lexer.Curly {
				p.advance()
				return p.readObjectLiteral(next)
			}
		}
		return &NamedReach{Name: tok.Literal}, nil

	case lexer.Str:
		return &ValueReach{Value: &objects.String{Value: tok.Literal}}, nil

	case lexer.Number:
		return parseNumberReach(tok.Literal)

	case lexer.Bracket:
		inner := New(tok.Group)
		elems, err := inner.ReadExpressionList()
		if err != nil {
			return nil, err
		}
		return &ArrayLiteralReach{Elements: elems}, nil

	case lexer.Fn:
		paramsTok, err := p.expect(lexer.Parens, "'(' after fn")
		if err != nil {
			return nil, err
		}
		param := ""
		if len(paramsTok.Group) > 0 {
			if paramsTok.Group[0].Kind != lexer.Ident {
				return nil, &TooManyParamsError{}
			}
			param = paramsTok.Group[0].Literal
			if len(paramsTok.Group) > 1 {
				return nil, &TooManyParamsError{}
			}
		}
		body, err := p.readBlock()
		if err != nil {
			return nil, err
		}
		return &FunctionLiteralReach{Param: param, Body: body}, nil

	case lexer.Parens:
		inner := New(tok.Group)
		expr, err := inner.ReadExpression()
		if err != nil {
			return nil, err
		}
		return &ExprReach{Expr: expr}, nil

	default:
		return nil, &InvalidReachError{Got: tok}
	}
}

// parseNumberReach parses a number-word token: i32 first, f32 on failure,
// error if both fail (spec.md §4.2).
func parseNumberReach(literal string) (Reach, error) {
	if n, err := strconv.ParseInt(literal, 10, 32); err == nil {
		return &ValueReach{Value: &objects.Int{Value: int32(n)}}, nil
	} else if f, ferr := strconv.ParseFloat(literal, 32); ferr == nil {
		return &ValueReach{Value: &objects.Float{Value: float32(f)}}, nil
	} else {
		_, intErr := strconv.ParseInt(literal, 10, 32)
		return nil, &MalformedNumberError{Literal: literal, IntErr: intErr, FloatErr: ferr}
	}
}

// readBlock requires a curly group and parses its interior as a
// statement sequence.
func (p *Parser) readBlock() (*BlockExpr, error) {
	tok, err := p.expect(lexer.Curly, "'{' to open a block")
	if err != nil {
		return nil, err
	}
	inner := New(tok.Group)
	stmts, err := inner.ReadStatements()
	if err != nil {
		return nil, err
	}
	return &BlockExpr{Statements: stmts}, nil
}

// readObjectLiteral parses the body of an `obj { ... }` literal: repeated
// (key, ":", value) triples with adjacency as the only separator (§4.2.3).
func (p *Parser) readObjectLiteral(curlyTok lexer.Token) (Reach, error) {
	inner := New(curlyTok.Group)
	var keys []string
	var values []Expression
	for {
		keyTok, ok := inner.advance()
		if !ok {
			break
		}
		var key string
		switch keyTok.Kind {
		case lexer.Ident, lexer.Str:
			key = keyTok.Literal
		case lexer.Number:
			key = keyTok.Literal
		default:
			return nil, &InvalidReachError{Got: keyTok}
		}
		if _, err := inner.expect(lexer.Colon, "':' after object-literal key"); err != nil {
			return nil, err
		}
		value, err := inner.ReadExpression()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
	}
	return &ObjectLiteralReach{Keys: keys, Values: values}, nil
}
