/*
File    : reach/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/reach/lexer"
)

// Sentinel EOF errors: each entry point (read_statement, read_expression,
// read_reach) has its own EOF flavor so a caller iterating a derived
// sequence (statements-until-EOF, expression-list) can distinguish "ran
// out of input cleanly" from a genuine parse failure, per spec.md §4.2.
var (
	ErrEOFStatement = errors.New("parser: unexpected end of statement")
	ErrEOFExpr      = errors.New("parser: unexpected end of expression")
	ErrEOFReach     = errors.New("parser: unexpected end of reach")
)

// ExpectedTokenError reports a required token that was missing or of the
// wrong kind - e.g. `=` after `let`, `(` after `fn`, `in` after the
// for-loop variable.
type ExpectedTokenError struct {
	Want string
	Got  *lexer.Token // nil when the stream was exhausted instead
}

func (e *ExpectedTokenError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("parser: expected %s, found end of input", e.Want)
	}
	return fmt.Sprintf("parser: expected %s, found %q", e.Want, e.Got.Kind)
}

// MalformedNumberError reports a number-word token that failed to parse
// as both i32 and f32.
type MalformedNumberError struct {
	Literal  string
	IntErr   error
	FloatErr error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("parser: malformed number %q (int: %v, float: %v)", e.Literal, e.IntErr, e.FloatErr)
}

// InvalidReachError reports a token that cannot begin a reach.
type InvalidReachError struct {
	Got lexer.Token
}

func (e *InvalidReachError) Error() string {
	return fmt.Sprintf("parser: invalid token to start a reach: %q", e.Got.Kind)
}

// InvalidIndexRHSError reports an index right-hand side that is not an
// identifier, a number literal, or a single-element bracket group.
type InvalidIndexRHSError struct {
	Got lexer.Token
}

func (e *InvalidIndexRHSError) Error() string {
	return fmt.Sprintf("parser: invalid index right-hand side: %q", e.Got.Kind)
}

// TooManyParamsError reports a `fn(...)` parameter group that holds
// anything other than zero or one identifier: a second token, or a first
// token that is not an identifier. spec.md supports at most one.
type TooManyParamsError struct{}

func (e *TooManyParamsError) Error() string {
	return "parser: function literals take at most one parameter"
}
