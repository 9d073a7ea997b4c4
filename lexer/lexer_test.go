/*
File    : reach/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenizeCase struct {
	Input    string
	Expected []Token
}

func TestTokenizer_All(t *testing.T) {
	cases := []tokenizeCase{
		{
			Input: ` 123 + 2   31 - 12 `,
			Expected: []Token{
				{Kind: Number, Literal: "123"},
				{Kind: Plus, Literal: "+"},
				{Kind: Number, Literal: "2"},
				{Kind: Number, Literal: "31"},
				{Kind: Minus, Literal: "-"},
				{Kind: Number, Literal: "12"},
			},
		},
		{
			Input: `let x = 3.14`,
			Expected: []Token{
				{Kind: Let, Literal: "let"},
				{Kind: Ident, Literal: "x"},
				{Kind: Eq, Literal: "="},
				{Kind: Number, Literal: "3.14"},
			},
		},
		{
			Input: `"hello there" abc_123 "12"`,
			Expected: []Token{
				{Kind: Str, Literal: "hello there"},
				{Kind: Ident, Literal: "abc_123"},
				{Kind: Str, Literal: "12"},
			},
		},
		{
			Input: `fn if else loop break for in`,
			Expected: []Token{
				{Kind: Fn, Literal: "fn"},
				{Kind: If, Literal: "if"},
				{Kind: Else, Literal: "else"},
				{Kind: Loop, Literal: "loop"},
				{Kind: Break, Literal: "break"},
				{Kind: For, Literal: "for"},
				{Kind: In, Literal: "in"},
			},
		},
		{
			Input: `a || b && c`,
			Expected: []Token{
				{Kind: Ident, Literal: "a"},
				{Kind: Or, Literal: "||"},
				{Kind: Ident, Literal: "b"},
				{Kind: And, Literal: "&&"},
				{Kind: Ident, Literal: "c"},
			},
		},
		{
			// no surrounding whitespace: '|' and '&' are not signal
			// characters, so the whole run is scanned as one word.
			Input: `a||b`,
			Expected: []Token{
				{Kind: Ident, Literal: "a||b"},
			},
		},
		{
			Input: `a==b`,
			Expected: []Token{
				{Kind: Ident, Literal: "a"},
				{Kind: Eq, Literal: "="},
				{Kind: Eq, Literal: "="},
				{Kind: Ident, Literal: "b"},
			},
		},
		{
			Input: `a.b:c`,
			Expected: []Token{
				{Kind: Ident, Literal: "a"},
				{Kind: Dot, Literal: "."},
				{Kind: Ident, Literal: "b"},
				{Kind: Colon, Literal: ":"},
				{Kind: Ident, Literal: "c"},
			},
		},
	}

	for _, c := range cases {
		tokens, err := New(c.Input).All()
		assert.NoError(t, err, c.Input)
		assert.Equal(t, c.Expected, tokens, c.Input)
	}
}

func TestTokenizer_Grouping(t *testing.T) {
	tokens, err := New(`(1 + 2)`).All()
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: Parens, Group: []Token{
			{Kind: Number, Literal: "1"},
			{Kind: Plus, Literal: "+"},
			{Kind: Number, Literal: "2"},
		}},
	}, tokens)

	tokens, err = New(`{ let x = [1 2 (3)] }`).All()
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: Curly, Group: []Token{
			{Kind: Let, Literal: "let"},
			{Kind: Ident, Literal: "x"},
			{Kind: Eq, Literal: "="},
			{Kind: Bracket, Group: []Token{
				{Kind: Number, Literal: "1"},
				{Kind: Number, Literal: "2"},
				{Kind: Parens, Group: []Token{
					{Kind: Number, Literal: "3"},
				}},
			}},
		}},
	}, tokens)
}

func TestTokenizer_Errors(t *testing.T) {
	_, err := New(`"unterminated`).All()
	assert.ErrorIs(t, err, ErrUnterminatedString)

	_, err = New(`(1 + 2`).All()
	assert.Error(t, err)
	var unmatched *ErrUnmatchedBracket
	assert.ErrorAs(t, err, &unmatched)
	assert.Equal(t, byte('('), unmatched.Opener)
}

func TestTokenizer_EmptySource(t *testing.T) {
	tokens, err := New(``).All()
	assert.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = New(`   `).All()
	assert.NoError(t, err)
	assert.Empty(t, tokens)
}
