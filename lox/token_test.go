package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token Token
		want  string
	}{
		{Token{Type: Var, Lexeme: "var", Line: 1}, "VAR var"},
		{Token{Type: LeftParen, Lexeme: "(", Line: 1}, "( ("},
		{Token{Type: Number, Lexeme: "12.5", Literal: 12.5, Line: 1}, "NUMBER 12.5 12.5"},
		{Token{Type: String, Lexeme: `"hi"`, Literal: "hi", Line: 1}, `STRING "hi" hi`},
		{Token{Type: EOF, Line: 3}, "EOF "},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.token.String())
	}
}

func TestLookupKeywordDefaultsToIdentifier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, While, lookupKeyword("while"))
	assert.Equal(t, Identifier, lookupKeyword("whileish"))
	assert.Equal(t, Identifier, lookupKeyword("While"))
	assert.Equal(t, Identifier, lookupKeyword(""))
}
