package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfsilva/stackcalc/internal/apperr"
	"github.com/lfsilva/stackcalc/internal/scanner"
)

func tokenize(t *testing.T, input string) []scanner.Token {
	t.Helper()
	return scanner.New(input).Tokenize()
}

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "single number", input: "42"},
		{name: "simple addition", input: "3 4 +"},
		{name: "chained operators", input: "3 4 + 2 *"},
		{name: "deeply nested", input: "5 1 2 + 4 * + 3 -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize(t, tt.input)
			expr, err := Parse(tokens)
			require.NoError(t, err)
			assert.Equal(t, Expression(tokens), expr)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  apperr.Kind
	}{
		{name: "operator without operands", input: "3 +", kind: apperr.KindSyntax},
		{name: "operator first", input: "+ 3 4", kind: apperr.KindSyntax},
		{name: "leftover operands", input: "3 4 5", kind: apperr.KindSyntax},
		{name: "empty input", input: "", kind: apperr.KindSyntax},
		{name: "invalid word", input: "3 x +", kind: apperr.KindLexical},
		{name: "lexical wins over syntax", input: "x +", kind: apperr.KindLexical},
		{name: "lexical wins at any position", input: "3 + x", kind: apperr.KindLexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tokenize(t, tt.input))
			require.Error(t, err)
			assert.Nil(t, expr)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
}
