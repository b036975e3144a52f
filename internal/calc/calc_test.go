package calc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfsilva/stackcalc/internal/apperr"
	"github.com/lfsilva/stackcalc/internal/suite"
)

func TestEvaluate(t *testing.T) {
	result, err := Evaluate("3 4 + 2 *")
	require.NoError(t, err)
	assert.Equal(t, int64(14), result)
}

// RPN evaluation must agree with the parenthesized infix reading of the
// same expression.
func TestEvaluateMatchesInfix(t *testing.T) {
	tests := []struct {
		name  string
		rpn   string
		infix int64
	}{
		{name: "3 4 +", rpn: "3 4 +", infix: 3 + 4},
		{name: "(3 + 4) * 2", rpn: "3 4 + 2 *", infix: (3 + 4) * 2},
		{name: "3 + (4 * 2)", rpn: "3 4 2 * +", infix: 3 + (4 * 2)},
		{name: "(10 - 4) / (1 + 2)", rpn: "10 4 - 1 2 + /", infix: (10 - 4) / (1 + 2)},
		{name: "5 + ((1 + 2) * 4) - 3", rpn: "5 1 2 + 4 * + 3 -", infix: 5 + ((1+2)*4) - 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.rpn)
			require.NoError(t, err)
			assert.Equal(t, tt.infix, got)
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	const input = "10 3 /"
	first, err := Evaluate(input)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Evaluate(input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluateConformanceSuite(t *testing.T) {
	s, err := suite.LoadFromFile(filepath.Join("testdata", "expressions.yaml"))
	require.NoError(t, err)

	for _, c := range s.Cases {
		t.Run(c.Name, func(t *testing.T) {
			result, err := Evaluate(c.Expression)

			if c.WantsError() {
				require.Error(t, err)
				wantKind, kerr := c.ExpectedKind()
				require.NoError(t, kerr)
				assert.Equal(t, wantKind, apperr.KindOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c.Want)
			assert.Equal(t, *c.Want, result)
		})
	}
}
