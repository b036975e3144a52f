package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfsilva/stackcalc/internal/apperr"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: sample
cases:
  - name: addition
    expression: "3 4 +"
    want: 7
  - name: division by zero
    expression: "5 0 /"
    error: runtime
  - name: empty expression
    expression: ""
    error: syntax
`)

	s, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	require.Len(t, s.Cases, 3)

	assert.False(t, s.Cases[0].WantsError())
	require.NotNil(t, s.Cases[0].Want)
	assert.Equal(t, int64(7), *s.Cases[0].Want)

	assert.True(t, s.Cases[1].WantsError())
	kind, err := s.Cases[1].ExpectedKind()
	require.NoError(t, err)
	assert.Equal(t, apperr.KindRuntime, kind)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "cases: ["},
		{name: "no cases", data: "name: empty"},
		{name: "unnamed case", data: "cases:\n  - expression: \"1\"\n    want: 1"},
		{name: "no expectation", data: "cases:\n  - name: broken\n    expression: \"1\""},
		{name: "both expectations", data: "cases:\n  - name: broken\n    expression: \"1\"\n    want: 1\n    error: syntax"},
		{name: "unknown error class", data: "cases:\n  - name: broken\n    expression: \"1\"\n    error: semantic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
