package suite

import (
	"fmt"

	"github.com/lfsilva/stackcalc/internal/apperr"
)

// Suite is a YAML-described set of RPN expressions with expected outcomes.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case holds one expression and exactly one expectation: a numeric result
// or an error class ("lexical", "syntax" or "runtime").
type Case struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Want       *int64 `yaml:"want,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

var errorKinds = map[string]apperr.Kind{
	"lexical": apperr.KindLexical,
	"syntax":  apperr.KindSyntax,
	"runtime": apperr.KindRuntime,
}

// WantsError reports whether the case expects the pipeline to fail.
func (c *Case) WantsError() bool {
	return c.Error != ""
}

// ExpectedKind maps the case's error field to an error kind.
func (c *Case) ExpectedKind() (apperr.Kind, error) {
	kind, ok := errorKinds[c.Error]
	if !ok {
		return apperr.KindUnknown, fmt.Errorf("case %q: unknown error class %q", c.Name, c.Error)
	}
	return kind, nil
}
