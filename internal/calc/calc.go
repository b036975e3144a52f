package calc

import (
	"github.com/lfsilva/stackcalc/internal/eval"
	"github.com/lfsilva/stackcalc/internal/parser"
	"github.com/lfsilva/stackcalc/internal/scanner"
)

// Evaluate runs the full pipeline over one RPN expression:
// scan -> parse -> eval. It is a pure function of its input; calling it
// twice with the same source yields the same result.
func Evaluate(source string) (int64, error) {
	tokens := scanner.New(source).Tokenize()

	expr, err := parser.Parse(tokens)
	if err != nil {
		return 0, err
	}

	return eval.Eval(expr)
}
