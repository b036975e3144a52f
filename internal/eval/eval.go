package eval

import (
	"errors"

	"github.com/lfsilva/stackcalc/internal/apperr"
	"github.com/lfsilva/stackcalc/internal/parser"
	"github.com/lfsilva/stackcalc/internal/scanner"
	"github.com/lfsilva/stackcalc/internal/types/operator"
)

type stack []int64

func (s *stack) push(v int64) {
	*s = append(*s, v)
}

func (s *stack) pop() (int64, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, true
}

// Eval reduces a validated expression left to right on an operand stack:
// numbers are pushed, an operator pops the right operand first, then the
// left, and pushes left OP right. Division by zero aborts immediately
// with a runtime error and no partial result.
//
// The underflow and final-size guards cannot trigger for parser-validated
// input; they are kept so a hand-built Expression fails loudly instead of
// producing garbage.
func Eval(expr parser.Expression) (int64, error) {
	st := make(stack, 0, len(expr))

	for _, t := range expr {
		switch t.Kind {
		case scanner.Number:
			st.push(t.Value)
		case scanner.Op:
			right, ok := st.pop()
			if !ok {
				return 0, apperr.Syntaxf("operator %q on an empty stack", t.Op)
			}
			left, ok := st.pop()
			if !ok {
				return 0, apperr.Syntaxf("operator %q with a single operand", t.Op)
			}
			result, err := t.Op.Apply(left, right)
			if err != nil {
				if errors.Is(err, operator.ErrDivisionByZero) {
					return 0, apperr.Runtimef("division by zero")
				}
				return 0, err
			}
			st.push(result)
		default:
			return 0, apperr.Syntaxf("unexpected token %q", t.Literal)
		}
	}

	if len(st) != 1 {
		return 0, apperr.Syntaxf("evaluation ended with %d values on the stack, want exactly 1", len(st))
	}
	return st[0], nil
}
