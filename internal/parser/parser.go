package parser

import (
	"github.com/lfsilva/stackcalc/internal/apperr"
	"github.com/lfsilva/stackcalc/internal/scanner"
)

// Expression is a token sequence validated against the RPN arity rule.
// Evaluating an Expression can only fail at runtime (division by zero).
type Expression []scanner.Token

// Parse validates a token sequence against the RPN grammar:
//
//	Expr = Number | Expr Expr Op
//
// Invalid tokens are rejected first, so an input that is both lexically
// and syntactically broken reports the lexical error. The arity rule is
// checked by simulating a running operand depth: a number makes one more
// operand available, an operator consumes two and produces one. The
// depth must end at exactly 1.
func Parse(tokens []scanner.Token) (Expression, error) {
	for _, t := range tokens {
		if t.Kind == scanner.Invalid {
			return nil, apperr.Lexicalf("invalid token %q: want a non-negative integer or one of + - * /", t.Literal)
		}
	}

	depth := 0
	for _, t := range tokens {
		switch t.Kind {
		case scanner.Number:
			depth++
		case scanner.Op:
			if depth < 2 {
				return nil, apperr.Syntaxf("operator %q needs two operands, %d available", t.Op, depth)
			}
			depth--
		}
	}

	if len(tokens) == 0 {
		return nil, apperr.Syntaxf("empty expression")
	}
	if depth != 1 {
		return nil, apperr.Syntaxf("expression leaves %d operands, want exactly 1", depth)
	}

	return Expression(tokens), nil
}
