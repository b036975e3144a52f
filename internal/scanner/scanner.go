package scanner

import (
	"strconv"

	"github.com/lfsilva/stackcalc/internal/types/operator"
)

// Scanner is responsible for breaking an RPN input string into tokens.
// It never fails: text that is neither a number nor an operator becomes
// an Invalid token for the parser to report.
type Scanner struct {
	input string
	pos   int
}

// New creates a new Scanner for the given input string.
func New(input string) *Scanner {
	return &Scanner{input: input, pos: 0}
}

// Tokenize splits the input on whitespace and classifies every field.
func (s *Scanner) Tokenize() []Token {
	tokens := make([]Token, 0)

	for s.pos < len(s.input) {
		s.skipWhitespace()
		lit := s.readField()
		if lit == "" {
			continue
		}
		tokens = append(tokens, classify(lit))
	}

	return tokens
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) readField() string {
	start := s.pos
	for s.pos < len(s.input) && !isSpace(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func classify(lit string) Token {
	if op, err := operator.Parse(lit); err == nil {
		return Token{Kind: Op, Literal: lit, Op: op}
	}
	if v, ok := parseNumber(lit); ok {
		return Token{Kind: Number, Literal: lit, Value: v}
	}
	return Token{Kind: Invalid, Literal: lit}
}

// parseNumber accepts non-negative base-10 integers with no leading
// zeros: 0 or [1-9][0-9]*. Signed and fractional literals are invalid.
func parseNumber(lit string) (int64, bool) {
	if lit == "" {
		return 0, false
	}
	if len(lit) > 1 && lit[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(lit); i++ {
		if !isDigit(lit[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
