package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies where in the evaluation pipeline an error was raised.
type Kind int

const (
	KindUnknown Kind = iota
	KindLexical
	KindSyntax
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical_error"
	case KindSyntax:
		return "syntax_error"
	case KindRuntime:
		return "runtime_error"
	default:
		return "unknown_error"
	}
}

// Error is a tagged evaluation error. Callers branch on Kind, never on
// the message text.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Lexicalf builds an error for input that is not a number or operator.
func Lexicalf(format string, args ...any) *Error {
	return &Error{Kind: KindLexical, Message: fmt.Sprintf(format, args...)}
}

// Syntaxf builds an error for a token sequence violating the RPN arity rule.
func Syntaxf(format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Message: fmt.Sprintf(format, args...)}
}

// Runtimef builds an error raised during evaluation of a valid expression.
func Runtimef(format string, args ...any) *Error {
	return &Error{Kind: KindRuntime, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
