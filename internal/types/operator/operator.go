package operator

import (
	"errors"
	"fmt"
)

// Operator represents one of the four binary arithmetic operators.
// Value object with validation and behavior.
//
// Usage:
//
//	op, err := operator.Parse("+")
//	result, err := op.Apply(3, 4)
type Operator string

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
)

// ErrDivisionByZero is returned by Apply when the right operand of a
// division is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

func Parse(s string) (Operator, error) {
	op := Operator(s)
	switch op {
	case Add, Sub, Mul, Div:
		return op, nil
	default:
		return "", fmt.Errorf("invalid operator: %q (must be one of + - * /)", s)
	}
}

// String returns the string representation of the operator
func (o Operator) String() string {
	return string(o)
}

// Apply computes left OP right. Integer division truncates toward zero,
// so 10 / 3 is 3.
func (o Operator) Apply(left, right int64) (int64, error) {
	switch o {
	case Add:
		return left + right, nil
	case Sub:
		return left - right, nil
	case Mul:
		return left * right, nil
	case Div:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("invalid operator: %q", string(o))
	}
}

// Validate ensures the operator has a valid value
func (o Operator) Validate() error {
	if o != Add && o != Sub && o != Mul && o != Div {
		return fmt.Errorf("invalid operator: %q", string(o))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
