package scanner

import "github.com/lfsilva/stackcalc/internal/types/operator"

type Kind int

const (
	Number Kind = iota
	Op
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "NUMBER"
	case Op:
		return "OPERATOR"
	case Invalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified lexical unit. Value is set for Number tokens,
// Op for Op tokens; Invalid tokens carry only the raw literal.
type Token struct {
	Kind    Kind
	Literal string
	Value   int64
	Op      operator.Operator
}
