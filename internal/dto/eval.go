package dto

import "github.com/google/uuid"

// EvalRequest carries one RPN expression to evaluate.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse is the outcome of a successful evaluation. Every
// evaluation gets its own ID; the service keeps no state between calls.
type EvalResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     int64     `json:"result"`
}

// ErrorResponse reports a failed evaluation with its error class.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
