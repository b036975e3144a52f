package router

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lfsilva/stackcalc/internal/calc"
	"github.com/lfsilva/stackcalc/internal/dto"
)

type EvalRouter struct {
	e *echo.Echo
}

func NewEvalRouter(e *echo.Echo) *EvalRouter {
	return &EvalRouter{e: e}
}

func (r *EvalRouter) Bind() {
	r.e.POST("/api/v1/eval", r.evalHandler)
}

// evalHandler evaluates one RPN expression.
//
//	@Summary		Evaluate an RPN expression
//	@Description	Evaluates a whitespace-separated Reverse Polish Notation expression over non-negative integers.
//	@Tags			eval
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EvalRequest	true	"expression to evaluate"
//	@Success		200		{object}	dto.EvalResponse
//	@Failure		400		{object}	dto.ErrorResponse	"lexical or syntax error"
//	@Failure		422		{object}	dto.ErrorResponse	"division by zero"
//	@Router			/api/v1/eval [post]
func (r *EvalRouter) evalHandler(c echo.Context) error {
	var req dto.EvalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	result, err := calc.Evaluate(req.Expression)
	if err != nil {
		// Mapped to a status code by the global error handler.
		return err
	}

	resp := dto.EvalResponse{
		ID:         uuid.New(),
		Expression: req.Expression,
		Result:     result,
	}
	slog.Info("expression evaluated", "id", resp.ID, "expression", resp.Expression, "result", resp.Result)

	return c.JSON(http.StatusOK, resp)
}
