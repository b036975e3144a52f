package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lfsilva/stackcalc/internal/apperr"
	"github.com/lfsilva/stackcalc/internal/dto"
)

// errorHandler maps evaluation errors to HTTP statuses: lexical and
// syntax errors are the client's input (400), division by zero is a
// well-formed request that cannot be computed (422).
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ae *apperr.Error
		if errors.As(err, &ae) {
			status := http.StatusBadRequest
			if ae.Kind == apperr.KindRuntime {
				status = http.StatusUnprocessableEntity
			}
			_ = c.JSON(status, dto.ErrorResponse{Error: ae.Message, Kind: ae.Kind.String()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, dto.ErrorResponse{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
