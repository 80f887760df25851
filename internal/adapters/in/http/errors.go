package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed request.
type Error struct {
	Code    int            `json:"code"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// unprocessable rule codes describe a request that can never succeed as sent;
// every other rule violation conflicts with the current state.
var unprocessable = map[string]bool{
	services.CodePaymentTooLow:            true,
	order.CodeConfirmationFailed:          true,
	order.CodeUnsupportedStatusTransition: true,
}

// StatusCode maps an application error onto an HTTP status.
func StatusCode(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRuleViolation):
		if code, _ := errs.RuleCode(err); unprocessable[code] {
			return http.StatusUnprocessableEntity
		}
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	status := StatusCode(err)
	body := Error{Code: status, Message: err.Error()}

	var violation *errs.RuleViolationError
	if errors.As(err, &violation) {
		body.Error = violation.Code
		body.Message = violation.Message
		body.Context = violation.Context
	}
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		body.Message = "Internal server error"
	}

	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
