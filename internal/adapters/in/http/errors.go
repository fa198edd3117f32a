package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use case error to its HTTP status. Missing objects are
// 404; broken business rules and malformed values are 400; a failed
// allocation unwind and everything unexpected are 500.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), ErrorResponse{
		Code:    statusOf(err),
		Message: err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrAllocationRollback):
		return http.StatusInternalServerError
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyTransitioned),
		errors.Is(err, order.ErrOrderNotActive),
		errors.Is(err, menu.ErrInsufficientStock),
		errors.Is(err, table.ErrAlreadyReserved),
		errors.Is(err, table.ErrInvalidCapacity),
		errors.Is(err, commands.ErrTableStillReserved),
		errors.Is(err, commands.ErrLastChefWithOrders),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
