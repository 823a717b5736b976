package http

import (
	"errors"
	"net/http"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/order"
	"cctexpress/internal/core/domain/services"
	"cctexpress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse writes err as a JSON error body with the status derived
// from the error kind.
func errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

// statusForError maps domain and application errors to HTTP statuses.
// Validation failures are client errors, missing objects are 404,
// policy refusals are 403, an uncovered bill is 402 and state conflicts
// (including optimistic concurrency collisions) are 409. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, customer.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, customer.ErrCustomerBlacklisted),
		errors.Is(err, commands.ErrVipDishNotAllowed),
		errors.Is(err, commands.ErrCourierNotActive),
		errors.Is(err, commands.ErrNotAssignedCourier):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrOrderNotBiddable),
		errors.Is(err, bid.ErrDuplicateBid),
		errors.Is(err, services.ErrNoBids),
		errors.Is(err, queries.ErrOrderHasNoCourier),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrFinalAmountIsRequired),
		errors.Is(err, customer.ErrInvalidAmount),
		errors.Is(err, bid.ErrInvalidAmount),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
