package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/order"
	"cctexpress/internal/core/domain/services"
	"cctexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "unknown object is 404",
			err:    errs.NewObjectNotFoundError("order", "42"),
			status: http.StatusNotFound,
		},
		{
			name:   "insufficient funds is 402",
			err:    customer.ErrInsufficientFunds,
			status: http.StatusPaymentRequired,
		},
		{
			name:   "blacklisted customer is 403",
			err:    customer.ErrCustomerBlacklisted,
			status: http.StatusForbidden,
		},
		{
			name:   "vip dish for regular customer is 403",
			err:    commands.ErrVipDishNotAllowed,
			status: http.StatusForbidden,
		},
		{
			name:   "inactive courier is 403",
			err:    commands.ErrCourierNotActive,
			status: http.StatusForbidden,
		},
		{
			name:   "foreign courier completion is 403",
			err:    commands.ErrNotAssignedCourier,
			status: http.StatusForbidden,
		},
		{
			name:   "invalid transition is 409",
			err:    order.ErrInvalidTransition,
			status: http.StatusConflict,
		},
		{
			name:   "order not biddable is 409",
			err:    commands.ErrOrderNotBiddable,
			status: http.StatusConflict,
		},
		{
			name:   "duplicate bid is 409",
			err:    bid.ErrDuplicateBid,
			status: http.StatusConflict,
		},
		{
			name:   "no bids is 409",
			err:    services.ErrNoBids,
			status: http.StatusConflict,
		},
		{
			name:   "order without courier is 409",
			err:    queries.ErrOrderHasNoCourier,
			status: http.StatusConflict,
		},
		{
			name:   "version conflict is 409",
			err:    errs.NewVersionIsInvalidErrorWithCause("order"),
			status: http.StatusConflict,
		},
		{
			name:   "empty order is 400",
			err:    order.ErrEmptyOrder,
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid amount is 400",
			err:    customer.ErrInvalidAmount,
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid bid amount is 400",
			err:    bid.ErrInvalidAmount,
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid value is 400",
			err:    errs.NewValueIsInvalidError("amount"),
			status: http.StatusBadRequest,
		},
		{
			name:   "required value is 400",
			err:    errs.NewValueIsRequiredError("name"),
			status: http.StatusBadRequest,
		},
		{
			name:   "out of range value is 400",
			err:    errs.NewValueIsOutOfRangeError("latitude", 120.0, -90.0, 90.0),
			status: http.StatusBadRequest,
		},
		{
			name:   "unclassified error is 500",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.status, statusForError(test.err))
		})
	}
}

func TestStatusForError_WrappedErrors(t *testing.T) {
	t.Run("wrapped sentinel keeps its status", func(t *testing.T) {
		err := fmt.Errorf("placing order: %w", customer.ErrInsufficientFunds)

		assert.Equal(t, http.StatusPaymentRequired, statusForError(err))
	})

	t.Run("typed error wrapped in context keeps its status", func(t *testing.T) {
		err := fmt.Errorf("loading order: %w", errs.NewObjectNotFoundError("order", "7"))

		assert.Equal(t, http.StatusNotFound, statusForError(err))
	})
}
