package queries

import (
	"errors"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrGetBiddableOrdersQueryIsNotConstructed = errors.New(
		"GetBiddableOrdersQuery must be created via NewGetBiddableOrdersQuery constructor",
	)
)

// GetBiddableOrdersQuery retrieves orders that are open for courier
// bidding. Couriers poll this list to find work to bid on.
type GetBiddableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBiddableOrdersQuery creates a query to retrieve biddable orders.
func NewGetBiddableOrdersQuery() GetBiddableOrdersQuery {
	return GetBiddableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBiddableOrdersQueryIsNotConstructed if validation fails.
func (q GetBiddableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBiddableOrdersQueryIsNotConstructed)
}

// GetBiddableOrdersQueryResponse represents one order open for bidding.
// The delivery address lets a courier judge the trip before offering a fee.
type GetBiddableOrdersQueryResponse struct {
	ID              kernel.UUID
	DeliveryAddress kernel.GeoPoint
	FinalAmount     kernel.Money
	CreatedAt       time.Time
}
