package queries

import (
	"errors"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrGetOrderBidsQueryIsNotConstructed = errors.New(
		"GetOrderBidsQuery must be created via NewGetOrderBidsQuery constructor",
	)
)

// GetOrderBidsQuery retrieves all bids submitted for one order, cheapest
// first. Operators use this list to pick a winner for manual resolution.
//
// Example:
//
//	query, err := NewGetOrderBidsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	bids, err := NewGetOrderBidsQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve bids: %w", err)
//	}
//
//	for _, bid := range bids {
//	    fmt.Printf("%s offers %s\n", bid.CourierName, bid.Amount)
//	}
type GetOrderBidsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderBidsQuery creates a query to retrieve the bids on an order.
// Validates that the order ID is a proper UUID.
func NewGetOrderBidsQuery(orderID kernel.UUID) (GetOrderBidsQuery, error) {
	query := GetOrderBidsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderBidsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderBidsQueryIsNotConstructed if validation fails.
func (q GetOrderBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBidsQueryIsNotConstructed)
}

// OrderID returns the order ID from the query.
func (q GetOrderBidsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderBidsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderBidsQueryResponse represents one courier bid in the read model.
// The courier name is joined in so the list is readable without extra
// lookups.
type GetOrderBidsQueryResponse struct {
	ID          kernel.UUID
	CourierID   kernel.UUID
	CourierName string
	Amount      kernel.Money
	Selected    bool
	CreatedAt   time.Time
}
