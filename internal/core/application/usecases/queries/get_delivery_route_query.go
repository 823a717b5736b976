package queries

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrGetDeliveryRouteQueryIsNotConstructed = errors.New(
		"GetDeliveryRouteQuery must be created via NewGetDeliveryRouteQuery constructor",
	)

	// ErrOrderHasNoCourier is returned when a route is requested for an
	// order that has not been assigned yet. Without a courier there is no
	// starting point to route from.
	ErrOrderHasNoCourier = errors.New("order has no assigned courier")
)

// GetDeliveryRouteQuery retrieves the delivery route for an assigned
// order, from the courier's current location to the delivery address.
//
// Example:
//
//	query, err := NewGetDeliveryRouteQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	route, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, ErrOrderHasNoCourier):
//	    // nothing to route yet
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("%.0f meters, about %.0f seconds\n", route.DistanceMeters, route.DurationSeconds)
type GetDeliveryRouteQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryRouteQuery creates a query for an order's delivery route.
// Validates that the order ID is a proper UUID.
func NewGetDeliveryRouteQuery(orderID kernel.UUID) (GetDeliveryRouteQuery, error) {
	query := GetDeliveryRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetDeliveryRouteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryRouteQueryIsNotConstructed if validation fails.
func (q GetDeliveryRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRouteQueryIsNotConstructed)
}

// OrderID returns the order ID from the query.
func (q GetDeliveryRouteQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetDeliveryRouteQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetDeliveryRouteQueryResponse represents a courier's route to a
// delivery address. Estimated is true when the routing provider was not
// reachable and the figures fall back to a straight-line computation.
type GetDeliveryRouteQueryResponse struct {
	OrderID         kernel.UUID
	CourierID       kernel.UUID
	From            kernel.GeoPoint
	To              kernel.GeoPoint
	DistanceMeters  float64
	DurationSeconds float64
	Estimated       bool
}
