package queries

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrGetCouriersQueryIsNotConstructed = errors.New(
		"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
	)
)

// GetCouriersQuery retrieves information about all couriers in the pool.
// Returns courier identities, locations, and activity flags for monitoring.
//
// Example:
//
//	query := NewGetCouriersQuery()
//	handler := NewGetCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//
//	for _, courier := range couriers {
//	    fmt.Printf("Courier %s at %s\n", courier.Name, courier.Location)
//	}
type GetCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a query to retrieve all couriers.
// This is a parameterless query that fetches the complete courier list.
func NewGetCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCouriersQueryIsNotConstructed if validation fails.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// GetCouriersQueryResponse represents courier information in the read model.
type GetCouriersQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Location kernel.GeoPoint
	Active   bool
}
