package ports

import (
	"context"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items never change after placement, so only the order row is
	// written. The write is guarded by the aggregate version: concurrent
	// lifecycle changes to the same order make Update fail with a version
	// error instead of losing a transition.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInConfirmedStatus retrieves all orders waiting for bidding to open.
	// Used by the bidding sweep to move confirmed orders into the bidding round.
	GetAllInConfirmedStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllInBiddingOpenStatus retrieves all orders with an open bidding round.
	// Used by the automatic resolution sweep.
	GetAllInBiddingOpenStatus(ctx context.Context) ([]*order.Order, error)
}
