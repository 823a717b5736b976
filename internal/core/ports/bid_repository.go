package ports

import (
	"context"

	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for delivery bids.
// Bids are append-only; besides insertion the only write is marking the
// winning bid during resolution.
type BidRepository interface {
	// Add persists a newly submitted bid.
	// A second bid by the same courier for the same order violates the
	// storage unique constraint and is reported as bid.ErrDuplicateBid.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists the selected mark of the winning bid.
	// No other bid attribute is ever updated.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// GetAllByOrder retrieves every bid submitted for the given order,
	// ordered by submission time.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error)
}
