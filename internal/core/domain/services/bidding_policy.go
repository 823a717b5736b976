package services

import (
	"errors"

	"cctexpress/internal/core/domain/model/bid"
)

// ErrNoBids is returned when bidding resolution is attempted for an order
// that has received no bids. This occurs both for manual resolution of an
// empty bid list and for the automatic sweep when nothing was submitted.
var ErrNoBids = errors.New("order has no bids")

// AutoSelectedNote is the assignment note recorded when the automatic
// resolution sweep picks the winning bid instead of a manager.
const AutoSelectedNote = "Automatically selected as lowest bid"

// LowestBidPolicy is a domain service that picks the winning bid during
// automatic bidding resolution.
//
// Selection criteria:
//   - The bid with the lowest amount wins
//   - Amount ties are broken by submission time, earliest first
//
// Manual resolution by a manager bypasses this policy entirely; it exists
// for the configurable sweep that resolves stale bidding rounds.
//
// Example usage:
//
//	policy := NewLowestBidPolicy()
//	winner, err := policy.Select(bids)
//	if errors.Is(err, ErrNoBids) {
//	    // Nothing submitted yet, leave bidding open
//	    return
//	}
type LowestBidPolicy struct{}

// NewLowestBidPolicy creates a new LowestBidPolicy instance.
//
// Returns:
//   - LowestBidPolicy: A new instance ready for bid selection
func NewLowestBidPolicy() LowestBidPolicy {
	return LowestBidPolicy{}
}

// Select picks the winning bid from the submitted ones.
//
// Parameters:
//   - bids: The bids submitted for one order
//
// Returns:
//   - *bid.Bid: The winning bid (lowest amount, earliest on ties)
//   - error: ErrNoBids if the list is empty, or a validation error for
//     improperly constructed bids
func (p LowestBidPolicy) Select(bids []*bid.Bid) (*bid.Bid, error) {
	var best *bid.Bid

	for _, b := range bids {
		if err := b.Validate(); err != nil {
			return nil, err
		}

		if best == nil {
			best = b
			continue
		}

		if b.Amount().LessThan(best.Amount()) {
			best = b
			continue
		}

		if b.Amount().IsEqual(best.Amount()) && b.CreatedAt().Before(best.CreatedAt()) {
			best = b
		}
	}

	if best == nil {
		return nil, ErrNoBids
	}

	return best, nil
}
