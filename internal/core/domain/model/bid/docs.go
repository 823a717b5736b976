// Package bid provides the Bid aggregate for courier delivery bidding.
// A bid is a courier's offer to deliver a specific order for a specific fee.
//
// Bids are append-only: once submitted, a bid's order, courier and amount
// never change. The only state a bid ever gains is the selected mark placed
// on the winning bid when bidding is resolved. Each courier may hold at most
// one bid per order; the persistence layer enforces that with a unique
// constraint and reports violations as ErrDuplicateBid.
package bid
