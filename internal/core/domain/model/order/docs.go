// Package order provides domain entities and business logic for order management
// in the restaurant ordering system. It implements the Order aggregate root with
// lifecycle management, line items and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing results and lifecycle
//   - LineItem: A child entity representing one dish position with a fixed line total
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must contain at least one line item
//   - The lifecycle is Draft -> Confirmed -> BiddingOpen -> Assigned -> Completed,
//     with Rejected reachable only from Draft when payment fails
//   - The final amount is fixed when the order leaves Draft and never changes
//   - A courier is attached exactly when a winning bid is selected, at most once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
