// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderPricer: computes the final order amount, applying the VIP discount
//   - LowestBidPolicy: selects the winning bid during automatic bidding resolution
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
