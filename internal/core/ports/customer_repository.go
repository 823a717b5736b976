// Package ports defines the contracts between the application core and
// infrastructure adapters. Repository interfaces cover aggregate persistence,
// the unit of work coordinates transactions, and the outbound ports describe
// event publishing and route lookup.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// Provides methods for storing and retrieving customer accounts with their
// balance, spending statistics and loyalty state.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	// The write is guarded by the aggregate version: a concurrent change to
	// the same customer makes Update fail with a version error instead of
	// silently overwriting balance movements.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns the complete account state including the warning counter.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
