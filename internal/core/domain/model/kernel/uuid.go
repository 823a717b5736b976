package kernel

import (
	"fmt"

	"cctexpress/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID that bypassed the
// constructor functions. Validate returns it so aggregates can reject
// identifiers that were never assigned.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object wrapping github.com/google/uuid. Every entity and
// aggregate in the system is identified by one: customers, orders, couriers,
// bids and ledger entries.
//
// The zero value is not a usable identifier. Construct through NewUUID,
// UUIDFromString or UUIDFromBytes; Validate reports whether that happened.
//
// UUID is immutable and safe to share across goroutines.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	courierID, err := kernel.UUIDFromString(header)
//	if err != nil {
//	    // reject the request
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. This is how every new
// aggregate gets its identity, whether created by a handler or by a
// command constructor.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its canonical textual form, such as
// "0d5174b5-13b4-4f7f-bd93-6e1c77ff3c0e". Braced and urn:uuid: forms are
// accepted as well.
//
// This is the constructor used on inbound boundaries: path parameters,
// identity headers and rows loaded from persistence all pass through it.
// Returns an error when the input is not a UUID in any accepted form.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, rejecting slices of any
// other length and the all-zero pattern. Binary transports and databases
// that store identifiers as raw bytes reconstruct through this function.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as all zeros. This is the representation used in
// API responses, log fields and database columns.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID value for integrations that need
// the raw library type. Slice it ([:]) for a 16-byte representation.
// Domain code should not need this; it exists for adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs identify the same thing.
// Aggregates use it for ownership checks, such as matching the assigned
// courier against the caller completing a delivery.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports whether the UUID was properly constructed.
// Returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call this on every identifier they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
