// Package kernel provides core domain primitives shared by every aggregate
// of the ordering system. It implements the fundamental building blocks
// following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison capabilities
//   - Money: a value object for monetary amounts with fixed two-decimal precision
//   - GeoPoint: a value object representing a geographic coordinate used for delivery routing
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// All monetary arithmetic in the system goes through Money so that rounding
// behavior stays consistent across pricing, deposits and bidding.
package kernel
