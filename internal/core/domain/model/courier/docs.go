// Package courier provides the Courier aggregate for the delivery side of the
// ordering system. Couriers compete for orders by submitting delivery bids.
//
// The package includes:
//   - Courier: the aggregate root managing courier identity, base position and activity
//
// Key business rules:
//   - Couriers must have a valid identifier, a non-empty name and a valid base position
//   - Only active couriers may submit bids; deactivated couriers keep their
//     history but are excluded from bidding until reactivated
package courier
