// Package customer provides the Customer aggregate root for the ordering system.
// A customer owns a prepaid account balance, accumulates spending statistics and
// may earn the VIP loyalty status.
//
// The package includes:
//   - Customer: the aggregate root managing identity, balance and loyalty state
//   - VIP thresholds: the spending and order count levels that grant VIP status
//
// Key business rules:
//   - Deposits must be positive; the balance never goes negative
//   - An order charge debits the balance, grows total spend and order count in one step
//   - VIP status is granted when total spend reaches 100.00 or the customer
//     completes their third successful order, and is never revoked
//   - Failed order attempts due to insufficient funds accumulate warnings;
//     three warnings put the customer on a blacklist that blocks further orders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package customer
