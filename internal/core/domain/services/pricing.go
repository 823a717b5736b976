package services

import (
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// vipPayableRate is the share of the subtotal a VIP customer pays.
// VIP customers receive a flat 5% discount on every order.
var vipPayableRate = decimal.New(95, -2)

// OrderPricer is a domain service that turns an order's subtotal into the
// final amount the customer is charged.
//
// Business rules:
//   - Regular customers pay the subtotal as is
//   - VIP customers pay 95% of the subtotal, rounded half-up to whole cents
//   - The VIP status used for pricing is the one the customer held before
//     the order; callers must read it before applying the charge, since the
//     charge itself can lift the customer into VIP
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	final, err := pricer.FinalAmount(draft.Subtotal(), customer.IsVip())
//	if err != nil {
//	    // Handle pricing failure
//	}
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
//
// Returns:
//   - OrderPricer: A new instance ready for pricing operations
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// FinalAmount computes the amount to charge for an order.
//
// Parameters:
//   - subtotal: The sum of the order's line totals
//   - vip: Whether the customer held the VIP status when the order was placed
//
// Returns:
//   - kernel.Money: The final amount (equal to the subtotal for regular customers)
//   - error: An arithmetic validation error, which cannot occur for valid subtotals
func (p OrderPricer) FinalAmount(subtotal kernel.Money, vip bool) (kernel.Money, error) {
	if !vip {
		return subtotal, nil
	}
	return subtotal.MulRate(vipPayableRate)
}
