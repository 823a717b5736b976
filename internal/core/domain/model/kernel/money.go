package kernel

import (
	"cctexpress/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every monetary amount is kept at.
// All amounts in the system (prices, deposits, bids, final order amounts) are
// stored with exactly two decimal places.
const MoneyScale = 2

// ErrMoneyIsNegative indicates that an operation would produce a negative monetary amount.
// Money in this system is always non-negative; directions (credit/debit) are expressed
// by the ledger, never by the sign of an amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// ErrMoneyScaleExceeded indicates that an amount carries more decimal places than MoneyScale allows.
var ErrMoneyScaleExceeded = errs.NewValueIsInvalidError("money amount cannot have more than two decimal places")

// Money is a value object representing a non-negative monetary amount with
// fixed two-decimal precision. It is backed by github.com/shopspring/decimal
// so that arithmetic is exact and free of binary floating point artifacts.
//
// Unlike UUID and GeoPoint, the zero value of Money is valid and represents
// an amount of 0.00. This keeps freshly registered accounts and empty totals
// well-defined without a constructor call.
//
// Money is immutable: every operation returns a new value. Where an operation
// needs rounding (multiplication by a rate), the result is rounded half-up to
// MoneyScale decimal places. For the non-negative amounts Money permits,
// decimal's round-half-away-from-zero is exactly round-half-up.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("12.50")
//	if err != nil {
//	    // handle error
//	}
//	total, err := price.MulInt(3) // 37.50
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be non-negative and must not carry more than
// MoneyScale decimal places. Amounts arriving from clients are expected
// to already be expressed in whole cents; sub-cent precision is rejected
// rather than silently rounded.
//
// Returns:
//   - Money: the validated amount
//   - error: ErrMoneyIsNegative or ErrMoneyScaleExceeded on invalid input
//
// Example:
//
//	amount, err := kernel.NewMoney(decimal.New(1050, -2)) // 10.50
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, ErrMoneyScaleExceeded
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money value from its decimal string representation,
// for example "10.50" or "100". This is the constructor used on API boundaries,
// where amounts travel as strings to avoid floating point loss in JSON.
//
// Returns an error if the string is not a valid decimal number, is negative,
// or carries more than MoneyScale decimal places.
//
// Example:
//
//	deposit, err := kernel.NewMoneyFromString("100.00")
//	if err != nil {
//	    return fmt.Errorf("invalid deposit amount: %w", err)
//	}
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a Money value of 0.00.
// It is equivalent to the zero value of Money and exists for readability
// at call sites that start an accumulation.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the underlying decimal value.
// The returned decimal is immutable; callers cannot affect the Money value
// through it.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
// Since both operands are non-negative the result is always valid,
// so Add never fails.
//
// Example:
//
//	balance := deposit1.Add(deposit2)
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns ErrMoneyIsNegative if the subtrahend exceeds the receiver.
// Callers that need to distinguish a business condition (such as an
// insufficient account balance) should compare with GreaterOrEqual first
// and surface their own domain error.
//
// Example:
//
//	remaining, err := balance.Sub(charge)
//	if err != nil {
//	    // charge exceeds balance
//	}
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: result}, nil
}

// MulInt multiplies the amount by a non-negative integer factor.
// This is the operation behind line item totals (unit price times quantity).
// Returns an error if the factor is negative.
//
// Example:
//
//	total, err := unitPrice.MulInt(quantity)
func (m Money) MulInt(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidError("factor")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}, nil
}

// MulRate multiplies the amount by a non-negative decimal rate and rounds
// the result half-up to MoneyScale decimal places. This is the operation
// behind percentage pricing such as loyalty discounts.
//
// Returns an error if the rate is negative.
//
// Example:
//
//	final, err := subtotal.MulRate(decimal.New(95, -2)) // 95% of subtotal
func (m Money) MulRate(rate decimal.Decimal) (Money, error) {
	if rate.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("rate")
	}
	return Money{amount: m.amount.Mul(rate).Round(MoneyScale)}, nil
}

// GreaterOrEqual reports whether the receiver is greater than or equal to other.
// This is the comparison behind balance checks before debits.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// LessThan reports whether the receiver is strictly less than other.
// This is the comparison behind lowest-bid selection.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares two amounts for numeric equality.
// Amounts compare by value, so 10.5 and 10.50 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than 0.00.
// Deposits and bids must be positive; this check backs that rule.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// String returns the amount formatted with exactly MoneyScale decimal places,
// for example "57.00". This method implements the fmt.Stringer interface and
// is the representation used in API responses and logs.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
