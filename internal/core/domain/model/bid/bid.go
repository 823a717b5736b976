package bid

import (
	"errors"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"
	"cctexpress/internal/pkg/guard"
)

// Domain errors for bid operations.
var (
	// ErrBidIsNotConstructed is returned when using an improperly initialized Bid.
	ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid constructor")
	// ErrInvalidAmount is returned when a bid amount is not positive.
	ErrInvalidAmount = errors.New("bid amount must be positive")
	// ErrDuplicateBid is returned when a courier submits a second bid for the same order.
	// The violation is detected by the storage layer's unique constraint and
	// translated to this error.
	ErrDuplicateBid = errors.New("courier has already placed a bid for this order")
)

// Bid represents a courier's offer to deliver an order for a given fee.
//
// Business rules:
//   - The bid amount must be strictly positive
//   - Order, courier and amount are fixed at submission and never change
//   - At most one bid per courier and order
//   - The winning bid is marked selected during bidding resolution;
//     that mark is the only mutation a bid ever sees
type Bid struct {
	// id uniquely identifies the bid
	id kernel.UUID
	// orderID is the order the bid applies to
	orderID kernel.UUID
	// courierID is the courier making the offer
	courierID kernel.UUID
	// amount is the offered delivery fee
	amount kernel.Money
	// selected marks the winning bid after resolution
	selected bool
	// createdAt is the submission time in UTC, used to break amount ties
	createdAt time.Time
	// guard ensures the bid was properly constructed
	guard guard.ConstructorGuard
}

// NewBid creates a new bid at submission time.
//
// Parameters:
//   - id: Unique identifier for the bid (must be valid UUID)
//   - orderID: The order being bid on (must be valid UUID)
//   - courierID: The bidding courier (must be valid UUID)
//   - amount: The offered delivery fee (must be positive)
//
// Returns:
//   - *Bid: An unselected bid stamped with the current UTC time
//   - error: Validation error if any parameter is invalid
func NewBid(id, orderID, courierID kernel.UUID, amount kernel.Money) (*Bid, error) {
	return RestoreBid(id, orderID, courierID, amount, false, time.Now().UTC())
}

// RestoreBid reconstructs a Bid aggregate from persistent storage.
func RestoreBid(
	id, orderID, courierID kernel.UUID,
	amount kernel.Money,
	selected bool,
	createdAt time.Time,
) (*Bid, error) {
	b := &Bid{
		selected: selected,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setCourierID(courierID),
		b.setAmount(amount),
		b.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks if the Bid was properly constructed using a constructor.
//
// Returns:
//   - error: ErrBidIsNotConstructed if improperly initialized, nil if valid
func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}
	return b.guard.Validate(ErrBidIsNotConstructed)
}

// IsEqual compares two bids for equality based on their unique identifiers.
func (b *Bid) IsEqual(other *Bid) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// OrderID returns the order the bid applies to.
func (b *Bid) OrderID() kernel.UUID {
	return b.orderID
}

// CourierID returns the courier who made the offer.
func (b *Bid) CourierID() kernel.UUID {
	return b.courierID
}

// Amount returns the offered delivery fee.
func (b *Bid) Amount() kernel.Money {
	return b.amount
}

// IsSelected reports whether this bid won the bidding resolution.
func (b *Bid) IsSelected() bool {
	return b.selected
}

// CreatedAt returns the submission time in UTC.
func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

// MarkSelected marks the bid as the winner of the bidding resolution.
// The order aggregate's state machine guarantees resolution happens at
// most once per order, so at most one bid per order ever carries the mark.
//
// Returns:
//   - error: construction validation error, nil otherwise
func (b *Bid) MarkSelected() error {
	if err := b.Validate(); err != nil {
		return err
	}
	b.selected = true
	return nil
}

// setID validates and sets the bid's unique identifier.
// This is a private method used only during construction.
func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setOrderID validates and sets the order identifier.
// This is a private method used only during construction.
func (b *Bid) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	b.orderID = orderID
	return nil
}

// setCourierID validates and sets the courier identifier.
// This is a private method used only during construction.
func (b *Bid) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	b.courierID = courierID
	return nil
}

// setAmount validates and sets the offered fee.
// This is a private method used only during construction.
func (b *Bid) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	b.amount = amount
	return nil
}

// setCreatedAt validates and sets the submission time.
// This is a private method used only during construction.
func (b *Bid) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	b.createdAt = createdAt
	return nil
}
