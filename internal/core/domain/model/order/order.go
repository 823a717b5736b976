package order

import (
	"errors"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// a constructor. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrEmptyOrder is returned when attempting to create an order without line items.
	ErrEmptyOrder = errors.New("order must contain at least one line item")
	// ErrFinalAmountIsRequired is returned when confirming an order with a non-positive final amount.
	ErrFinalAmountIsRequired = errors.New("final amount must be positive")
)

// Order represents a restaurant order in the system. It is the aggregate root
// that manages the order lifecycle from placement through courier bidding and
// assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must contain at least one line item
//   - The subtotal is the sum of line totals and never changes after placement
//   - The final amount is fixed exactly once, when the order leaves Draft,
//     and is immutable afterwards
//   - Status transitions follow the lifecycle state machine in Status
//   - A courier is attached if and only if the order is Assigned or Completed
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// courierID is the courier responsible for delivery (nil until assignment)
	courierID *kernel.UUID

	// deliveryAddress is the geographic destination of the delivery
	deliveryAddress kernel.GeoPoint

	// lineItems are the ordered dish positions (at least one)
	lineItems []*LineItem

	// status represents the current state in the order lifecycle
	status Status

	// subtotal is the sum of all line totals before any discount
	subtotal kernel.Money

	// finalAmount is the amount actually charged (or attempted, for rejected orders)
	finalAmount kernel.Money

	// assignmentNote explains how the winning bid was selected
	assignmentNote string

	// createdAt is the placement time in UTC
	createdAt time.Time

	// completedAt is the delivery time in UTC (nil until completion)
	completedAt *time.Time

	// version supports optimistic concurrency control in persistence
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Draft status. This is the entry point of
// the placement flow: the caller prices the draft, charges the customer and
// then either confirms or rejects it before persisting.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the ordering customer (must be valid UUID)
//   - deliveryAddress: Geographic destination for the delivery
//   - lineItems: Ordered dish positions (at least one)
//
// Returns:
//   - *Order: The created draft order with its subtotal computed
//   - error: Validation error if any parameter is invalid,
//     ErrEmptyOrder if no line items were given
//
// Example:
//
//	item, _ := NewLineItem("Pad Thai", price, 2, false)
//	draft, err := NewOrder(kernel.NewUUID(), customerID, address, []*LineItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	lineItems []*LineItem,
) (*Order, error) {
	order := &Order{
		status:        Draft,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDeliveryAddress(deliveryAddress),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// The restored order behaves identically to one created through normal
// domain operations.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: Identifier of the ordering customer
//   - courierID: Assigned courier, nil for orders before assignment
//   - deliveryAddress: Geographic destination for the delivery
//   - lineItems: Ordered dish positions
//   - status: Persisted lifecycle status
//   - finalAmount: Persisted final amount
//   - assignmentNote: Explanation of the winning bid selection
//   - createdAt: Placement time
//   - completedAt: Delivery time, nil for uncompleted orders
//   - version: Aggregate version for optimistic concurrency control
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if the persisted state is inconsistent
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	courierID *kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	lineItems []*LineItem,
	status Status,
	finalAmount kernel.Money,
	assignmentNote string,
	createdAt time.Time,
	completedAt *time.Time,
	version int,
) (*Order, error) {
	order := &Order{
		finalAmount:    finalAmount,
		assignmentNote: assignmentNote,
		createdAt:      createdAt,
		completedAt:    completedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDeliveryAddress(deliveryAddress),
		order.setLineItems(lineItems),
		order.setStatus(status, courierID != nil),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		order.courierID = &id
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// DeliveryAddress returns the geographic destination of the delivery.
func (o *Order) DeliveryAddress() kernel.GeoPoint {
	return o.deliveryAddress
}

// LineItems returns the ordered dish positions.
// The returned slice is a copy to prevent external modification.
func (o *Order) LineItems() []*LineItem {
	out := make([]*LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the sum of all line totals before any discount.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// FinalAmount returns the amount charged for the order.
// For rejected orders this is the amount the charge was attempted with.
// It is 0.00 while the order is still a draft.
func (o *Order) FinalAmount() kernel.Money {
	return o.finalAmount
}

// AssignmentNote returns the explanation of how the winning bid was selected.
// It is empty until the order is assigned.
func (o *Order) AssignmentNote() string {
	return o.assignmentNote
}

// CreatedAt returns the placement time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the delivery time in UTC.
// Returns nil if the order has not been completed.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	ts := *o.completedAt
	return &ts
}

// Version returns the aggregate version used for optimistic concurrency control.
func (o *Order) Version() int {
	return o.version
}

// HasVipOnlyItems reports whether any line item is restricted to VIP customers.
// The placement flow uses this to refuse such orders for regular customers.
func (o *Order) HasVipOnlyItems() bool {
	for _, item := range o.lineItems {
		if item.IsVipOnly() {
			return true
		}
	}
	return false
}

// Confirm fixes the final amount and moves the order from Draft to Confirmed.
// This is called after the customer's account was successfully charged.
//
// Business rules:
//   - Only draft orders can be confirmed
//   - The final amount must be positive and is immutable from here on
//
// Parameters:
//   - finalAmount: The amount that was charged for the order
//
// Returns:
//   - error: ErrFinalAmountIsRequired for a non-positive amount,
//     an ErrInvalidTransition wrapper if the order is not a draft
func (o *Order) Confirm(finalAmount kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !finalAmount.IsPositive() {
		return ErrFinalAmountIsRequired
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.finalAmount = finalAmount
	return nil
}

// Reject moves the order from Draft to Rejected after a failed charge.
// The attempted amount is recorded for audit purposes even though no
// money moved.
//
// Parameters:
//   - finalAmount: The amount the charge was attempted with
//
// Returns:
//   - error: an ErrInvalidTransition wrapper if the order is not a draft
func (o *Order) Reject(finalAmount kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.finalAmount = finalAmount
	return nil
}

// OpenBidding makes the order available for courier bids.
//
// Business rules:
//   - Only confirmed orders can open bidding
//
// Returns:
//   - error: an ErrInvalidTransition wrapper on an invalid transition
func (o *Order) OpenBidding() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.OpenBidding()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Assign attaches the courier of the winning bid and closes bidding.
//
// Business rules:
//   - The courier ID must be valid
//   - Only orders with open bidding can be assigned
//   - Assignment happens at most once; there is no reassignment
//
// Parameters:
//   - courierID: The courier whose bid was selected
//   - note: Explanation of the selection (may be empty for manual picks)
//
// Returns:
//   - error: an ErrInvalidTransition wrapper if bidding is not open,
//     a validation error for an invalid courier ID
func (o *Order) Assign(courierID kernel.UUID, note string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.assignmentNote = note
	return nil
}

// Complete marks the order as delivered.
//
// Business rules:
//   - Only assigned orders can be completed
//   - Completion is final; the completion time is recorded in UTC
//
// Returns:
//   - error: an ErrInvalidTransition wrapper if the order is not assigned
func (o *Order) Complete() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

// setDeliveryAddress validates and sets the delivery destination.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(deliveryAddress kernel.GeoPoint) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setLineItems validates the line items and computes the subtotal.
// This is a private method used only during construction.
func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return ErrEmptyOrder
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(item.Total())
	}

	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	o.subtotal = subtotal
	return nil
}

// setStatus validates the persisted status and its consistency with the
// courier assignment. This is a private method used only during restoration.
func (o *Order) setStatus(status Status, hasCourier bool) error {
	if err := errors.Join(status.Validate(), status.ValidateCanHaveCourier(hasCourier)); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setVersion validates and sets the aggregate version.
// This is a private method used only during restoration.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}
	o.version = version
	return nil
}
