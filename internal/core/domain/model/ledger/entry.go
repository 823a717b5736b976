package ledger

import (
	"errors"
	"fmt"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via a ledger constructor")

// EntryType distinguishes the two kinds of balance movement.
type EntryType int

const (
	// TypeUnknown represents an invalid or undefined entry type.
	TypeUnknown EntryType = iota

	// TypeDeposit is a credit: the customer topped up their account.
	TypeDeposit

	// TypeOrderCharge is a debit: an order's final amount was taken
	// from the account at placement.
	TypeOrderCharge
)

// getEntryTypeStrings returns a map of EntryType values to their string representations.
func getEntryTypeStrings() map[EntryType]string {
	return map[EntryType]string{
		TypeUnknown:     "unknown",
		TypeDeposit:     "deposit",
		TypeOrderCharge: "order_charge",
	}
}

// Validate checks if the EntryType value is valid.
// TypeUnknown (0) and any other values are invalid.
func (t EntryType) Validate() error {
	if t != TypeDeposit && t != TypeOrderCharge {
		return errs.NewValueIsInvalidErrorWithCause("entryType is invalid", fmt.Errorf("%d is not a valid entry type", t))
	}
	return nil
}

// String returns the machine-readable name of the entry type, for example
// "order_charge". Returns "unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (t EntryType) String() string {
	if str, ok := getEntryTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Entry is one immutable line of a customer's account history.
// Entries are written in the same transaction as the balance change they
// describe, so the ledger always adds up to the current balance.
type Entry struct {
	// id uniquely identifies the entry
	id kernel.UUID
	// customerID is the account the movement belongs to
	customerID kernel.UUID
	// orderID references the charged order for order charges, nil for deposits
	orderID *kernel.UUID
	// entryType distinguishes credits from debits
	entryType EntryType
	// amount is the absolute amount moved (always positive)
	amount kernel.Money
	// createdAt is the movement time in UTC
	createdAt time.Time
	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewDepositEntry creates a credit entry for an account top-up.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - customerID: The account being credited
//   - amount: The deposited amount (must be positive)
//
// Returns:
//   - *Entry: The deposit entry stamped with the current UTC time
//   - error: Validation error if any parameter is invalid
func NewDepositEntry(id, customerID kernel.UUID, amount kernel.Money) (*Entry, error) {
	return RestoreEntry(id, customerID, nil, TypeDeposit, amount, time.Now().UTC())
}

// NewOrderChargeEntry creates a debit entry for a successful order charge.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - customerID: The account being debited
//   - orderID: The order whose final amount was charged
//   - amount: The charged amount (must be positive)
//
// Returns:
//   - *Entry: The charge entry stamped with the current UTC time
//   - error: Validation error if any parameter is invalid
func NewOrderChargeEntry(id, customerID, orderID kernel.UUID, amount kernel.Money) (*Entry, error) {
	return RestoreEntry(id, customerID, &orderID, TypeOrderCharge, amount, time.Now().UTC())
}

// RestoreEntry reconstructs a ledger entry from persistent storage.
// The order reference must be consistent with the entry type: order charges
// carry one, deposits do not.
func RestoreEntry(
	id, customerID kernel.UUID,
	orderID *kernel.UUID,
	entryType EntryType,
	amount kernel.Money,
	createdAt time.Time,
) (*Entry, error) {
	entry := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setCustomerID(customerID),
		entry.setType(entryType, orderID),
		entry.setAmount(amount),
		entry.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the Entry instance was properly constructed.
//
// Returns:
//   - nil if the entry is valid
//   - ErrEntryIsNotConstructed otherwise
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// CustomerID returns the account the movement belongs to.
func (e *Entry) CustomerID() kernel.UUID {
	return e.customerID
}

// OrderID returns the charged order's identifier.
// Returns nil for deposit entries.
func (e *Entry) OrderID() *kernel.UUID {
	if e.orderID == nil {
		return nil
	}
	id := *e.orderID
	return &id
}

// Type returns the kind of balance movement.
func (e *Entry) Type() EntryType {
	return e.entryType
}

// Amount returns the absolute amount moved.
func (e *Entry) Amount() kernel.Money {
	return e.amount
}

// CreatedAt returns the movement time in UTC.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// setID validates and sets the entry's unique identifier.
// This is a private method used only during construction.
func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

// setCustomerID validates and sets the account identifier.
// This is a private method used only during construction.
func (e *Entry) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	e.customerID = customerID
	return nil
}

// setType validates the entry type together with the order reference.
// This is a private method used only during construction.
func (e *Entry) setType(entryType EntryType, orderID *kernel.UUID) error {
	if err := entryType.Validate(); err != nil {
		return err
	}

	switch entryType {
	case TypeOrderCharge:
		if orderID == nil {
			return errs.NewValueIsRequiredError("orderId")
		}
		if err := orderID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("orderId", err)
		}
		id := *orderID
		e.orderID = &id
	case TypeDeposit:
		if orderID != nil {
			return errs.NewValueIsInvalidError("orderId must be empty for deposits")
		}
	case TypeUnknown:
		// unreachable, Validate above rejects it
	}

	e.entryType = entryType
	return nil
}

// setAmount validates and sets the moved amount.
// This is a private method used only during construction.
func (e *Entry) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid", fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	e.amount = amount
	return nil
}

// setCreatedAt validates and sets the movement time.
// This is a private method used only during construction.
func (e *Entry) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	e.createdAt = createdAt
	return nil
}
