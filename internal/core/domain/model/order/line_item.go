package order

import (
	"errors"
	"fmt"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// ErrDishNameIsRequired is returned when attempting to add a line item without a dish name.
var ErrDishNameIsRequired = errs.NewValueIsRequiredError("dishName")

// LineItem is a child entity of the Order aggregate representing one dish
// position: the dish name, its unit price and the ordered quantity.
// The line total is computed once at construction and never changes.
//
// Some dishes are marked as VIP-only by the restaurant menu. The flag
// travels with the item so the placement flow can refuse such dishes
// for customers without the VIP status.
type LineItem struct {
	// id uniquely identifies the line item within the system
	id kernel.UUID
	// dishName is the menu name of the ordered dish
	dishName string
	// unitPrice is the price of a single dish
	unitPrice kernel.Money
	// quantity is the number of dishes ordered (at least one)
	quantity int
	// total is unitPrice multiplied by quantity, fixed at construction
	total kernel.Money
	// vipOnly marks dishes available only to VIP customers
	vipOnly bool
	// isConstructed ensures the line item was created via a constructor
	isConstructed bool
}

// NewLineItem creates a line item for a fresh order, minting a new identifier.
//
// Parameters:
//   - dishName: menu name of the dish (must be non-empty)
//   - unitPrice: price of a single dish (must be positive)
//   - quantity: number of dishes (must be at least one)
//   - vipOnly: whether the dish is restricted to VIP customers
//
// Returns:
//   - *LineItem: the line item with its total already computed
//   - error: validation error if any parameter is invalid
func NewLineItem(dishName string, unitPrice kernel.Money, quantity int, vipOnly bool) (*LineItem, error) {
	return RestoreLineItem(kernel.NewUUID(), dishName, unitPrice, quantity, vipOnly)
}

// RestoreLineItem reconstructs a line item from persistent storage with a known identifier.
// The total is recomputed from the unit price and quantity, which keeps the
// stored rows and the in-memory entity incapable of drifting apart.
func RestoreLineItem(
	id kernel.UUID,
	dishName string,
	unitPrice kernel.Money,
	quantity int,
	vipOnly bool,
) (*LineItem, error) {
	item := &LineItem{
		vipOnly:       vipOnly,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDishName(dishName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	total, err := unitPrice.MulInt(quantity)
	if err != nil {
		return nil, err
	}
	item.total = total

	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
//
// Returns:
//   - nil if the line item is valid
//   - ErrLineItemIsNotConstructed otherwise
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// DishName returns the menu name of the ordered dish.
func (li *LineItem) DishName() string {
	return li.dishName
}

// UnitPrice returns the price of a single dish.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the number of dishes ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Total returns the line total (unit price multiplied by quantity).
func (li *LineItem) Total() kernel.Money {
	return li.total
}

// IsVipOnly reports whether the dish is restricted to VIP customers.
func (li *LineItem) IsVipOnly() bool {
	return li.vipOnly
}

// setID validates and sets the line item's unique identifier.
// This is a private method used only during construction.
func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

// setDishName validates and sets the dish name.
// This is a private method used only during construction.
func (li *LineItem) setDishName(dishName string) error {
	if dishName == "" {
		return ErrDishNameIsRequired
	}
	li.dishName = dishName
	return nil
}

// setUnitPrice validates and sets the unit price.
// A free dish cannot be ordered; the price must be strictly positive.
// This is a private method used only during construction.
func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid", fmt.Errorf("%s is not greater than 0", unitPrice.String()))
	}
	li.unitPrice = unitPrice
	return nil
}

// setQuantity validates and sets the quantity.
// This is a private method used only during construction.
func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
