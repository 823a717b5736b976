package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/order"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// OrderItem carries one requested dish line of a PlaceOrderCommand.
// Field-level validation happens in the order aggregate when the line
// items are built, so this is a plain data carrier.
type OrderItem struct {
	DishName  string
	UnitPrice kernel.Money
	Quantity  int
	VipOnly   bool
}

// PlaceOrderCommand represents a request to place an order for a customer.
// Encapsulates the delivery address and the requested dishes. A unique
// order ID is generated when the command is built so callers can report it
// back before the order is even persisted.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("12.50")
//	items := []OrderItem{{DishName: "Pad Thai", UnitPrice: price, Quantity: 2}}
//	cmd, err := NewPlaceOrderCommand(customerID, address, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, customer.ErrInsufficientFunds):
//	    // the order was recorded as rejected, nothing was charged
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("Placed order %s", cmd.OrderID())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	deliveryAddress kernel.GeoPoint
	items           []OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Automatically generates a unique ID for the order.
// Validates that the customer ID and address are valid and that at least
// one item is requested.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	items []OrderItem,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setCustomerID(customerID),
		command.setDeliveryAddress(deliveryAddress),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's ID from the command.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the delivery address from the command.
func (c PlaceOrderCommand) DeliveryAddress() kernel.GeoPoint {
	return c.deliveryAddress
}

// Items returns a copy of the requested order items.
func (c PlaceOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress kernel.GeoPoint) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return order.ErrEmptyOrder
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
