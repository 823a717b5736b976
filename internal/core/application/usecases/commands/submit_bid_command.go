package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrSubmitBidCommandIsNotConstructed = errors.New(
		"SubmitBidCommand must be created via NewSubmitBidCommand constructor",
	)
)

// SubmitBidCommand represents a courier's delivery fee offer on an order
// that is open for bidding. A unique bid ID is generated when the command
// is built so callers can reference the bid in a later resolution.
//
// Example:
//
//	fee, _ := kernel.NewMoneyFromString("8.00")
//	cmd, err := NewSubmitBidCommand(orderID, courierID, fee)
//	if err != nil {
//	    return fmt.Errorf("invalid bid: %w", err)
//	}
//
//	handler := NewSubmitBidCommandHandler(uowFactory)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, ErrOrderNotBiddable):
//	    // order left the auction before the bid arrived
//	case errors.Is(err, bid.ErrDuplicateBid):
//	    // this courier already offered a fee on the order
//	case err != nil:
//	    return err
//	}
type SubmitBidCommand struct { //nolint:recvcheck //using for validation
	bidID     kernel.UUID
	orderID   kernel.UUID
	courierID kernel.UUID
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmitBidCommand creates a command to submit a courier bid.
// Automatically generates a unique ID for the bid.
// Validates that the order and courier IDs are proper UUIDs and the
// offered amount is positive.
func NewSubmitBidCommand(orderID, courierID kernel.UUID, amount kernel.Money) (SubmitBidCommand, error) {
	command := SubmitBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBidID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setCourierID(courierID),
		command.setAmount(amount),
	); err != nil {
		return SubmitBidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitBidCommandIsNotConstructed if validation fails.
func (c SubmitBidCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBidCommandIsNotConstructed)
}

// BidID returns the generated bid ID from the command.
func (c SubmitBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// OrderID returns the target order ID from the command.
func (c SubmitBidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the bidding courier's ID from the command.
func (c SubmitBidCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the offered delivery fee from the command.
func (c SubmitBidCommand) Amount() kernel.Money {
	return c.amount
}

func (c *SubmitBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *SubmitBidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitBidCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *SubmitBidCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return bid.ErrInvalidAmount
	}

	c.amount = amount
	return nil
}
