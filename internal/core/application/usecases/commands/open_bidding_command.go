package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrOpenBiddingCommandIsNotConstructed = errors.New(
		"OpenBiddingCommand must be created via NewOpenBiddingCommand constructor",
	)
)

// OpenBiddingCommand represents a request to open a confirmed order for
// courier bidding. Used by operators who want to push a single order into
// the auction without waiting for the scheduled sweep.
type OpenBiddingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenBiddingCommand creates a command to open bidding on one order.
// Validates that the order ID is a proper UUID.
func NewOpenBiddingCommand(orderID kernel.UUID) (OpenBiddingCommand, error) {
	command := OpenBiddingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return OpenBiddingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenBiddingCommandIsNotConstructed if validation fails.
func (c OpenBiddingCommand) Validate() error {
	return c.guard.Validate(ErrOpenBiddingCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c OpenBiddingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *OpenBiddingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
