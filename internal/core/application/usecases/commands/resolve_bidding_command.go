package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrResolveBiddingCommandIsNotConstructed = errors.New(
		"ResolveBiddingCommand must be created via NewResolveBiddingCommand constructor",
	)
)

// ResolveBiddingCommand represents a request to close the auction on an
// order by picking a specific winning bid. The bid ID comes from the list
// of bids previously submitted for the order.
//
// Example:
//
//	cmd, err := NewResolveBiddingCommand(orderID, winningBidID)
//	if err != nil {
//	    return fmt.Errorf("invalid resolution: %w", err)
//	}
//
//	handler := NewResolveBiddingCommandHandler(uowFactory)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // the order already has a courier or never went to auction
//	case errors.Is(err, services.ErrNoBids):
//	    // nothing to choose from yet
//	case err != nil:
//	    return err
//	}
type ResolveBiddingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bidID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveBiddingCommand creates a command to resolve bidding on an order.
// Validates that both the order ID and the winning bid ID are proper UUIDs.
func NewResolveBiddingCommand(orderID, bidID kernel.UUID) (ResolveBiddingCommand, error) {
	command := ResolveBiddingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setBidID(bidID),
	); err != nil {
		return ResolveBiddingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveBiddingCommandIsNotConstructed if validation fails.
func (c ResolveBiddingCommand) Validate() error {
	return c.guard.Validate(ErrResolveBiddingCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c ResolveBiddingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BidID returns the winning bid ID from the command.
func (c ResolveBiddingCommand) BidID() kernel.UUID {
	return c.bidID
}

func (c *ResolveBiddingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveBiddingCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}
