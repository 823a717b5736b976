package commands

import (
	"errors"

	"cctexpress/internal/pkg/guard"
)

var (
	ErrOpenPendingBiddingCommandIsNotConstructed = errors.New(
		"OpenPendingBiddingCommand must be created via NewOpenPendingBiddingCommand constructor",
	)
)

// OpenPendingBiddingCommand triggers a sweep that opens bidding on every
// confirmed order. Scheduled jobs run this periodically so confirmed orders
// reach the courier auction without operator involvement.
//
// Example:
//
//	cmd := NewOpenPendingBiddingCommand()
//	handler := NewOpenPendingBiddingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Bidding sweep failed: %v", err)
//	}
type OpenPendingBiddingCommand struct {
	guard guard.ConstructorGuard
}

// NewOpenPendingBiddingCommand creates a command to sweep confirmed orders
// into bidding. This is a parameterless batch command.
func NewOpenPendingBiddingCommand() OpenPendingBiddingCommand {
	command := OpenPendingBiddingCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenPendingBiddingCommandIsNotConstructed if validation fails.
func (c *OpenPendingBiddingCommand) Validate() error {
	return c.guard.Validate(ErrOpenPendingBiddingCommandIsNotConstructed)
}
