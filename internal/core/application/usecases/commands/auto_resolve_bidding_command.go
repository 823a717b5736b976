package commands

import (
	"errors"

	"cctexpress/internal/pkg/guard"
)

var (
	ErrAutoResolveBiddingCommandIsNotConstructed = errors.New(
		"AutoResolveBiddingCommand must be created via NewAutoResolveBiddingCommand constructor",
	)
)

// AutoResolveBiddingCommand triggers a sweep that resolves bidding on every
// order whose auction has collected at least one bid. The cheapest bid wins,
// with the earlier bid preferred on equal amounts. Orders without bids are
// left open for the next run.
//
// Example:
//
//	cmd := NewAutoResolveBiddingCommand()
//	handler := NewAutoResolveBiddingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Auto resolution failed: %v", err)
//	}
type AutoResolveBiddingCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoResolveBiddingCommand creates a command to auto-resolve open
// auctions. This is a parameterless batch command.
func NewAutoResolveBiddingCommand() AutoResolveBiddingCommand {
	command := AutoResolveBiddingCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoResolveBiddingCommandIsNotConstructed if validation fails.
func (c *AutoResolveBiddingCommand) Validate() error {
	return c.guard.Validate(ErrAutoResolveBiddingCommandIsNotConstructed)
}
