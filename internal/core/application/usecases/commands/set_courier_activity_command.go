package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrSetCourierActivityCommandIsNotConstructed = errors.New(
		"SetCourierActivityCommand must be created via NewSetCourierActivityCommand constructor",
	)
)

// SetCourierActivityCommand represents a request to switch a courier between
// active and inactive. Inactive couriers keep their account but cannot place
// bids until they come back.
type SetCourierActivityCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

// NewSetCourierActivityCommand creates a command to change courier activity.
// Validates that the courier ID is a proper UUID.
func NewSetCourierActivityCommand(courierID kernel.UUID, active bool) (SetCourierActivityCommand, error) {
	command := SetCourierActivityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return SetCourierActivityCommand{}, err
	}

	command.active = active
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCourierActivityCommandIsNotConstructed if validation fails.
func (c SetCourierActivityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierActivityCommandIsNotConstructed)
}

// CourierID returns the courier ID from the command.
func (c SetCourierActivityCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Active reports whether the courier should become active.
func (c SetCourierActivityCommand) Active() bool {
	return c.active
}

func (c *SetCourierActivityCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
