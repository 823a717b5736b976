package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrRegisterCourierCommandIsNotConstructed = errors.New(
		"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
	)
)

// RegisterCourierCommand represents a request to register a new courier in
// the delivery pool. Encapsulates the courier name and starting location.
//
// Example:
//
//	location, _ := kernel.NewGeoPoint(55.7558, 37.6173) // Moscow
//	cmd, err := NewRegisterCourierCommand("John Doe", location)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewRegisterCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
//	fmt.Printf("Registered courier with ID: %s", cmd.CourierID())
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
// Validates that name is not empty and the location is a valid coordinate.
func NewRegisterCourierCommand(name string, location kernel.GeoPoint) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setLocation(location),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCourierCommandIsNotConstructed if validation fails.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID from the command.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier name from the command.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Location returns the courier starting location from the command.
func (c RegisterCourierCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *RegisterCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
