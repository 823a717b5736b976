package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// RegisterCustomerCommand represents a request to open a customer account.
// The customer ID comes from the caller because customers are identified by
// the same ID across every channel that talks to the platform.
//
// Example:
//
//	customerID, _ := kernel.UUIDFromString(userID)
//	cmd, err := NewRegisterCustomerCommand(customerID, "Alice Smith")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register customer: %w", err)
//	}
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer.
// Validates that the customer ID is a proper UUID and the name is not empty.
func NewRegisterCustomerCommand(customerID kernel.UUID, name string) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCustomerCommandIsNotConstructed if validation fails.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer ID from the command.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name from the command.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
