package commands

import (
	"errors"

	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrDepositFundsCommandIsNotConstructed = errors.New(
		"DepositFundsCommand must be created via NewDepositFundsCommand constructor",
	)
)

// DepositFundsCommand represents a request to credit a customer account.
// Deposits are the only way money enters the platform, so every deposit
// leaves a matching ledger entry.
//
// Example:
//
//	amount, _ := kernel.NewMoneyFromString("50.00")
//	cmd, err := NewDepositFundsCommand(customerID, amount)
//	if err != nil {
//	    return fmt.Errorf("invalid deposit: %w", err)
//	}
//
//	handler := NewDepositFundsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("deposit failed: %w", err)
//	}
type DepositFundsCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewDepositFundsCommand creates a command to credit a customer account.
// Validates that the customer ID is a proper UUID and the amount is positive.
func NewDepositFundsCommand(customerID kernel.UUID, amount kernel.Money) (DepositFundsCommand, error) {
	command := DepositFundsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setAmount(amount),
	); err != nil {
		return DepositFundsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDepositFundsCommandIsNotConstructed if validation fails.
func (c DepositFundsCommand) Validate() error {
	return c.guard.Validate(ErrDepositFundsCommandIsNotConstructed)
}

// CustomerID returns the customer ID from the command.
func (c DepositFundsCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the deposit amount from the command.
func (c DepositFundsCommand) Amount() kernel.Money {
	return c.amount
}

func (c *DepositFundsCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *DepositFundsCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return customer.ErrInvalidAmount
	}

	c.amount = amount
	return nil
}
