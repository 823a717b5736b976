package commands

import (
	"context"

	"cctexpress/internal/core/domain/model/customer"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Creates and persists new customer accounts with a zero
// balance and no order history.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence operations.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Creates a new customer account and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	account, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
