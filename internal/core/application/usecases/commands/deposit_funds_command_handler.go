package commands

import (
	"context"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/ledger"
)

// DepositFundsCommandHandler credits customer accounts. The balance change
// and the ledger entry are written in one transaction so the ledger always
// explains the balance.
//
// Example:
//
//	handler := NewDepositFundsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("deposit failed: %w", err)
//	}
type DepositFundsCommandHandler struct {
	uowFactory AccountingUoWFactory
}

// NewDepositFundsCommandHandler creates a handler for deposit operations.
// Requires an AccountingUoWFactory so the account update and the ledger
// entry share a transaction.
func NewDepositFundsCommandHandler(uowFactory AccountingUoWFactory) DepositFundsCommandHandler {
	return DepositFundsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit command.
// Loads the customer, credits the balance, and appends a deposit entry to
// the ledger. Blacklisted customers may still deposit.
func (h *DepositFundsCommandHandler) Handle(ctx context.Context, cmd DepositFundsCommand) error {
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
	ledgerRepo := uow.LedgerRepository()

	account, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = account.Deposit(cmd.Amount()); err != nil {
		return err
	}

	entry, err := ledger.NewDepositEntry(kernel.NewUUID(), account.ID(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = ledgerRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
