package commands

import (
	"context"
)

// OpenPendingBiddingCommandHandler opens bidding on every confirmed order
// in one transaction. The sweep is idempotent at the tick level because an
// order leaves the confirmed status the moment bidding opens, so the next
// run simply finds nothing to do.
type OpenPendingBiddingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOpenPendingBiddingCommandHandler creates a handler for the bidding sweep.
func NewOpenPendingBiddingCommandHandler(uowFactory OrderUoWFactory) OpenPendingBiddingCommandHandler {
	return OpenPendingBiddingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Retrieves all orders in confirmed status and opens bidding on each.
// All updates occur within a single transaction.
func (h *OpenPendingBiddingCommandHandler) Handle(ctx context.Context, cmd OpenPendingBiddingCommand) error {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInConfirmedStatus(ctx)
	if err != nil {
		return err
	}

	for _, orderEntity := range orders {
		if err = orderEntity.OpenBidding(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, orderEntity); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
