package commands

import (
	"context"
)

// OpenBiddingCommandHandler moves a single confirmed order into the
// bidding_open status so couriers can start placing bids on it.
type OpenBiddingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOpenBiddingCommandHandler creates a handler for opening bidding on
// individual orders.
func NewOpenBiddingCommandHandler(uowFactory OrderUoWFactory) OpenBiddingCommandHandler {
	return OpenBiddingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open bidding command.
// Returns order.ErrInvalidTransition wrapped with the offending statuses
// when the order is not in confirmed status.
func (h OpenBiddingCommandHandler) Handle(ctx context.Context, cmd OpenBiddingCommand) error {
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
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.OpenBidding(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
