package commands

import (
	"context"
	"errors"

	"cctexpress/internal/core/domain/model/order"
	"cctexpress/internal/core/domain/services"
)

// AutoResolveBiddingCommandHandler closes open auctions without operator
// involvement. Each order open for bidding gets the lowest submitted bid
// selected through the same assignment path the manual resolution uses,
// so the single winner guarantee holds for both.
type AutoResolveBiddingCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAutoResolveBiddingCommandHandler creates a handler for the auto
// resolution sweep.
func NewAutoResolveBiddingCommandHandler(uowFactory AssignmentUoWFactory) AutoResolveBiddingCommandHandler {
	return AutoResolveBiddingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the auto resolution command.
// Retrieves all orders open for bidding, picks the winning bid for each
// through the lowest bid policy, and assigns the winner's courier. Orders
// without bids are skipped. All updates occur within a single transaction.
func (h *AutoResolveBiddingCommandHandler) Handle(ctx context.Context, cmd AutoResolveBiddingCommand) error {
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

	orders, err := uow.OrderRepository().GetAllInBiddingOpenStatus(ctx)
	if err != nil {
		return err
	}

	for _, orderEntity := range orders {
		if err = h.resolveOrder(ctx, uow, orderEntity); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveOrder assigns the winning bid for a single order. An order with
// no bids stays open and is not treated as a failure.
func (h *AutoResolveBiddingCommandHandler) resolveOrder(
	ctx context.Context,
	uow AssignmentUoW,
	orderEntity *order.Order,
) error {
	bids, err := uow.BidRepository().GetAllByOrder(ctx, orderEntity.ID())
	if err != nil {
		return err
	}

	winner, err := services.NewLowestBidPolicy().Select(bids)
	if errors.Is(err, services.ErrNoBids) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = orderEntity.Assign(winner.CourierID(), services.AutoSelectedNote); err != nil {
		return err
	}

	if err = winner.MarkSelected(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.BidRepository().Update(ctx, winner); err != nil {
		return err
	}

	return nil
}
