package commands

import (
	"context"

	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/services"
	"cctexpress/internal/pkg/errs"
)

// ResolveBiddingCommandHandler closes the auction on an order by assigning
// the courier behind an explicitly chosen bid. The order transition and the
// winning bid's selected flag are updated in one transaction.
//
// Once an order is assigned there is no path back to bidding, so a second
// resolution attempt fails with order.ErrInvalidTransition no matter which
// bid it names.
type ResolveBiddingCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewResolveBiddingCommandHandler creates a handler for manual bidding
// resolution. Requires an AssignmentUoWFactory for coordinated order and
// bid updates.
func NewResolveBiddingCommandHandler(uowFactory AssignmentUoWFactory) ResolveBiddingCommandHandler {
	return ResolveBiddingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
// Verifies the order can still be assigned, locates the chosen bid among
// the order's bids, and assigns its courier. Returns services.ErrNoBids
// when the order has no bids and an object not found error when the bid ID
// does not belong to the order.
func (h *ResolveBiddingCommandHandler) Handle(ctx context.Context, cmd ResolveBiddingCommand) error {
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

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Status check before touching bids keeps the error for a finished
	// auction stable regardless of how many bids it gathered.
	if _, err = orderEntity.Status().Assign(); err != nil {
		return err
	}

	bids, err := uow.BidRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if len(bids) == 0 {
		return services.ErrNoBids
	}

	winner := findBid(bids, cmd)
	if winner == nil {
		return errs.NewObjectNotFoundError("bidId", cmd.BidID())
	}

	if err = orderEntity.Assign(winner.CourierID(), ""); err != nil {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// findBid returns the bid named by the command, or nil when the bid does
// not belong to the order.
func findBid(bids []*bid.Bid, cmd ResolveBiddingCommand) *bid.Bid {
	for _, candidate := range bids {
		if candidate.ID().IsEqual(cmd.BidID()) {
			return candidate
		}
	}

	return nil
}
