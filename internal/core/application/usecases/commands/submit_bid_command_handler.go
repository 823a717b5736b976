package commands

import (
	"context"
	"errors"

	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/order"
)

var (
	ErrOrderNotBiddable = errors.New("order is not accepting bids")
	ErrCourierNotActive = errors.New("courier is not active")
)

// SubmitBidCommandHandler records courier bids on orders that are open for
// bidding. The handler rejects bids on orders outside the auction window
// and bids from couriers who are switched off.
//
// Uniqueness of one bid per courier per order is backed by the bid store,
// so two concurrent submissions from the same courier cannot both land.
type SubmitBidCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewSubmitBidCommandHandler creates a handler for bid submission.
// Requires a BiddingUoWFactory for access to orders, couriers, and bids.
func NewSubmitBidCommandHandler(uowFactory BiddingUoWFactory) SubmitBidCommandHandler {
	return SubmitBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bid submission command.
// Returns ErrOrderNotBiddable when the order is not open for bidding,
// ErrCourierNotActive when the courier is deactivated, and
// bid.ErrDuplicateBid when the courier already has a bid on the order.
func (h *SubmitBidCommandHandler) Handle(ctx context.Context, cmd SubmitBidCommand) error {
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

	if orderEntity.Status() != order.BiddingOpen {
		return ErrOrderNotBiddable
	}

	courierEntity, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if !courierEntity.IsActive() {
		return ErrCourierNotActive
	}

	newBid, err := bid.NewBid(cmd.BidID(), cmd.OrderID(), cmd.CourierID(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = uow.BidRepository().Add(ctx, newBid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
