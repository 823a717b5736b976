package commands

import (
	"context"
	"errors"
)

var (
	ErrNotAssignedCourier = errors.New("order is assigned to a different courier")
)

// CompleteOrderCommandHandler finishes deliveries. Only the courier the
// order was assigned to may report completion.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Returns ErrNotAssignedCourier when the reporting courier does not hold
// the assignment, including the case where no courier is assigned at all.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	assignee := orderEntity.Courier()
	if assignee == nil || !assignee.IsEqual(cmd.CourierID()) {
		return ErrNotAssignedCourier
	}

	if err = orderEntity.Complete(); err != nil {
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
