package commands

import (
	"context"
)

// SetCourierActivityCommandHandler switches couriers between active and
// inactive states within a transaction.
type SetCourierActivityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierActivityCommandHandler creates a handler for courier activity changes.
func NewSetCourierActivityCommandHandler(uowFactory CourierUoWFactory) SetCourierActivityCommandHandler {
	return SetCourierActivityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activity change command.
// Loads the courier, flips its state, and persists the update.
func (h *SetCourierActivityCommandHandler) Handle(ctx context.Context, cmd SetCourierActivityCommand) error {
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

	courierRepo := uow.CourierRepository()
	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		err = courierEntity.Activate()
	} else {
		err = courierEntity.Deactivate()
	}
	if err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
