package commands

import (
	"context"
	"errors"

	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/ledger"
	"cctexpress/internal/core/domain/model/order"
	"cctexpress/internal/core/domain/services"
)

var (
	ErrVipDishNotAllowed = errors.New("order contains dishes available only to vip customers")
)

// PlaceOrderCommandHandler orchestrates order placement. Charges the
// customer account, confirms the order, and records the charge in the
// ledger within a single transaction.
//
// The VIP discount uses the status the customer holds before this order's
// own spending is counted, so the order that lifts a customer over the
// threshold is still billed at the regular rate.
//
// When the account cannot cover the final amount the order is persisted in
// rejected status, the balance stays untouched, and the handler returns
// customer.ErrInsufficientFunds so callers can tell the outcome apart from
// infrastructure failures.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, customer.ErrInsufficientFunds):
//	    log.Println("Order rejected, balance too low")
//	case errors.Is(err, ErrVipDishNotAllowed):
//	    log.Println("Order includes vip-only dishes")
//	case err != nil:
//	    log.Printf("Placement failed: %v", err)
//	default:
//	    log.Println("Order confirmed")
//	}
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory so the customer, order, and ledger writes
// share a transaction.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Builds the order from the requested items, prices it against the
// customer's current VIP status, and either confirms it with a charge or
// records it as rejected when funds are insufficient.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	account, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = account.EnsureCanOrder(); err != nil {
		return err
	}

	newOrder, err := buildOrder(cmd)
	if err != nil {
		return err
	}

	if newOrder.HasVipOnlyItems() && !account.IsVip() {
		return ErrVipDishNotAllowed
	}

	finalAmount, err := services.NewOrderPricer().FinalAmount(newOrder.Subtotal(), account.IsVip())
	if err != nil {
		return err
	}

	if chargeErr := account.ChargeForOrder(finalAmount); chargeErr != nil {
		if !errors.Is(chargeErr, customer.ErrInsufficientFunds) {
			return chargeErr
		}

		return h.rejectOrder(ctx, uow, account, newOrder, finalAmount, chargeErr)
	}

	if err = newOrder.Confirm(finalAmount); err != nil {
		return err
	}

	charge, err := ledger.NewOrderChargeEntry(kernel.NewUUID(), account.ID(), newOrder.ID(), finalAmount)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, account); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.LedgerRepository().Add(ctx, charge); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// rejectOrder persists the failed placement. The order lands in rejected
// status with the amount that was attempted, the customer picks up a
// warning, and no ledger entry is written because no money moved. The
// original charge error is returned after a successful commit.
func (h *PlaceOrderCommandHandler) rejectOrder(
	ctx context.Context,
	uow CheckoutUoW,
	account *customer.Customer,
	rejected *order.Order,
	finalAmount kernel.Money,
	cause error,
) error {
	if err := rejected.Reject(finalAmount); err != nil {
		return err
	}

	if err := account.AddWarning(); err != nil {
		return err
	}

	if err := uow.CustomerRepository().Update(ctx, account); err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, rejected); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return cause
}

// buildOrder assembles a draft order aggregate from the command payload.
func buildOrder(cmd PlaceOrderCommand) (*order.Order, error) {
	items := cmd.Items()
	lineItems := make([]*order.LineItem, 0, len(items))
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.DishName, item.UnitPrice, item.Quantity, item.VipOnly)
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.DeliveryAddress(), lineItems)
}
