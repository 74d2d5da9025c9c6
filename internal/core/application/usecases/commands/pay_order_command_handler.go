package commands

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// PayOrderCommandHandler applies a payment confirmation to an order and
// announces the newly paid order to the operator consoles.
//
// Payment providers retry callbacks, so the handler is idempotent: an order
// that already left PendingPayment reports success without touching state or
// broadcasting a second time.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewPayOrderCommandHandler creates a handler for payment callbacks.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.NotificationDispatcher,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment callback.
// The broadcast happens only after the transaction committed, so operators
// never see an order that was rolled back.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return err
	}

	// Duplicate callback: the first one already moved the order on.
	if aggregate.Status() != order.PendingPayment {
		return nil
	}

	if err = aggregate.MarkPaid(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.OperatorEvent{
		Type:    ports.OperatorEventNewOrder,
		OrderID: aggregate.ID().String(),
		Content: fmt.Sprintf("order number: %s", aggregate.Number()),
	})

	return nil
}
