package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/ports"
)

// RemindOrderCommandHandler relays a customer's "hurry up" nudge to the
// operator consoles. It changes no order state; the order is only loaded to
// verify it exists and to resolve its number.
type RemindOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewRemindOrderCommandHandler creates a handler for customer reminders.
func NewRemindOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.NotificationDispatcher,
) RemindOrderCommandHandler {
	return RemindOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reminder command.
func (h *RemindOrderCommandHandler) Handle(ctx context.Context, cmd RemindOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.OperatorEvent{
		Type:    ports.OperatorEventReminder,
		OrderID: aggregate.ID().String(),
		Content: fmt.Sprintf("order number: %s", aggregate.Number()),
	})

	return nil
}
