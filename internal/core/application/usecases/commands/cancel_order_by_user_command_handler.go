package commands

import (
	"context"
	"time"

	"foodorder/internal/core/ports"
)

// CancelOrderByUserCommandHandler withdraws a customer's order. Cancellation
// is only possible before the merchant accepted; a paid order is refunded
// before the cancellation is persisted.
type CancelOrderByUserCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentGateway
}

// NewCancelOrderByUserCommandHandler creates a handler for customer
// cancellations.
func NewCancelOrderByUserCommandHandler(
	uowFactory OrderUoWFactory, payments ports.PaymentGateway,
) CancelOrderByUserCommandHandler {
	return CancelOrderByUserCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the customer cancellation command.
func (h *CancelOrderByUserCommandHandler) Handle(
	ctx context.Context, cmd CancelOrderByUserCommand,
) error {
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
	aggregate, err := orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	needsRefund := aggregate.RequiresRefund()

	if err = aggregate.CancelByUser(time.Now()); err != nil {
		return err
	}

	if needsRefund {
		if err = h.payments.Refund(
			ctx, aggregate.Number(), aggregate.Number(), aggregate.Amount(), aggregate.Amount(),
		); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
