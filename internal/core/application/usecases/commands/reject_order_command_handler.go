package commands

import (
	"context"
	"time"

	"foodorder/internal/core/ports"
)

// RejectOrderCommandHandler declines an order awaiting acceptance. If the
// customer already paid, the money is returned through the payment gateway
// before the rejection is persisted; a declined refund aborts the rejection.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentGateway
}

// NewRejectOrderCommandHandler creates a handler for merchant rejections.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory, payments ports.PaymentGateway,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if err = aggregate.Reject(cmd.Reason(), time.Now()); err != nil {
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
