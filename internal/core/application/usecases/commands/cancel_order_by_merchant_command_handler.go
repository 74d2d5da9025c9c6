package commands

import (
	"context"
	"time"

	"foodorder/internal/core/ports"
)

// CancelOrderByMerchantCommandHandler cancels an order on the merchant's
// behalf from any non-terminal status, refunding first when the customer
// already paid.
type CancelOrderByMerchantCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentGateway
}

// NewCancelOrderByMerchantCommandHandler creates a handler for merchant
// cancellations.
func NewCancelOrderByMerchantCommandHandler(
	uowFactory OrderUoWFactory, payments ports.PaymentGateway,
) CancelOrderByMerchantCommandHandler {
	return CancelOrderByMerchantCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the merchant cancellation command.
func (h *CancelOrderByMerchantCommandHandler) Handle(
	ctx context.Context, cmd CancelOrderByMerchantCommand,
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

	if err = aggregate.CancelByMerchant(cmd.Reason(), time.Now()); err != nil {
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
