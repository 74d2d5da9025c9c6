package commands

import (
	"context"
)

// DispatchOrderCommandHandler moves a confirmed order into
// DeliveryInProgress.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchOrderCommandHandler creates a handler for dispatching orders.
func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
