package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// CompleteStaleDeliveriesCommandHandler force-completes orders that sat in
// DeliveryInProgress past the delivery timeout.
//
// Like the payment sweep, every candidate gets its own transaction and a
// lost conditional update only skips that order.
type CompleteStaleDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	timeout    time.Duration
	logger     *slog.Logger
}

// NewCompleteStaleDeliveriesCommandHandler creates a handler for the delivery
// timeout sweep. timeout is how long a delivery may stay in progress.
func NewCompleteStaleDeliveriesCommandHandler(
	uowFactory OrderUoWFactory, timeout time.Duration, logger *slog.Logger,
) CompleteStaleDeliveriesCommandHandler {
	return CompleteStaleDeliveriesCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
		logger:     logger,
	}
}

// Handle runs one sweep. Per-order failures are logged and skipped; only
// listing failures abort the sweep.
func (h *CompleteStaleDeliveriesCommandHandler) Handle(
	ctx context.Context, cmd CompleteStaleDeliveriesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	candidates, err := h.listCandidates(ctx, now.Add(-h.timeout))
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if err = h.completeOne(ctx, candidate, now); err != nil {
			if errors.Is(err, errs.ErrStaleStateConflict) {
				h.logger.Debug("order changed status during sweep, skipping",
					"order_id", candidate.ID().String())
				continue
			}
			h.logger.Warn("failed to complete stale delivery",
				"order_id", candidate.ID().String(), "error", err)
		}
	}

	return nil
}

func (h *CompleteStaleDeliveriesCommandHandler) listCandidates(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetByStatusOlderThan(ctx, order.DeliveryInProgress, cutoff)
}

func (h *CompleteStaleDeliveriesCommandHandler) completeOne(
	ctx context.Context, candidate *order.Order, now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := candidate.ExpireDelivery(now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, candidate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
