package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ExpireTimedOutPaymentsCommandHandler cancels orders that sat in
// PendingPayment past the payment timeout.
//
// Each candidate is processed in its own transaction so one failure cannot
// poison the rest of the sweep. Losing the conditional update to a concurrent
// payment callback is expected and handled by skipping the order: the
// customer paid at the last moment and the order moved on.
type ExpireTimedOutPaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
	timeout    time.Duration
	logger     *slog.Logger
}

// NewExpireTimedOutPaymentsCommandHandler creates a handler for the payment
// timeout sweep. timeout is how long an order may wait for payment.
func NewExpireTimedOutPaymentsCommandHandler(
	uowFactory OrderUoWFactory, timeout time.Duration, logger *slog.Logger,
) ExpireTimedOutPaymentsCommandHandler {
	return ExpireTimedOutPaymentsCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
		logger:     logger,
	}
}

// Handle runs one sweep. Per-order failures are logged and skipped; only
// listing failures abort the sweep.
func (h *ExpireTimedOutPaymentsCommandHandler) Handle(
	ctx context.Context, cmd ExpireTimedOutPaymentsCommand,
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
		if err = h.expireOne(ctx, candidate, now); err != nil {
			if errors.Is(err, errs.ErrStaleStateConflict) {
				h.logger.Debug("order changed status during sweep, skipping",
					"order_id", candidate.ID().String())
				continue
			}
			h.logger.Warn("failed to expire order payment",
				"order_id", candidate.ID().String(), "error", err)
		}
	}

	return nil
}

func (h *ExpireTimedOutPaymentsCommandHandler) listCandidates(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetByStatusOlderThan(ctx, order.PendingPayment, cutoff)
}

func (h *ExpireTimedOutPaymentsCommandHandler) expireOne(
	ctx context.Context, candidate *order.Order, now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := candidate.ExpirePayment(now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, candidate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
