package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentTimeoutJob periodically cancels orders that were never paid.
// The schedule comes from configuration; the default sweeps every minute.
type PaymentTimeoutJob struct {
	handler commands.ExpireTimedOutPaymentsCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentTimeoutJob creates the payment timeout sweep job.
// spec is a six-field cron expression with a seconds column.
func NewPaymentTimeoutJob(
	handler commands.ExpireTimedOutPaymentsCommandHandler, spec string, logger *slog.Logger,
) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_timeout_job"),
	}
}

// Start schedules the payment timeout sweep.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewExpireTimedOutPaymentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started", "spec", j.spec)
	return nil
}

// Stop stops the payment timeout sweep.
func (j *PaymentTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}
