package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryTimeoutJob periodically force-completes deliveries that stayed in
// progress past the delivery timeout. The schedule comes from configuration;
// the default runs once a day during the quiet hours.
type DeliveryTimeoutJob struct {
	handler commands.CompleteStaleDeliveriesCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryTimeoutJob creates the delivery timeout sweep job.
// spec is a six-field cron expression with a seconds column.
func NewDeliveryTimeoutJob(
	handler commands.CompleteStaleDeliveriesCommandHandler, spec string, logger *slog.Logger,
) *DeliveryTimeoutJob {
	return &DeliveryTimeoutJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_timeout_job"),
	}
}

// Start schedules the delivery timeout sweep.
func (j *DeliveryTimeoutJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewCompleteStaleDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery timeout job started", "spec", j.spec)
	return nil
}

// Stop stops the delivery timeout sweep.
func (j *DeliveryTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery timeout job stopped")
}
