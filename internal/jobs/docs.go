// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps required by the order lifecycle.
//
// # Available Jobs
//
// 1. PaymentTimeoutJob - Cancels orders that sat in PendingPayment past the payment timeout
// 2. DeliveryTimeoutJob - Force-completes orders that sat in DeliveryInProgress past the delivery timeout
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers and cron specs
//	jobManager := jobs.NewJobManager(expirePaymentsHandler, completeDeliveriesHandler,
//		"0 * * * * *", "0 0 1 * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take six-field cron expressions (with a seconds column) from
// configuration. The defaults sweep payments every minute and stale
// deliveries once a day at 01:00.
//
// # Error Handling
//
// - Sweeps losing a conditional update to a concurrent transition skip that order
// - Other per-order failures are logged and the sweep continues
// - Failed job starts will stop any already running jobs
package jobs
