// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. AutoResolveJob - Sweeps orders parked in Problem or Waiting every ten
// seconds and attempts a silent recovery for each one.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(parkedOrdersHandler, autoResolveHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Expected business errors (concurrent transitions, stale status reads) are
// ignored; the next sweep retries the order.
// - System errors are logged and the sweep continues with the next order.
package jobs
