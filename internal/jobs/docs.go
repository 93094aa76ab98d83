// Package jobs provides scheduled background tasks for the order operations system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. DiscountDefaultJob - Runs every minute to apply factory default discounts to lines whose discount is still undecided
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(propagateDefaultsHandler, logger)
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
// The job uses the cron expression "* * * * *" (every minute). A sweep is
// bounded in size, so the next run continues where the previous one stopped.
//
// # Error Handling
//
// - Lines whose factory and SKU have no stored default are skipped silently and retried on the next sweep
// - Sweep failures are logged and the job keeps its schedule
package jobs
