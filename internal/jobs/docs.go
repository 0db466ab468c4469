// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. OrderPromotionJob - Runs every second to move orders through their
// lifecycle once their dwell thresholds pass.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(promoteOrdersHandler, logger)
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
// The promotion job uses the cron expression "* * * * * *", running every
// second. Each run is one full sweep over the order ledger committed as a
// single save; the state store serializes sweeps against console commands.
//
// # Error Handling
//
// The promotion job logs all errors as they indicate system issues.
// Failed job starts will stop any already running jobs.
package jobs
