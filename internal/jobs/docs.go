// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the procurement service.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs hourly to find purchase orders past their expected delivery date that still await goods
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOverdueOrdersHandler, logger)
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
// The overdue sweep uses the cron expression "0 0 * * * *", firing at the top
// of every hour. Overdue detection is a reporting concern, so an hourly cadence
// is more than enough.
//
// # Error Handling
//
// - The sweep logs failures and retries on the next tick; a failed run never stops the schedule
// - Each overdue order is logged individually so alerting can key on the order number
// - Failed job starts will stop any already running jobs
package jobs
