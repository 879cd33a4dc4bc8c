// Package jobs provides scheduled background tasks for the order tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the kitchen queue.
//
// # Available Jobs
//
// 1. KitchenBacklogJob - Runs every 30 seconds to report how many sent orders
// are queued for the kitchen and how many carry unacknowledged updates
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getKitchenOrdersHandler, logger)
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
// The backlog job uses the cron expression "*/30 * * * * *", running every
// 30 seconds. The report is an operational aid for kitchen staffing and does
// not change any state.
//
// # Error Handling
//
// - The backlog job logs query failures and skips the tick
// - Failed job starts are reported to the caller
package jobs
