// Package jobs provides scheduled background tasks for the freight
// marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operational checks over the order book.
//
// # Available Jobs
//
// 1. PendingOrderMonitorJob - Runs every minute and warns about orders that
// have sat on the board unclaimed for too long
// 2. DeliveryReportJob - Runs hourly and logs a census of the order book by
// status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(availableOrdersHandler, allOrdersHandler, logger)
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
// Both jobs only observe the order book, so every failure is logged as an
// error. Failed job starts will stop any already running jobs.
package jobs
