// Package jobs provides scheduled background tasks for the ordering platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps that keep the delivery auction moving.
//
// # Available Jobs
//
// 1. BiddingOpenJob - Runs every five seconds to open bidding on confirmed orders
// 2. AutoResolveJob - Runs every thirty seconds to close open auctions with the lowest bid
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager; either sweep can be disabled via configuration
//	jobManager := jobs.NewJobManager(openPendingHandler, autoResolveHandler, true, true, logger)
//
//	// Start all enabled jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The bidding sweep runs on "*/5 * * * * *" so confirmed orders reach
// couriers quickly. The resolution sweep runs on "*/30 * * * * *", which
// leaves a bidding window before an auction is closed automatically.
//
// # Error Handling
//
// - Both jobs ignore version conflicts, which occur when an operator races a sweep
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
