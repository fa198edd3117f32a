// Package jobs provides the scheduled background tasks of the kitchen.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the order lifecycle depends on.
//
// # Available Jobs
//
// 1. OrderCompletionJob - Runs every thirty seconds to complete processing
// orders whose preparation time has elapsed and release their chefs
// 2. OverdueOrderJob - Runs every minute to raise an alert for orders
// cooking past the overdue threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completeHandler, overdueHandler, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and keep running: a failed tick never stops the
// schedule, and an order the sweep lost to a manual transition is skipped,
// not retried.
package jobs
