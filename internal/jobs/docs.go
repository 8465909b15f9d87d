// Package jobs provides scheduled background tasks for the order lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reminder work the request path does not cover.
//
// # Available Jobs
//
// 1. UnclaimedDeliveryReminderJob - Runs every minute and reminds merchants
// about dispatched orders no courier has claimed yet.
// 2. ReceiptReminderJob - Runs every minute and reminds customers to confirm
// receipt of delivered orders so settlement can run.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(claimableHandler, awaitingReceiptHandler, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reminder delivery is best effort. Query failures are logged; notification
// failures are logged per recipient and never abort the run.
package jobs
