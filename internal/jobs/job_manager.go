package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unclaimedReminderJob *UnclaimedDeliveryReminderJob
	receiptReminderJob   *ReceiptReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and the notifier as dependencies to wire up the
// reminder runs.
func NewJobManager(
	claimableHandler queries.GetClaimableOrdersQueryHandler,
	awaitingReceiptHandler queries.GetAwaitingReceiptOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unclaimedReminderJob: NewUnclaimedDeliveryReminderJob(claimableHandler, notifier, logger),
		receiptReminderJob:   NewReceiptReminderJob(awaitingReceiptHandler, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unclaimedReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start unclaimed delivery reminder job: %w", err)
	}

	if err := jm.receiptReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.unclaimedReminderJob.Stop()
		return fmt.Errorf("failed to start receipt reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.receiptReminderJob.Stop()
	jm.unclaimedReminderJob.Stop()
}
