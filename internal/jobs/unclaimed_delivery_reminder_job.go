package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
)

// unclaimedReminderThreshold is how long an assignment may sit unclaimed
// before the merchant gets a reminder.
const unclaimedReminderThreshold = 5 * time.Minute

// UnclaimedDeliveryReminderJob reminds merchants about dispatched orders no
// courier has picked up from the claim feed.
type UnclaimedDeliveryReminderJob struct {
	handler  queries.GetClaimableOrdersQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewUnclaimedDeliveryReminderJob creates the reminder job for unclaimed
// deliveries.
func NewUnclaimedDeliveryReminderJob(
	handler queries.GetClaimableOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *UnclaimedDeliveryReminderJob {
	return &UnclaimedDeliveryReminderJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "unclaimed_delivery_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *UnclaimedDeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetClaimableOrdersQuery()

		claimable, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Unclaimed delivery reminder job failed", "error", handleErr)
			return
		}

		cutoff := time.Now().Add(-unclaimedReminderThreshold)
		for _, o := range claimable {
			if o.DispatchedAt.After(cutoff) {
				continue
			}

			message := fmt.Sprintf("Your order %q (%s) is still waiting for a courier", o.ItemName, o.OrderID)
			if notifyErr := j.notifier.Notify(ctx, o.MerchantID, message); notifyErr != nil {
				j.logger.WarnContext(ctx, "Failed to notify merchant about unclaimed delivery",
					"order_id", o.OrderID.String(), "error", notifyErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unclaimed delivery reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *UnclaimedDeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unclaimed delivery reminder job stopped")
}
