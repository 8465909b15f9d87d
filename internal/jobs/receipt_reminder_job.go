package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
)

// ReceiptReminderJob reminds customers to confirm receipt of delivered
// orders. Settlement only runs once the customer confirms, so lingering
// deliveries hold up merchant and courier payouts.
type ReceiptReminderJob struct {
	handler  queries.GetAwaitingReceiptOrdersQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReceiptReminderJob creates the receipt reminder job.
func NewReceiptReminderJob(
	handler queries.GetAwaitingReceiptOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *ReceiptReminderJob {
	return &ReceiptReminderJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "receipt_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *ReceiptReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAwaitingReceiptOrdersQuery()

		awaiting, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Receipt reminder job failed", "error", handleErr)
			return
		}

		for _, o := range awaiting {
			message := fmt.Sprintf("Your order %q was delivered. Please confirm receipt", o.ItemName)
			if notifyErr := j.notifier.Notify(ctx, o.CustomerID, message); notifyErr != nil {
				j.logger.WarnContext(ctx, "Failed to notify customer about delivered order",
					"order_id", o.OrderID.String(), "error", notifyErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Receipt reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *ReceiptReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Receipt reminder job stopped")
}
