package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ConfirmReceiptCommandHandler completes an order on the customer's
// confirmation and settles it in the same transaction: ledger entries are
// appended and each party's report totals are incremented. Completion is a
// one-way transition, so settlement cannot run twice for the same order.
type ConfirmReceiptCommandHandler struct {
	uowFactory SettleUoWFactory
	settlement services.Settlement
	notifier   ports.Notifier
}

// NewConfirmReceiptCommandHandler creates a handler for receipt confirmation.
func NewConfirmReceiptCommandHandler(uowFactory SettleUoWFactory,
	settlement services.Settlement, notifier ports.Notifier) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
		notifier:   notifier,
	}
}

// Handle processes the receipt confirmation.
func (h *ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureOwnedBy(cmd.CustomerID(), "confirm receipt"); err != nil {
		return err
	}

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	entries, err := h.settlement.Settle(o)
	if err != nil {
		return err
	}

	ledgerRepo := uow.LedgerRepository()
	for _, entry := range entries {
		if err = ledgerRepo.AddEntry(ctx, entry); err != nil {
			return err
		}

		if err = ledgerRepo.ApplyToReport(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Type().IsIncome() {
			_ = h.notifier.Notify(ctx, entry.UserID(),
				fmt.Sprintf("order %q settled, you earned %s", o.ItemName(), entry.Amount()))
		}
	}

	return nil
}
