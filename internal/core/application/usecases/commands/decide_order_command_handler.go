package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/ports"
)

// DecideOrderCommandHandler records a merchant's accept or reject decision
// on a confirmed order and tells the customer about it.
type DecideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewDecideOrderCommandHandler creates a handler for merchant decisions.
func NewDecideOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) DecideOrderCommandHandler {
	return DecideOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the decision command. The customer notification goes out
// after commit and never fails the decision itself.
func (h *DecideOrderCommandHandler) Handle(ctx context.Context, cmd DecideOrderCommand) error {
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

	if err = o.EnsureMerchant(cmd.MerchantID(), "decide order"); err != nil {
		return err
	}

	if err = o.Decide(cmd.Accept()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	verdict := "accepted"
	if !cmd.Accept() {
		verdict = "rejected"
	}
	_ = h.notifier.Notify(ctx, o.CustomerID(),
		fmt.Sprintf("your order %q was %s", o.ItemName(), verdict))

	return nil
}
