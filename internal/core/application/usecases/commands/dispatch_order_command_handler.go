package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/assignment"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// DispatchOrderCommandHandler releases an accepted order for delivery.
// In one transaction the order moves to the notified progress and an
// unclaimed delivery assignment is created for couriers to compete over.
type DispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.Notifier) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	if err = o.EnsureMerchant(cmd.MerchantID(), "dispatch order"); err != nil {
		return err
	}

	if err = o.Dispatch(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	newAssignment, err := assignment.NewDeliveryAssignment(kernel.NewUUID(), o.ID())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, newAssignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, o.CustomerID(),
		fmt.Sprintf("your order %q is looking for a courier", o.ItemName()))

	return nil
}
