package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// AdvanceDeliveryCommandHandler records delivery progress reported by the
// claiming courier. Only that courier may advance the order.
type AdvanceDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAdvanceDeliveryCommandHandler creates a handler for progress reports.
func NewAdvanceDeliveryCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the progress report.
func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	if err = o.AdvanceDelivery(cmd.CourierID(), cmd.To()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	switch cmd.To() {
	case order.PickingUp:
		_ = h.notifier.Notify(ctx, o.CustomerID(),
			fmt.Sprintf("your order %q is being picked up", o.ItemName()))
	case order.Delivered:
		_ = h.notifier.Notify(ctx, o.CustomerID(),
			fmt.Sprintf("your order %q has been delivered", o.ItemName()))
	}

	return nil
}
