package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// ConfirmOrdersCommandHandler moves a customer's pending orders to the
// confirmed status. The batch is all-or-nothing: one failed transition rolls
// back the whole confirmation.
type ConfirmOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrdersCommandHandler creates a handler for cart confirmation.
func NewConfirmOrdersCommandHandler(uowFactory OrderUoWFactory) ConfirmOrdersCommandHandler {
	return ConfirmOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. Confirming an empty cart
// succeeds without touching anything.
func (h *ConfirmOrdersCommandHandler) Handle(ctx context.Context, cmd ConfirmOrdersCommand) error {
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

	var batch []*order.Order
	if len(cmd.OrderIDs()) == 0 {
		pending, err := orderRepo.GetAllPendingForCustomer(ctx, cmd.CustomerID())
		if err != nil {
			return err
		}
		batch = pending
	} else {
		for _, id := range cmd.OrderIDs() {
			o, err := orderRepo.Get(ctx, id)
			if err != nil {
				return err
			}

			if err = o.EnsureOwnedBy(cmd.CustomerID(), "confirm order"); err != nil {
				return err
			}

			batch = append(batch, o)
		}
	}

	for _, o := range batch {
		if err := o.Confirm(); err != nil {
			return err
		}

		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
