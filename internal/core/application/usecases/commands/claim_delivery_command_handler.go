package commands

import (
	"context"
)

// ClaimDeliveryCommandHandler lets a courier claim a dispatched order.
//
// The claim itself is a conditional update on the assignment row: it
// succeeds only when no courier is recorded at the moment the statement
// runs. Losers of the race get a conflict error and the winning courier is
// bound to the order in the same transaction, so the order and its
// assignment can never name different couriers.
type ClaimDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewClaimDeliveryCommandHandler creates a handler for claim attempts.
func NewClaimDeliveryCommandHandler(uowFactory DispatchUoWFactory) ClaimDeliveryCommandHandler {
	return ClaimDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
func (h *ClaimDeliveryCommandHandler) Handle(ctx context.Context, cmd ClaimDeliveryCommand) error {
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

	if err := uow.AssignmentRepository().ClaimIfUnclaimed(ctx, cmd.OrderID(), cmd.CourierID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.BindCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
