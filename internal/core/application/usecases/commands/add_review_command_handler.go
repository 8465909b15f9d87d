package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"
)

// AddReviewCommandHandler appends a review to a completed order. Both the
// author and the subject must have taken part in the order as its customer,
// merchant or courier.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review submission.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status() != order.Completed {
		return errs.NewInvalidStateError("review order", o.Status().String())
	}

	if !isParticipant(o, cmd.AuthorID()) {
		return errs.NewForbiddenError(cmd.AuthorID().String(), "review order")
	}

	if !isParticipant(o, cmd.SubjectID()) {
		return errs.NewValueIsInvalidError("subject")
	}

	newReview, err := review.NewReview(cmd.ReviewID(), cmd.OrderID(),
		cmd.AuthorID(), cmd.SubjectID(), cmd.Rating(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func isParticipant(o *order.Order, userID kernel.UUID) bool {
	if userID.IsEqual(o.CustomerID()) || userID.IsEqual(o.MerchantID()) {
		return true
	}
	if courierID := o.Courier(); courierID != nil && userID.IsEqual(*courierID) {
		return true
	}
	return false
}
