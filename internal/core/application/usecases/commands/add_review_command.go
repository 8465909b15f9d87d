package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand represents one order participant reviewing another after
// completion. Rating bounds and comment length are enforced by the review
// entity when the handler builds it.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID  kernel.UUID
	orderID   kernel.UUID
	authorID  kernel.UUID
	subjectID kernel.UUID
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to append a review to a completed order.
func NewAddReviewCommand(reviewID, orderID, authorID, subjectID kernel.UUID,
	rating int, comment string) (AddReviewCommand, error) {
	cmd := AddReviewCommand{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setOrderID(orderID),
		cmd.setAuthorID(authorID),
		cmd.setSubjectID(subjectID),
	); err != nil {
		return AddReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review.
func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the completed order the review is about.
func (c AddReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AuthorID returns the reviewing participant's identifier.
func (c AddReviewCommand) AuthorID() kernel.UUID {
	return c.authorID
}

// SubjectID returns the reviewed participant's identifier.
func (c AddReviewCommand) SubjectID() kernel.UUID {
	return c.subjectID
}

// Rating returns the submitted rating.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the submitted free-text comment.
func (c AddReviewCommand) Comment() string {
	return c.comment
}

func (c *AddReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *AddReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddReviewCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}

func (c *AddReviewCommand) setSubjectID(subjectID kernel.UUID) error {
	if err := subjectID.Validate(); err != nil {
		return err
	}

	c.subjectID = subjectID
	return nil
}
