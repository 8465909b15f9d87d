// Package review contains the Review entity: a bounded rating plus free-text
// comment, authored by one party about another, scoped to a single completed
// order. Reviews are append-only; nothing in the system edits or removes one.
package review

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const (
	// MinRating and MaxRating bound the accepted rating scale.
	MinRating = 1
	MaxRating = 5

	// MaxCommentLength bounds the free-text comment.
	MaxCommentLength = 500
)

// ErrReviewIsNotConstructed is returned when a Review was not created through
// NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is one party's rating of another for a completed order.
type Review struct {
	id        kernel.UUID
	orderID   kernel.UUID
	authorID  kernel.UUID
	subjectID kernel.UUID
	rating    int
	comment   string
	createdAt time.Time

	isConstructed bool
}

// NewReview creates a review after validating the rating bounds and comment
// length. Whether the order actually permits reviewing is the use case's
// check; this constructor only owns the value rules.
func NewReview(id, orderID, authorID, subjectID kernel.UUID, rating int, comment string) (*Review, error) {
	r := &Review{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setAuthorID(authorID),
		r.setSubjectID(subjectID),
		r.setRating(rating),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(id, orderID, authorID, subjectID kernel.UUID, rating int, comment string, createdAt time.Time) (*Review, error) {
	r, err := NewReview(id, orderID, authorID, subjectID, rating, comment)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the review was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID { return r.id }

// OrderID returns the completed order the review is scoped to.
func (r *Review) OrderID() kernel.UUID { return r.orderID }

// AuthorID returns who wrote the review.
func (r *Review) AuthorID() kernel.UUID { return r.authorID }

// SubjectID returns who the review is about.
func (r *Review) SubjectID() kernel.UUID { return r.subjectID }

// Rating returns the rating on the 1..5 scale.
func (r *Review) Rating() int { return r.rating }

// Comment returns the free-text comment.
func (r *Review) Comment() string { return r.comment }

// CreatedAt returns when the review was written.
func (r *Review) CreatedAt() time.Time { return r.createdAt }

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Review) setAuthorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.authorID = id
	return nil
}

func (r *Review) setSubjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if id.IsEqual(r.authorID) {
		return errs.NewValueIsInvalidErrorWithCause("subject",
			errors.New("author cannot review themselves"))
	}
	r.subjectID = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			fmt.Errorf("%d is not within %d..%d", rating, MinRating, MaxRating))
	}
	r.rating = rating
	return nil
}

func (r *Review) setComment(comment string) error {
	if len(comment) > MaxCommentLength {
		return errs.NewValueIsInvalidErrorWithCause("comment",
			fmt.Errorf("length %d exceeds %d", len(comment), MaxCommentLength))
	}
	r.comment = comment
	return nil
}
