package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via NewGetReviewsQuery constructor",
)

// GetReviewsQuery retrieves the reviews written about one user, newest first.
type GetReviewsQuery struct {
	subjectID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewsQuery creates a query for a user's received reviews.
func NewGetReviewsQuery(subjectID kernel.UUID) (GetReviewsQuery, error) {
	if err := subjectID.Validate(); err != nil {
		return GetReviewsQuery{}, err
	}

	return GetReviewsQuery{
		subjectID: subjectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

// SubjectID returns the reviewed user.
func (q GetReviewsQuery) SubjectID() kernel.UUID {
	return q.subjectID
}

// GetReviewsQueryResponse represents one received review. AuthorName is
// resolved from the users read model and falls back to empty when the
// author is unknown there.
type GetReviewsQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	AuthorID   kernel.UUID
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
