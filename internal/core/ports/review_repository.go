package ports

import (
	"context"

	"foodorder/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
// Reviews are append-only; there is no update or delete.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *review.Review) error
}
