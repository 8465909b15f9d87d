package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
)

// GetReviewsQueryHandler reads received reviews from the database.
type GetReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewsQueryHandler creates a handler for review queries.
func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

// Handle executes the query. Reviews come back newest first.
func (h GetReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetReviewsQuery,
) ([]GetReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.author_id,
			u.name,
			r.rating,
			r.comment,
			r.created_at
		FROM reviews r
		LEFT JOIN users u ON u.id = r.author_id
		WHERE r.subject_id = ?
		ORDER BY r.created_at DESC
	`, query.SubjectID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			orderID    uuid.UUID
			authorID   uuid.UUID
			authorName sql.NullString
			rating     int
			comment    string
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &orderID, &authorID, &authorName, &rating, &comment, &createdAt); err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		reviewOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		reviewAuthorID, idErr := kernel.UUIDFromBytes(authorID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetReviewsQueryResponse{
			ID:         reviewID,
			OrderID:    reviewOrderID,
			AuthorID:   reviewAuthorID,
			AuthorName: authorName.String,
			Rating:     rating,
			Comment:    comment,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
