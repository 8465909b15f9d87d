// Package reviewrepo persists reviews. The table is append-only.
package reviewrepo

import (
	"time"

	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/review"
)

// ReviewDTO represents the database structure for reviews.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid"`
	SubjectID uuid.UUID `gorm:"type:uuid;index"`
	Rating    int
	Comment   string `gorm:"type:varchar(500)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for reviews.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		AuthorID:  aggregate.AuthorID().Bytes(),
		SubjectID: aggregate.SubjectID().Bytes(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}
