package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
)

// GetClaimableOrdersQueryHandler reads the courier feed: unclaimed
// assignments joined with their orders, oldest dispatch first.
type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler for the claimable feed.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]GetClaimableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetClaimableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.order_id,
			o.merchant_id,
			o.item_name,
			o.price,
			a.created_at
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.courier_id IS NULL
		ORDER BY a.created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID      uuid.UUID
			merchantID   uuid.UUID
			itemName     string
			price        decimal.Decimal
			dispatchedAt time.Time
		)

		if err = rows.Scan(&orderID, &merchantID, &itemName, &price, &dispatchedAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		merchant, idErr := kernel.UUIDFromBytes(merchantID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetClaimableOrdersQueryResponse{
			OrderID:      id,
			MerchantID:   merchant,
			ItemName:     itemName,
			Price:        price.StringFixed(2),
			DispatchedAt: dispatchedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
