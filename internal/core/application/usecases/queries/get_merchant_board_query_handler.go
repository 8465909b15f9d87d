package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// GetMerchantBoardQueryHandler projects the merchant board from the orders
// table. Pending orders stay invisible until the customer confirms.
type GetMerchantBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantBoardQueryHandler creates a handler for merchant board queries.
func NewGetMerchantBoardQueryHandler(db *gorm.DB) GetMerchantBoardQueryHandler {
	return GetMerchantBoardQueryHandler{db: db}
}

// Handle executes the query. Undecided orders come first, oldest on top, so
// the merchant works the queue in arrival order.
func (h GetMerchantBoardQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantBoardQuery,
) ([]GetMerchantBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetMerchantBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			item_name,
			price,
			acceptance,
			progress,
			created_at
		FROM orders
		WHERE merchant_id = ? AND status = ?
		ORDER BY acceptance, created_at
	`, query.MerchantID().Bytes(), int(order.Confirmed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			itemName   string
			price      decimal.Decimal
			acceptance int
			progress   int
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &customerID, &itemName, &price, &acceptance, &progress, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetMerchantBoardQueryResponse{
			OrderID:    orderID,
			CustomerID: custID,
			ItemName:   itemName,
			Price:      price.StringFixed(2),
			Acceptance: order.Acceptance(acceptance).String(),
			Progress:   order.DeliveryProgress(progress).String(),
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
