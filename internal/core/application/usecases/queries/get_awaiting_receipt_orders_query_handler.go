package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// GetAwaitingReceiptOrdersQueryHandler reads delivered orders that are not
// completed yet.
type GetAwaitingReceiptOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAwaitingReceiptOrdersQueryHandler creates a handler for the
// awaiting-receipt feed.
func NewGetAwaitingReceiptOrdersQueryHandler(db *gorm.DB) GetAwaitingReceiptOrdersQueryHandler {
	return GetAwaitingReceiptOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAwaitingReceiptOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingReceiptOrdersQuery,
) ([]GetAwaitingReceiptOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetAwaitingReceiptOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			item_name
		FROM orders
		WHERE progress = ? AND status <> ?
		ORDER BY created_at
	`, int(order.Delivered), int(order.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			itemName   string
		)

		if err = rows.Scan(&id, &customerID, &itemName); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customer, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetAwaitingReceiptOrdersQueryResponse{
			OrderID:    orderID,
			CustomerID: customer,
			ItemName:   itemName,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
