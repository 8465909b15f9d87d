package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetMerchantBoardQueryIsNotConstructed = errors.New(
	"GetMerchantBoardQuery must be created via NewGetMerchantBoardQuery constructor",
)

// GetMerchantBoardQuery retrieves the merchant's work board: every confirmed
// order addressed to them that is not yet completed. The board is a
// projection over the orders table; there is no separate merchant-side copy
// of an order.
type GetMerchantBoardQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMerchantBoardQuery creates a query for a merchant's board.
func NewGetMerchantBoardQuery(merchantID kernel.UUID) (GetMerchantBoardQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetMerchantBoardQuery{}, err
	}

	return GetMerchantBoardQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantBoardQueryIsNotConstructed)
}

// MerchantID returns the merchant whose board is projected.
func (q GetMerchantBoardQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// GetMerchantBoardQueryResponse represents one order on the merchant board.
type GetMerchantBoardQueryResponse struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	ItemName   string
	Price      string
	Acceptance string
	Progress   string
	CreatedAt  time.Time
}
