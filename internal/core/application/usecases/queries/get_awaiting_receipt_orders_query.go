package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetAwaitingReceiptOrdersQueryIsNotConstructed = errors.New(
	"GetAwaitingReceiptOrdersQuery must be created via NewGetAwaitingReceiptOrdersQuery constructor",
)

// GetAwaitingReceiptOrdersQuery retrieves delivered orders whose customer has
// not confirmed receipt yet. The receipt reminder job feeds on this.
type GetAwaitingReceiptOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAwaitingReceiptOrdersQuery creates a query for delivered, unconfirmed
// orders. This is a parameterless query.
func NewGetAwaitingReceiptOrdersQuery() GetAwaitingReceiptOrdersQuery {
	return GetAwaitingReceiptOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAwaitingReceiptOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingReceiptOrdersQueryIsNotConstructed)
}

// GetAwaitingReceiptOrdersQueryResponse represents one delivered order still
// waiting for the customer's confirmation.
type GetAwaitingReceiptOrdersQueryResponse struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	ItemName   string
}
