package services

import (
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/ledger"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

var (
	merchantShareRate = decimal.NewFromFloat(0.8)
	courierShareRate  = decimal.NewFromFloat(0.2)
)

// Settlement is a domain service that turns a completed order into ledger
// entries for every party involved.
//
// Business rules:
//   - The merchant is credited 80% of the order price.
//   - The courier, when one delivered the order, is credited 20%.
//   - The customer owes the full order price regardless of the split.
//
// Settlement runs exactly once per order because only the transition into
// the completed status triggers it, and an order completes only once.
type Settlement struct{}

// NewSettlement creates a new Settlement instance.
func NewSettlement() Settlement {
	return Settlement{}
}

// Settle produces the ledger entries for a just-completed order. The order
// must already be in the completed status; callers complete the order first
// and settle inside the same transaction.
func (s Settlement) Settle(o *order.Order) ([]*ledger.Entry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Completed {
		return nil, errs.NewInvalidStateError("settle", o.Status().String())
	}

	entries := make([]*ledger.Entry, 0, 3)

	merchantEntry, err := ledger.NewEntry(kernel.NewUUID(), o.MerchantID(), o.ID(),
		o.Price().Share(merchantShareRate), ledger.EntryTypeMerchantIncome)
	if err != nil {
		return nil, err
	}
	entries = append(entries, merchantEntry)

	if courierID := o.Courier(); courierID != nil {
		courierEntry, err := ledger.NewEntry(kernel.NewUUID(), *courierID, o.ID(),
			o.Price().Share(courierShareRate), ledger.EntryTypeCourierIncome)
		if err != nil {
			return nil, err
		}
		entries = append(entries, courierEntry)
	}

	customerEntry, err := ledger.NewEntry(kernel.NewUUID(), o.CustomerID(), o.ID(),
		o.Price(), ledger.EntryTypeCustomerDue)
	if err != nil {
		return nil, err
	}
	entries = append(entries, customerEntry)

	return entries, nil
}
