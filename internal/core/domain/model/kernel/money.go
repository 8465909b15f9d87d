package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for exact monetary amounts. It wraps
// github.com/shopspring/decimal so prices snapshotted on orders and amounts
// credited by settlement never suffer binary floating point drift.
//
// Money is immutable: arithmetic methods return new values. Amounts are kept
// at two decimal places, the precision of the ledger.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("100.00")
//	if err != nil {
//	    // handle error
//	}
//	merchantCut := price.Share(decimal.NewFromFloat(0.8)) // 80.00
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromString parses a decimal string such as "100.00" into Money.
// Negative amounts are rejected: nothing in the ledger is ever negative.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal creates Money from a decimal value, rounded to two
// decimal places. Negative amounts are rejected.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", d.String()))
	}
	return Money{amount: d.Round(2)}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Share returns the given fraction of the amount, rounded to two decimal
// places. Used by settlement to split an order price between parties.
func (m Money) Share(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(2)}
}

// Decimal returns the underlying decimal value for the persistence layer.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with two decimal places, e.g. "80.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
