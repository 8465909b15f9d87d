package ports

import (
	"context"

	"foodorder/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for settlement output:
// the immutable entries and the report totals they roll up into.
type LedgerRepository interface {
	// AddEntry persists a new ledger entry.
	AddEntry(ctx context.Context, entry *ledger.Entry) error

	// ApplyToReport folds an entry into its owner's report totals,
	// creating the report row on first use. The increment happens in a
	// single statement so concurrent settlements never lose updates.
	ApplyToReport(ctx context.Context, entry *ledger.Entry) error
}
