package ledgerrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodorder/internal/core/domain/model/ledger"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// AddEntry saves a new ledger entry to the database.
func (r *GormLedgerRepository) AddEntry(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ApplyToReport folds the entry into its owner's report row. The first entry
// for a (user, role) pair inserts the row; later entries hit the conflict
// branch and increment the existing totals in place.
func (r *GormLedgerRepository) ApplyToReport(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	reportType, err := ledger.ReportTypeForEntry(entry.Type())
	if err != nil {
		return err
	}

	received := decimal.Zero
	due := decimal.Zero
	if entry.Type().IsIncome() {
		received = entry.Amount().Decimal()
	} else {
		due = entry.Amount().Decimal()
	}

	dto := ReportDTO{
		UserID:        entry.UserID().Bytes(),
		ReportType:    reportType.String(),
		TotalReceived: received,
		TotalDue:      due,
		TotalOrders:   1,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "report_type"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_received": gorm.Expr("total_received + ?", received),
			"total_due":      gorm.Expr("total_due + ?", due),
			"total_orders":   gorm.Expr("total_orders + 1"),
		}),
	}).Create(&dto).Error
}
