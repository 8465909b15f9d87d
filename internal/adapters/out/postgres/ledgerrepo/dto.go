// Package ledgerrepo persists settlement output: append-only ledger entries
// and the per-role report totals they roll up into. Report increments happen
// in a single upsert statement so concurrent settlements never lose updates.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/ledger"
)

// EntryDTO represents the database structure for ledger entries.
type EntryDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;index"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2)"`
	EntryType string          `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// ReportDTO represents the running totals row for one user in one role.
// The primary key is (user_id, report_type): a user acting in two roles has
// two independent rows.
type ReportDTO struct {
	UserID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReportType    string          `gorm:"type:varchar(16);primaryKey"`
	TotalReceived decimal.Decimal `gorm:"type:decimal(14,2)"`
	TotalDue      decimal.Decimal `gorm:"type:decimal(14,2)"`
	TotalOrders   int
}

// TableName specifies the database table name for reports.
func (ReportDTO) TableName() string {
	return "reports"
}

func entryFromDomain(entry *ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:        entry.ID().Bytes(),
		UserID:    entry.UserID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		Amount:    entry.Amount().Decimal(),
		EntryType: entry.Type().String(),
		CreatedAt: entry.CreatedAt(),
	}
}
