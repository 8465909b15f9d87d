package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetReportQueryHandler reads one report row from the database.
type GetReportQueryHandler struct {
	db *gorm.DB
}

// NewGetReportQueryHandler creates a handler for report queries.
func NewGetReportQueryHandler(db *gorm.DB) GetReportQueryHandler {
	return GetReportQueryHandler{db: db}
}

// Handle executes the query. A user the ledger has never seen in the
// requested role gets zero totals rather than a not-found error.
func (h GetReportQueryHandler) Handle(
	ctx context.Context,
	query GetReportQuery,
) (GetReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReportQueryResponse{}, err
	}

	response := GetReportQueryResponse{
		UserID:        query.UserID(),
		ReportType:    query.ReportType().String(),
		TotalReceived: decimal.Zero.StringFixed(2),
		TotalDue:      decimal.Zero.StringFixed(2),
	}

	var (
		totalReceived decimal.Decimal
		totalDue      decimal.Decimal
		totalOrders   int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			total_received,
			total_due,
			total_orders
		FROM reports
		WHERE user_id = ? AND report_type = ?
	`, query.UserID().Bytes(), query.ReportType().String()).Row()

	err := row.Scan(&totalReceived, &totalDue, &totalOrders)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetReportQueryResponse{}, err
	}

	response.TotalReceived = totalReceived.StringFixed(2)
	response.TotalDue = totalDue.StringFixed(2)
	response.TotalOrders = totalOrders
	return response, nil
}
