package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
)

// GetReportsByTypeQueryHandler reads every report row for one role.
type GetReportsByTypeQueryHandler struct {
	db *gorm.DB
}

// NewGetReportsByTypeQueryHandler creates a handler for per-role report
// listings.
func NewGetReportsByTypeQueryHandler(db *gorm.DB) GetReportsByTypeQueryHandler {
	return GetReportsByTypeQueryHandler{db: db}
}

// Handle executes the query. Biggest earners come first.
func (h GetReportsByTypeQueryHandler) Handle(
	ctx context.Context,
	query GetReportsByTypeQuery,
) ([]GetReportsByTypeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetReportsByTypeQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			total_received,
			total_due,
			total_orders
		FROM reports
		WHERE report_type = ?
		ORDER BY total_received DESC
	`, query.ReportType().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID        uuid.UUID
			totalReceived decimal.Decimal
			totalDue      decimal.Decimal
			totalOrders   int
		)

		if err = rows.Scan(&userID, &totalReceived, &totalDue, &totalOrders); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetReportsByTypeQueryResponse{
			UserID:        id,
			TotalReceived: totalReceived.StringFixed(2),
			TotalDue:      totalDue.StringFixed(2),
			TotalOrders:   totalOrders,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
