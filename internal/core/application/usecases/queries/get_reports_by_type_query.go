package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/ledger"
	"foodorder/internal/pkg/guard"
)

var ErrGetReportsByTypeQueryIsNotConstructed = errors.New(
	"GetReportsByTypeQuery must be created via NewGetReportsByTypeQuery constructor",
)

// GetReportsByTypeQuery retrieves every user's running totals for one role.
type GetReportsByTypeQuery struct {
	reportType ledger.ReportType

	guard guard.ConstructorGuard
}

// NewGetReportsByTypeQuery creates a query for all reports of one type.
func NewGetReportsByTypeQuery(reportType ledger.ReportType) (GetReportsByTypeQuery, error) {
	if err := reportType.Validate(); err != nil {
		return GetReportsByTypeQuery{}, err
	}

	return GetReportsByTypeQuery{
		reportType: reportType,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportsByTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetReportsByTypeQueryIsNotConstructed)
}

// ReportType returns the requested role.
func (q GetReportsByTypeQuery) ReportType() ledger.ReportType {
	return q.reportType
}

// GetReportsByTypeQueryResponse represents one user's totals in the
// requested role.
type GetReportsByTypeQueryResponse struct {
	UserID        kernel.UUID
	TotalReceived string
	TotalDue      string
	TotalOrders   int
}
