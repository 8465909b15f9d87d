package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/ledger"
	"foodorder/internal/pkg/guard"
)

var ErrGetReportQueryIsNotConstructed = errors.New(
	"GetReportQuery must be created via NewGetReportQuery constructor",
)

// GetReportQuery retrieves a user's settlement totals for one role.
type GetReportQuery struct {
	userID     kernel.UUID
	reportType ledger.ReportType

	guard guard.ConstructorGuard
}

// NewGetReportQuery creates a query for one report row.
func NewGetReportQuery(userID kernel.UUID, reportType ledger.ReportType) (GetReportQuery, error) {
	if err := errors.Join(userID.Validate(), reportType.Validate()); err != nil {
		return GetReportQuery{}, err
	}

	return GetReportQuery{
		userID:     userID,
		reportType: reportType,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

// UserID returns the report owner.
func (q GetReportQuery) UserID() kernel.UUID {
	return q.userID
}

// ReportType returns the requested role.
func (q GetReportQuery) ReportType() ledger.ReportType {
	return q.reportType
}

// GetReportQueryResponse represents the settlement totals for one user in
// one role. A user with no settled orders gets all-zero totals.
type GetReportQueryResponse struct {
	UserID        kernel.UUID
	ReportType    string
	TotalReceived string
	TotalDue      string
	TotalOrders   int
}
