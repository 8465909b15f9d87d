package ledger

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ReportType names the per-role running totals a ledger entry rolls up into.
type ReportType struct {
	value string
}

var (
	ReportTypeUnknown = ReportType{}

	ReportTypeMerchant = ReportType{value: "merchant"}
	ReportTypeCourier  = ReportType{value: "courier"}
	ReportTypeCustomer = ReportType{value: "customer"}
)

// ReportTypeFromString parses a persisted report type value.
func ReportTypeFromString(value string) (ReportType, error) {
	switch value {
	case ReportTypeMerchant.value:
		return ReportTypeMerchant, nil
	case ReportTypeCourier.value:
		return ReportTypeCourier, nil
	case ReportTypeCustomer.value:
		return ReportTypeCustomer, nil
	default:
		return ReportTypeUnknown, errs.NewValueIsInvalidError("reportType")
	}
}

// ReportTypeForEntry maps an entry classification to the report it feeds.
func ReportTypeForEntry(entryType EntryType) (ReportType, error) {
	switch entryType {
	case EntryTypeMerchantIncome:
		return ReportTypeMerchant, nil
	case EntryTypeCourierIncome:
		return ReportTypeCourier, nil
	case EntryTypeCustomerDue:
		return ReportTypeCustomer, nil
	default:
		return ReportTypeUnknown, errs.NewValueIsInvalidError("entryType")
	}
}

// Validate ensures the report type holds one of the known values.
func (t ReportType) Validate() error {
	if t == ReportTypeUnknown {
		return errs.NewValueIsRequiredError("reportType")
	}
	return nil
}

func (t ReportType) String() string {
	return t.value
}

// Report is the running settlement totals for one user in one role. A user
// acting as both customer and merchant holds one report per role.
type Report struct {
	userID        kernel.UUID
	reportType    ReportType
	totalReceived kernel.Money
	totalDue      kernel.Money
	totalOrders   int
}

// NewReport creates an empty report for a user in the given role.
func NewReport(userID kernel.UUID, reportType ReportType) (*Report, error) {
	if err := errors.Join(userID.Validate(), reportType.Validate()); err != nil {
		return nil, err
	}
	return &Report{
		userID:        userID,
		reportType:    reportType,
		totalReceived: kernel.ZeroMoney(),
		totalDue:      kernel.ZeroMoney(),
	}, nil
}

// RestoreReport reconstructs a report from persisted totals.
func RestoreReport(userID kernel.UUID, reportType ReportType,
	totalReceived, totalDue kernel.Money, totalOrders int) (*Report, error) {
	r, err := NewReport(userID, reportType)
	if err != nil {
		return nil, err
	}
	if totalOrders < 0 {
		return nil, errs.NewValueIsInvalidError("totalOrders")
	}
	r.totalReceived = totalReceived
	r.totalDue = totalDue
	r.totalOrders = totalOrders
	return r, nil
}

// Apply rolls a settlement entry into the report's totals. Income entries
// grow totalReceived, due entries grow totalDue. Every applied entry counts
// one settled order for the role.
func (r *Report) Apply(entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	expected, err := ReportTypeForEntry(entry.Type())
	if err != nil {
		return err
	}
	if expected != r.reportType {
		return errs.NewValueIsInvalidError("entryType")
	}
	if !entry.UserID().IsEqual(r.userID) {
		return errs.NewValueIsInvalidError("userID")
	}

	if entry.Type().IsIncome() {
		r.totalReceived = r.totalReceived.Add(entry.Amount())
	} else {
		r.totalDue = r.totalDue.Add(entry.Amount())
	}
	r.totalOrders++
	return nil
}

// UserID returns the report owner.
func (r *Report) UserID() kernel.UUID { return r.userID }

// Type returns the role the report covers.
func (r *Report) Type() ReportType { return r.reportType }

// TotalReceived returns the accumulated income for the role.
func (r *Report) TotalReceived() kernel.Money { return r.totalReceived }

// TotalDue returns the accumulated amount owed for the role.
func (r *Report) TotalDue() kernel.Money { return r.totalDue }

// TotalOrders returns how many settled orders the report covers.
func (r *Report) TotalOrders() int { return r.totalOrders }
