package ledger

import "foodorder/internal/pkg/errs"

// EntryType classifies a ledger entry by the role of the party it credits
// or charges.
type EntryType struct {
	value string
}

var (
	EntryTypeUnknown = EntryType{}

	// EntryTypeMerchantIncome credits a merchant with their share of an
	// order's price.
	EntryTypeMerchantIncome = EntryType{value: "merchant_income"}

	// EntryTypeCourierIncome credits a courier with their share of an
	// order's price.
	EntryTypeCourierIncome = EntryType{value: "courier_income"}

	// EntryTypeCustomerDue charges a customer the full order price.
	EntryTypeCustomerDue = EntryType{value: "customer_due"}
)

// EntryTypeFromString parses a persisted entry type value.
func EntryTypeFromString(value string) (EntryType, error) {
	switch value {
	case EntryTypeMerchantIncome.value:
		return EntryTypeMerchantIncome, nil
	case EntryTypeCourierIncome.value:
		return EntryTypeCourierIncome, nil
	case EntryTypeCustomerDue.value:
		return EntryTypeCustomerDue, nil
	default:
		return EntryTypeUnknown, errs.NewValueIsInvalidError("entryType")
	}
}

// Validate ensures the entry type holds one of the known values.
func (t EntryType) Validate() error {
	if t == EntryTypeUnknown {
		return errs.NewValueIsRequiredError("entryType")
	}
	return nil
}

// IsIncome reports whether the entry credits money to its party.
func (t EntryType) IsIncome() bool {
	return t == EntryTypeMerchantIncome || t == EntryTypeCourierIncome
}

func (t EntryType) String() string {
	return t.value
}
