package order

import "foodorder/internal/pkg/errs"

// Acceptance represents the merchant's decision on a confirmed order.
//
//	Undecided ──┬──> Accepted
//	            └──> Rejected
//
// Both outcomes are final: a second decision on the same order returns an
// InvalidStateError, so a decision can never be flipped or repeated.
type Acceptance int

const (
	// AcceptanceUnknown catches uninitialized Acceptance values.
	AcceptanceUnknown Acceptance = iota

	// Undecided is the initial state while the merchant has not acted.
	Undecided

	// Accepted means the merchant took the order; it may be dispatched.
	Accepted

	// Rejected is a terminal failure exit from the happy path.
	// Rejected orders are never dispatched and never settle.
	Rejected
)

func getAcceptanceStrings() map[Acceptance]string {
	return map[Acceptance]string{
		AcceptanceUnknown: "Unknown",
		Undecided:         "Undecided",
		Accepted:          "Accepted",
		Rejected:          "Rejected",
	}
}

// Validate checks if the Acceptance value is valid.
func (a Acceptance) Validate() error {
	switch a {
	case Undecided, Accepted, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidError("acceptance")
	}
}

// String returns the human-readable name of the acceptance state.
func (a Acceptance) String() string {
	if str, ok := getAcceptanceStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// Decide resolves the merchant decision.
// Only an Undecided order can be decided; deciding twice fails.
func (a Acceptance) Decide(accept bool) (Acceptance, error) {
	if a != Undecided {
		return 0, errs.NewInvalidStateError("decide", a.String())
	}
	if accept {
		return Accepted, nil
	}
	return Rejected, nil
}
