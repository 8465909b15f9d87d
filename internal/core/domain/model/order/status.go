package order

import "foodorder/internal/pkg/errs"

// Status represents the customer-facing lifecycle state of an order.
// It implements a state machine with defined transitions so that orders only
// ever advance forward through the workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Completed
//	   │
//	   └──> (deleted by the customer, Pending only)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a customer places an order.
	// Pending orders may still be deleted by the owning customer.
	Pending

	// Confirmed indicates the customer has committed to the order.
	// Confirmed orders enter the merchant workflow and can no longer
	// be deleted.
	Confirmed

	// Completed indicates the customer confirmed receipt.
	// This is a final state; settlement has run exactly once.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Confirmed:     "Confirmed",
		Completed:     "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Confirmed and Completed.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other source state returns an InvalidStateError and the value is
// left unchanged.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("confirm", s.String())
	}
	return Confirmed, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Confirmed -> Completed (receipt confirmed, settlement runs)
//
// Completing an already-completed order fails, which is what guarantees
// settlement can never run twice for the same order.
func (s Status) Complete() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateError("complete", s.String())
	}
	return Completed, nil
}

// ValidateDelete checks whether an order in this status may be deleted.
// Only Pending orders are deletable; Confirmed and terminal orders return
// a ForbiddenError per the lifecycle rules.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewForbiddenError("customer", "delete a "+s.String()+" order")
	}
	return nil
}
