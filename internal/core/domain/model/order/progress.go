package order

import "foodorder/internal/pkg/errs"

// DeliveryProgress represents how far an accepted order has moved through
// the delivery workflow.
//
//	NotStarted ──> Notified ──> Claimed ──> PickingUp ──> Delivered
//
// Notified means the merchant dispatched the order to the delivery pool;
// Claimed means one courier has bound themselves to it. Every step is
// forward-only.
type DeliveryProgress int

const (
	// ProgressUnknown catches uninitialized DeliveryProgress values.
	ProgressUnknown DeliveryProgress = iota

	// NotStarted is the initial state before the merchant dispatches.
	NotStarted

	// Notified means the order sits in the delivery pool, unclaimed.
	Notified

	// Claimed means exactly one courier holds the delivery assignment.
	Claimed

	// PickingUp means the courier is collecting the order from the merchant.
	PickingUp

	// Delivered means the courier handed the order to the customer.
	Delivered
)

func getProgressStrings() map[DeliveryProgress]string {
	return map[DeliveryProgress]string{
		ProgressUnknown: "Unknown",
		NotStarted:      "NotStarted",
		Notified:        "Notified",
		Claimed:         "Claimed",
		PickingUp:       "PickingUp",
		Delivered:       "Delivered",
	}
}

// Validate checks if the DeliveryProgress value is valid.
func (p DeliveryProgress) Validate() error {
	switch p {
	case NotStarted, Notified, Claimed, PickingUp, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidError("delivery progress")
	}
}

// String returns the human-readable name of the progress state.
func (p DeliveryProgress) String() string {
	if str, ok := getProgressStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Notify transitions NotStarted -> Notified when the merchant dispatches.
func (p DeliveryProgress) Notify() (DeliveryProgress, error) {
	if p != NotStarted {
		return 0, errs.NewInvalidStateError("dispatch", p.String())
	}
	return Notified, nil
}

// Claim transitions Notified -> Claimed when a courier takes the assignment.
func (p DeliveryProgress) Claim() (DeliveryProgress, error) {
	if p != Notified {
		return 0, errs.NewInvalidStateError("claim", p.String())
	}
	return Claimed, nil
}

// Advance moves the claimed delivery one step forward.
//
// Valid transitions:
//   - Claimed -> PickingUp
//   - PickingUp -> Delivered
//
// Anything else returns an InvalidStateError and the value is unchanged.
func (p DeliveryProgress) Advance(to DeliveryProgress) (DeliveryProgress, error) {
	switch {
	case p == Claimed && to == PickingUp:
		return PickingUp, nil
	case p == PickingUp && to == Delivered:
		return Delivered, nil
	default:
		return 0, errs.NewInvalidStateError("advance to "+to.String(), p.String())
	}
}

// RequiresCourier reports whether this progress state implies a courier
// is bound to the order. Used to validate restored aggregates.
func (p DeliveryProgress) RequiresCourier() bool {
	return p == Claimed || p == PickingUp || p == Delivered
}
