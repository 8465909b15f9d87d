package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root and the single source of truth for one customer
// purchase. It owns every status facet of the lifecycle; the merchant board
// and the delivery pool are projections derived from it, never independently
// mutated copies.
//
// Order follows these invariants:
//   - Item name and price are snapshotted at creation and never change,
//     so later catalog edits do not rewrite history.
//   - There is exactly one customer and one merchant, and at most one courier.
//   - The courier is bound by a claim and never cleared afterwards.
//   - Every status facet only moves forward through its transition table.
//   - Can only be created through NewOrder or RestoreOrder.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	merchantID kernel.UUID
	itemID     kernel.UUID

	// itemName and price are the catalog snapshot taken at placement.
	itemName string
	price    kernel.Money

	// courierID is the claiming courier (nil until a claim succeeds).
	courierID *kernel.UUID

	status     Status
	acceptance Acceptance
	progress   DeliveryProgress

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a Pending order for a customer against a catalog item,
// snapshotting the item's name and price. This is the only entry point into
// the lifecycle.
//
// Returns a validation error if any identifier is invalid, the item name is
// empty, or the price is not positive.
func NewOrder(id, customerID, merchantID, itemID kernel.UUID, itemName string, price kernel.Money) (*Order, error) {
	o := &Order{
		status:        Pending,
		acceptance:    Undecided,
		progress:      NotStarted,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setItemID(itemID),
		o.setItemName(itemName),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation transition. It validates the stored state for internal consistency:
// a courier may be present only in progress states that imply one, and those
// states require a courier.
func RestoreOrder(
	id, customerID, merchantID, itemID kernel.UUID,
	itemName string,
	price kernel.Money,
	status Status,
	acceptance Acceptance,
	progress DeliveryProgress,
	courierID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setItemID(itemID),
		o.setItemName(itemName),
		o.setPrice(price),
		status.Validate(),
		acceptance.Validate(),
		progress.Validate(),
	); err != nil {
		return nil, err
	}

	if progress.RequiresCourier() != (courierID != nil) {
		return nil, errs.NewValueIsInvalidError("courier does not match delivery progress " + progress.String())
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.acceptance = acceptance
	o.progress = progress
	o.courierID = courierID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MerchantID returns the merchant the order was placed with.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// ItemID returns the catalog item the order was placed against.
func (o *Order) ItemID() kernel.UUID {
	return o.itemID
}

// ItemName returns the item name snapshotted at placement.
func (o *Order) ItemName() string {
	return o.itemName
}

// Price returns the price snapshotted at placement.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Courier returns the claiming courier's ID, or nil before a claim.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Status returns the customer-facing lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Acceptance returns the merchant decision state.
func (o *Order) Acceptance() Acceptance {
	return o.acceptance
}

// Progress returns the delivery progress state.
func (o *Order) Progress() DeliveryProgress {
	return o.progress
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EnsureOwnedBy verifies the acting customer owns this order.
// Returns a ForbiddenError naming the action otherwise.
func (o *Order) EnsureOwnedBy(customerID kernel.UUID, action string) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewForbiddenErrorWithCause(customerID.String(), action,
			errors.New("order belongs to another customer"))
	}
	return nil
}

// EnsureMerchant verifies the acting merchant is the order's merchant.
func (o *Order) EnsureMerchant(merchantID kernel.UUID, action string) error {
	if !o.merchantID.IsEqual(merchantID) {
		return errs.NewForbiddenErrorWithCause(merchantID.String(), action,
			errors.New("order belongs to another merchant"))
	}
	return nil
}

// EnsureDeletable verifies the order may still be deleted: only while
// Pending. Deleting a Confirmed or Completed order is forbidden.
func (o *Order) EnsureDeletable() error {
	return o.status.ValidateDelete()
}

// Confirm commits the customer to the order: Pending -> Confirmed.
// From here the order is visible on the merchant board.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Decide records the merchant's accept/reject decision.
// The order must be Confirmed and still Undecided; a repeated decision
// returns an InvalidStateError and changes nothing.
func (o *Order) Decide(accept bool) error {
	if o.status != Confirmed {
		return errs.NewInvalidStateError("decide", o.status.String())
	}

	newAcceptance, err := o.acceptance.Decide(accept)
	if err != nil {
		return err
	}

	o.acceptance = newAcceptance
	return nil
}

// Dispatch marks an accepted order ready for the delivery pool:
// delivery progress NotStarted -> Notified. Rejected or undecided orders
// cannot be dispatched.
func (o *Order) Dispatch() error {
	if o.acceptance != Accepted {
		return errs.NewInvalidStateError("dispatch", o.acceptance.String())
	}

	newProgress, err := o.progress.Notify()
	if err != nil {
		return err
	}

	o.progress = newProgress
	return nil
}

// BindCourier binds the claiming courier: Notified -> Claimed.
// A second bind attempt returns a ConflictError and never overwrites the
// existing courier. The atomic first-writer-wins guarantee lives in the
// assignment repository; this guard keeps the aggregate honest even in
// memory.
func (o *Order) BindCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("orderId", o.id.String(),
			errors.New("a courier is already bound"))
	}

	newProgress, err := o.progress.Claim()
	if err != nil {
		return err
	}

	o.progress = newProgress
	o.courierID = &courierID
	return nil
}

// AdvanceDelivery moves the delivery one step forward on behalf of the
// claiming courier. Only the courier bound by the claim may advance.
func (o *Order) AdvanceDelivery(courierID kernel.UUID, to DeliveryProgress) error {
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewForbiddenErrorWithCause(courierID.String(), "advance delivery",
			errors.New("delivery is claimed by another courier"))
	}

	newProgress, err := o.progress.Advance(to)
	if err != nil {
		return err
	}

	o.progress = newProgress
	return nil
}

// Complete records the customer's receipt confirmation:
// Confirmed -> Completed. When a courier is involved the delivery must have
// reached Delivered; an accepted order that was never dispatched (merchant
// hand-off) may complete directly. Completing twice fails, which is what
// makes settlement run exactly once per order.
func (o *Order) Complete() error {
	if o.acceptance != Accepted {
		return errs.NewInvalidStateError("complete", o.acceptance.String())
	}
	if o.progress != NotStarted && o.progress != Delivered {
		return errs.NewInvalidStateError("complete", o.progress.String())
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.merchantID = id
	return nil
}

func (o *Order) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.itemID = id
	return nil
}

func (o *Order) setItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	o.itemName = name
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price must be greater than 0")
	}
	o.price = price
	return nil
}
