// Package assignment contains the DeliveryAssignment aggregate: the
// delivery-pool view of one dispatched order. An assignment is created
// unclaimed when the merchant dispatches and is claimable exactly once;
// the first courier to claim it wins and every later attempt conflicts.
package assignment

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when a DeliveryAssignment was not
// created through NewDeliveryAssignment or RestoreDeliveryAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"DeliveryAssignment must be created via NewDeliveryAssignment or RestoreDeliveryAssignment")

// DeliveryAssignment represents one order offered to the delivery pool.
// It carries claim state only: who took it and when. Every other lifecycle
// fact stays on the order, so nothing here can drift out of sync with it.
//
// Invariants:
//   - Bound to exactly one order for its whole life.
//   - courierID is nil while listed as available, set once by Claim, and
//     never cleared or overwritten.
type DeliveryAssignment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	courierID *kernel.UUID
	claimedAt *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewDeliveryAssignment creates an unclaimed assignment for a dispatched
// order.
func NewDeliveryAssignment(id, orderID kernel.UUID) (*DeliveryAssignment, error) {
	a := &DeliveryAssignment{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreDeliveryAssignment reconstructs an assignment from persistence.
// A claim time without a courier (or the reverse) is inconsistent and
// rejected.
func RestoreDeliveryAssignment(
	id, orderID kernel.UUID,
	courierID *kernel.UUID,
	claimedAt *time.Time,
	createdAt time.Time,
) (*DeliveryAssignment, error) {
	a := &DeliveryAssignment{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	if (courierID != nil) != (claimedAt != nil) {
		return nil, errs.NewValueIsInvalidError("claim state is inconsistent")
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	a.courierID = courierID
	a.claimedAt = claimedAt
	return a, nil
}

// Validate ensures the assignment was properly constructed.
func (a *DeliveryAssignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *DeliveryAssignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order this assignment offers.
func (a *DeliveryAssignment) OrderID() kernel.UUID {
	return a.orderID
}

// Courier returns the claiming courier's ID, or nil while unclaimed.
func (a *DeliveryAssignment) Courier() *kernel.UUID {
	return a.courierID
}

// ClaimedAt returns when the assignment was claimed, or nil while unclaimed.
func (a *DeliveryAssignment) ClaimedAt() *time.Time {
	return a.claimedAt
}

// CreatedAt returns when the merchant dispatched the order.
func (a *DeliveryAssignment) CreatedAt() time.Time {
	return a.createdAt
}

// IsClaimed reports whether a courier holds this assignment.
func (a *DeliveryAssignment) IsClaimed() bool {
	return a.courierID != nil
}

// Claim binds the courier to the assignment. First claimer wins: a claim on
// an already-claimed assignment returns a ConflictError and the stored
// courier is untouched. The cross-process guarantee is the repository's
// compare-and-set; this is the same rule enforced in memory.
func (a *DeliveryAssignment) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if a.courierID != nil {
		return errs.NewConflictErrorWithCause("assignmentId", a.id.String(),
			errors.New("already claimed by another courier"))
	}

	now := time.Now()
	a.courierID = &courierID
	a.claimedAt = &now
	return nil
}

// EnsureClaimedBy verifies the acting courier holds this assignment.
func (a *DeliveryAssignment) EnsureClaimedBy(courierID kernel.UUID, action string) error {
	if a.courierID == nil || !a.courierID.IsEqual(courierID) {
		return errs.NewForbiddenErrorWithCause(courierID.String(), action,
			errors.New("assignment is claimed by another courier"))
	}
	return nil
}

func (a *DeliveryAssignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAssignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}
