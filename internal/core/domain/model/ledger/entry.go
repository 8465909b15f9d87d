package ledger

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is a single immutable ledger line produced by order settlement.
// Entries are only ever appended; corrections would be new entries.
type Entry struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	entryType EntryType
	createdAt time.Time

	isConstructed bool
}

// NewEntry creates a ledger entry crediting or charging userID for orderID.
func NewEntry(id, userID, orderID kernel.UUID, amount kernel.Money, entryType EntryType) (*Entry, error) {
	e := &Entry{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setUserID(userID),
		e.setOrderID(orderID),
		e.setAmount(amount),
		e.setEntryType(entryType),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs a ledger entry from persistence.
func RestoreEntry(id, userID, orderID kernel.UUID, amount kernel.Money,
	entryType EntryType, createdAt time.Time) (*Entry, error) {
	e, err := NewEntry(id, userID, orderID, amount, entryType)
	if err != nil {
		return nil, err
	}
	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// UserID returns the party the entry belongs to.
func (e *Entry) UserID() kernel.UUID { return e.userID }

// OrderID returns the order that produced the entry.
func (e *Entry) OrderID() kernel.UUID { return e.orderID }

// Amount returns the entry's monetary amount.
func (e *Entry) Amount() kernel.Money { return e.amount }

// Type returns the entry's classification.
func (e *Entry) Type() EntryType { return e.entryType }

// CreatedAt returns when the entry was written.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.userID = id
	return nil
}

func (e *Entry) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.orderID = id
	return nil
}

func (e *Entry) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("must be positive"))
	}
	e.amount = amount
	return nil
}

func (e *Entry) setEntryType(entryType EntryType) error {
	if err := entryType.Validate(); err != nil {
		return err
	}
	e.entryType = entryType
	return nil
}
