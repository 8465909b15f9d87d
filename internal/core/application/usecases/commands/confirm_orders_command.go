package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrConfirmOrdersCommandIsNotConstructed = errors.New(
	"ConfirmOrdersCommand must be created via NewConfirmOrdersCommand constructor",
)

// ConfirmOrdersCommand represents a customer submitting their cart: the
// selected pending orders move to the confirmed status in one transaction.
// An empty selection confirms every pending order the customer has.
type ConfirmOrdersCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrdersCommand creates a command to confirm a customer's pending
// orders. Pass no order IDs to confirm all of them.
func NewConfirmOrdersCommand(customerID kernel.UUID, orderIDs ...kernel.UUID) (ConfirmOrdersCommand, error) {
	cmd := ConfirmOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return ConfirmOrdersCommand{}, err
	}

	if err := cmd.setOrderIDs(orderIDs); err != nil {
		return ConfirmOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrdersCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrdersCommandIsNotConstructed)
}

// CustomerID returns the confirming customer's identifier.
func (c ConfirmOrdersCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderIDs returns the selected order identifiers. Empty means all pending.
func (c ConfirmOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *ConfirmOrdersCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ConfirmOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}
