package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrDecideOrderCommandIsNotConstructed = errors.New(
	"DecideOrderCommand must be created via NewDecideOrderCommand constructor",
)

// DecideOrderCommand represents a merchant accepting or rejecting a confirmed
// order. The decision is final; a rejected order never re-enters the flow.
type DecideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	merchantID kernel.UUID
	accept     bool

	guard guard.ConstructorGuard
}

// NewDecideOrderCommand creates a command carrying a merchant's decision.
func NewDecideOrderCommand(orderID, merchantID kernel.UUID, accept bool) (DecideOrderCommand, error) {
	cmd := DecideOrderCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMerchantID(merchantID),
	); err != nil {
		return DecideOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideOrderCommand) Validate() error {
	return c.guard.Validate(ErrDecideOrderCommandIsNotConstructed)
}

// OrderID returns the order being decided.
func (c DecideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MerchantID returns the deciding merchant's identifier.
func (c DecideOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Accept reports whether the merchant accepted the order.
func (c DecideOrderCommand) Accept() bool {
	return c.accept
}

func (c *DecideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DecideOrderCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}
