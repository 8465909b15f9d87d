package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents the claiming courier reporting delivery
// progress: picking the order up, then handing it over.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	to        order.DeliveryProgress

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance delivery progress.
func NewAdvanceDeliveryCommand(orderID, courierID kernel.UUID, to order.DeliveryProgress) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setTo(to),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// OrderID returns the order whose delivery is advancing.
func (c AdvanceDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the reporting courier's identifier.
func (c AdvanceDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// To returns the progress stage being reported.
func (c AdvanceDeliveryCommand) To() order.DeliveryProgress {
	return c.to
}

func (c *AdvanceDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AdvanceDeliveryCommand) setTo(to order.DeliveryProgress) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.to = to
	return nil
}
