package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

type orderFixture struct {
	order      *order.Order
	customerID kernel.UUID
	merchantID kernel.UUID
}

func pendingOrder(t *testing.T) orderFixture {
	t.Helper()

	customerID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	price, err := kernel.NewMoneyFromString("100.00")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, merchantID,
		kernel.NewUUID(), "Beef Noodles", price)
	require.NoError(t, err)

	return orderFixture{order: o, customerID: customerID, merchantID: merchantID}
}

func confirmedOrder(t *testing.T) orderFixture {
	t.Helper()

	f := pendingOrder(t)
	require.NoError(t, f.order.Confirm())
	return f
}

func acceptedOrder(t *testing.T) orderFixture {
	t.Helper()

	f := confirmedOrder(t)
	require.NoError(t, f.order.Decide(true))
	return f
}

func dispatchedOrder(t *testing.T) orderFixture {
	t.Helper()

	f := acceptedOrder(t)
	require.NoError(t, f.order.Dispatch())
	return f
}

func deliveredOrder(t *testing.T, courierID kernel.UUID) orderFixture {
	t.Helper()

	f := dispatchedOrder(t)
	require.NoError(t, f.order.BindCourier(courierID))
	require.NoError(t, f.order.AdvanceDelivery(courierID, order.PickingUp))
	require.NoError(t, f.order.AdvanceDelivery(courierID, order.Delivered))
	return f
}
