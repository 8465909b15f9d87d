package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromString("100.00")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Beef Noodles", price,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	price, _ := kernel.NewMoneyFromString("42.50")

	t.Run("should create valid pending order with snapshot", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		merchantID := kernel.NewUUID()
		itemID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, merchantID, itemID, "Dumplings", price)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.MerchantID().IsEqual(merchantID))
		assert.True(t, o.ItemID().IsEqual(itemID))
		assert.Equal(t, "Dumplings", o.ItemName())
		assert.True(t, o.Price().IsEqual(price))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Undecided, o.Acceptance())
		assert.Equal(t, order.NotStarted, o.Progress())
		assert.Nil(t, o.Courier())
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Minute)
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(kernel.NewUUID(), invalidID, kernel.NewUUID(), kernel.NewUUID(), "Dumplings", price)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty item name", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", price)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Dumplings", kernel.ZeroMoney())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidID, kernel.NewUUID(), kernel.NewUUID(), "", kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		o := &order.Order{}

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_HappyPath(t *testing.T) {
	o := newTestOrder(t)
	courierID := kernel.NewUUID()

	require.NoError(t, o.Confirm())
	assert.Equal(t, order.Confirmed, o.Status())

	require.NoError(t, o.Decide(true))
	assert.Equal(t, order.Accepted, o.Acceptance())

	require.NoError(t, o.Dispatch())
	assert.Equal(t, order.Notified, o.Progress())

	require.NoError(t, o.BindCourier(courierID))
	assert.Equal(t, order.Claimed, o.Progress())
	require.NotNil(t, o.Courier())
	assert.True(t, o.Courier().IsEqual(courierID))

	require.NoError(t, o.AdvanceDelivery(courierID, order.PickingUp))
	require.NoError(t, o.AdvanceDelivery(courierID, order.Delivered))

	require.NoError(t, o.Complete())
	assert.Equal(t, order.Completed, o.Status())
}

func TestOrder_Decide(t *testing.T) {
	t.Run("cannot decide a pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.Decide(true), errs.ErrInvalidState)
		assert.Equal(t, order.Undecided, o.Acceptance())
	})

	t.Run("second decision fails and changes nothing", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))

		require.ErrorIs(t, o.Decide(false), errs.ErrInvalidState)
		assert.Equal(t, order.Accepted, o.Acceptance())
	})

	t.Run("rejection is terminal", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(false))

		require.ErrorIs(t, o.Dispatch(), errs.ErrInvalidState)
		require.ErrorIs(t, o.Complete(), errs.ErrInvalidState)
	})
}

func TestOrder_BindCourier(t *testing.T) {
	t.Run("cannot bind before dispatch", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))

		require.ErrorIs(t, o.BindCourier(kernel.NewUUID()), errs.ErrInvalidState)
		assert.Nil(t, o.Courier())
	})

	t.Run("second bind conflicts and keeps the first courier", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.BindCourier(first))

		err := o.BindCourier(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, o.Courier().IsEqual(first))
	})
}

func TestOrder_AdvanceDelivery(t *testing.T) {
	setup := func(t *testing.T) (*order.Order, kernel.UUID) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.BindCourier(courierID))
		return o, courierID
	}

	t.Run("only the claiming courier may advance", func(t *testing.T) {
		o, _ := setup(t)

		err := o.AdvanceDelivery(kernel.NewUUID(), order.PickingUp)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Claimed, o.Progress())
	})

	t.Run("cannot jump straight to delivered", func(t *testing.T) {
		o, courierID := setup(t)

		require.ErrorIs(t, o.AdvanceDelivery(courierID, order.Delivered), errs.ErrInvalidState)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("cannot complete mid-delivery", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.BindCourier(courierID))
		require.NoError(t, o.AdvanceDelivery(courierID, order.PickingUp))

		require.ErrorIs(t, o.Complete(), errs.ErrInvalidState)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("accepted order without dispatch may complete directly", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("second completion fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Decide(true))
		require.NoError(t, o.Complete())

		require.ErrorIs(t, o.Complete(), errs.ErrInvalidState)
	})
}

func TestOrder_Ownership(t *testing.T) {
	o := newTestOrder(t)

	t.Run("owner passes, stranger is forbidden", func(t *testing.T) {
		require.NoError(t, o.EnsureOwnedBy(o.CustomerID(), "delete order"))
		require.ErrorIs(t, o.EnsureOwnedBy(kernel.NewUUID(), "delete order"), errs.ErrForbidden)
	})

	t.Run("merchant check mirrors ownership", func(t *testing.T) {
		require.NoError(t, o.EnsureMerchant(o.MerchantID(), "decide order"))
		require.ErrorIs(t, o.EnsureMerchant(kernel.NewUUID(), "decide order"), errs.ErrForbidden)
	})

	t.Run("deletable only while pending", func(t *testing.T) {
		require.NoError(t, o.EnsureDeletable())
		require.NoError(t, o.Confirm())
		require.ErrorIs(t, o.EnsureDeletable(), errs.ErrForbidden)
	})
}

func TestRestoreOrder(t *testing.T) {
	price, _ := kernel.NewMoneyFromString("100.00")
	courierID := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)

	t.Run("should restore a claimed order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Beef Noodles", price,
			order.Confirmed, order.Accepted, order.Claimed, &courierID, createdAt,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Claimed, o.Progress())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("claimed progress without a courier is inconsistent", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Beef Noodles", price,
			order.Confirmed, order.Accepted, order.Claimed, nil, createdAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("a courier before any claim is inconsistent", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Beef Noodles", price,
			order.Confirmed, order.Accepted, order.Notified, &courierID, createdAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid stored status is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Beef Noodles", price,
			order.Status(42), order.Accepted, order.NotStarted, nil, createdAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
