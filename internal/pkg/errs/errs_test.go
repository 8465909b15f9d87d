package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classifies with errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("itemId", "42")
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
		assert.False(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("rating")

		assert.Equal(t, "rating", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: rating", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("6 is not within 1..5")
		err := errs.NewValueIsInvalidErrorWithCause("rating", cause)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: rating (cause: 6 is not within 1..5)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")

	assert.Equal(t, "customerId", err.ParamName)
	assert.Equal(t, "value is required: customerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("customer-1", "delete a confirmed order")

		assert.Equal(t, "customer-1", err.ActorID)
		assert.Equal(t, "delete a confirmed order", err.Action)
		assert.Equal(t, "operation is forbidden: delete a confirmed order", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("order belongs to another customer")
		err := errs.NewForbiddenErrorWithCause("customer-1", "delete order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation is forbidden: actor is: customer-1, action is: delete order (cause: order belongs to another customer)",
			err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("confirm", "Completed")

	assert.Equal(t, "confirm", err.Action)
	assert.Equal(t, "Completed", err.From)
	assert.Equal(t, "invalid state transition: cannot confirm from Completed", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	assert.True(t, errors.Is(err, errs.ErrInvalidState))
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("assignmentId", "a-7")

		assert.Equal(t, "assignmentId", err.ParamName)
		assert.Equal(t, "a-7", err.ID)
		assert.Equal(t, "conflict: a-7", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("already claimed by another courier")
		err := errs.NewConflictErrorWithCause("assignmentId", "a-7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: param is: assignmentId, ID is: a-7 (cause: already claimed by another courier)",
			err.Error())
	})
}
