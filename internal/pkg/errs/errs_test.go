package errs_test

import (
	"errors"
	"testing"

	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should carry the identifier and unwrap to the sentinel", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "d2f1")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "d2f1", err.ID)
		assert.Equal(t, "object not found: d2f1", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should include the cause when one is wrapped", func(t *testing.T) {
		cause := errors.New("row deleted mid-transaction")
		err := errs.NewObjectNotFoundErrorWithCause("menuItemID", "a7c3", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: menuItemID, ID is: a7c3 (cause: row deleted mid-transaction)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should accept a numeric identifier", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("table number", 7)

		assert.Equal(t, 7, err.ID)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should name the offending parameter", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should include the cause when one is wrapped", func(t *testing.T) {
		cause := errors.New("-2 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: -2 is not greater than 0)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should name the missing parameter", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer name")

		assert.Equal(t, "customer name", err.ParamName)
		assert.Equal(t, "value is required: customer name", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should include the cause when one is wrapped", func(t *testing.T) {
		cause := errors.New("request body had no items array")
		err := errs.NewValueIsRequiredErrorWithCause("items", cause)

		assert.Equal(t, "value is required: items (cause: request body had no items array)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should report value and bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("capacity", 9, 1, 8)

		assert.Equal(t, 9, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 8, err.Max)
		assert.Equal(t, "value is invalid: 9 is capacity, min value is 1, max value is 8", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should flatten multi-line values into one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("should unwrap to the sentinel with and without a cause", func(t *testing.T) {
		withCause := errs.NewVersionIsInvalidError("order", errors.New("stale aggregate"))
		assert.Equal(t, "version is invalid: order (cause: stale aggregate)", withCause.Error())
		require.ErrorIs(t, withCause, errs.ErrVersionIsInvalid)

		bare := errs.NewVersionIsInvalidErrorWithCause("order")
		assert.Equal(t, "version is invalid: order", bare.Error())
		require.ErrorIs(t, bare, errs.ErrVersionIsInvalid)
	})
}

func TestSentinelClassification(t *testing.T) {
	t.Run("should keep sentinels distinguishable from each other", func(t *testing.T) {
		notFound := errs.NewObjectNotFoundError("chefID", "b1")

		require.ErrorIs(t, notFound, errs.ErrObjectNotFound)
		assert.NotErrorIs(t, notFound, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, notFound, errs.ErrValueIsRequired)
	})
}
