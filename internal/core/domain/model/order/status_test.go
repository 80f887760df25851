package order_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		assert.NoError(t, order.Serving.Validate())
		assert.NoError(t, order.Paid.Validate())
	})

	t.Run("should reject unknown and out of range statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Serving", order.Serving.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("Paid")
	require.NoError(t, err)
	assert.Equal(t, order.Paid, s)

	_, err = order.ParseStatus("Unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Pay(t *testing.T) {
	t.Run("should move Serving to Paid", func(t *testing.T) {
		next, err := order.Serving.Pay()
		require.NoError(t, err)
		assert.Equal(t, order.Paid, next)
	})

	t.Run("should refuse paying twice", func(t *testing.T) {
		_, err := order.Paid.Pay()
		assert.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	})

	t.Run("should refuse unknown status", func(t *testing.T) {
		_, err := order.Unknown.Pay()
		assert.ErrorIs(t, err, order.ErrOrderNotActive)
	})
}

func TestStatus_ValidateActive(t *testing.T) {
	assert.NoError(t, order.Serving.ValidateActive())

	err := order.Paid.ValidateActive()
	require.Error(t, err)
	assert.True(t, errors.Is(err, order.ErrOrderNotActive))
	assert.True(t, errors.Is(err, errs.ErrRuleViolation))
	assert.Contains(t, err.Error(), "status=Paid")
}

func TestType(t *testing.T) {
	t.Run("should expose table and customer requirements", func(t *testing.T) {
		assert.True(t, order.DineIn.RequiresTable())
		assert.False(t, order.DineIn.RequiresCustomerContact())
		assert.False(t, order.Takeaway.RequiresTable())
		assert.True(t, order.Takeaway.RequiresCustomerContact())
		assert.True(t, order.Delivery.RequiresCustomerContact())
	})

	t.Run("should parse names", func(t *testing.T) {
		typ, err := order.ParseType("Delivery")
		require.NoError(t, err)
		assert.Equal(t, order.Delivery, typ)

		_, err = order.ParseType("Drive")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		assert.ErrorIs(t, order.UnknownType.Validate(), errs.ErrValueIsInvalid)
	})
}
