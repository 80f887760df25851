package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	paidAt := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

	t.Run("should compute change", func(t *testing.T) {
		p, err := order.NewPayment(kernel.NewUUID(), kernel.NewUUID(), paidAt,
			decimal.NewFromInt(85000), decimal.NewFromInt(100000), order.Cash, " table 4 ")

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(15000).Equal(p.Change()))
		assert.Equal(t, "table 4", p.Notes())
		assert.Equal(t, order.Cash, p.Method())
	})

	t.Run("should never return negative change", func(t *testing.T) {
		p, err := order.NewPayment(kernel.NewUUID(), kernel.NewUUID(), paidAt,
			decimal.NewFromInt(100000), decimal.NewFromInt(60000), order.Credit, "")

		require.NoError(t, err)
		assert.True(t, p.Change().IsZero())
	})

	t.Run("should validate every field", func(t *testing.T) {
		_, err := order.NewPayment(kernel.UUID{}, kernel.NewUUID(), time.Time{},
			decimal.NewFromInt(-1), decimal.Zero, order.UnknownMethod, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "payment method")
	})
}

func TestParseMethod(t *testing.T) {
	m, err := order.ParseMethod("BankTransfer")
	require.NoError(t, err)
	assert.Equal(t, order.BankTransfer, m)

	_, err = order.ParseMethod("Cheque")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
