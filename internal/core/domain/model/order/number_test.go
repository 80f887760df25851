package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	day := time.Date(2026, 3, 7, 18, 30, 0, 0, time.UTC)

	n, err := order.NewNumber(day, 7)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260307-007", n.String())

	n, err = order.NewNumber(day, 1234)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260307-1234", n.String())

	_, err = order.NewNumber(day, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestParseNumber(t *testing.T) {
	n, err := order.ParseNumber("ORD-20261016-001")
	require.NoError(t, err)
	assert.Equal(t, order.Number("ORD-20261016-001"), n)

	for _, bad := range []string{"", "ORD-2026-001", "ORD-20261399-001", "ord-20261016-001", "ORD-20261016-01"} {
		_, err := order.ParseNumber(bad)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}
