package table_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("should create an available table", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), " T1 ", 4)

		require.NoError(t, err)
		assert.Equal(t, "T1", tbl.Label())
		assert.Equal(t, table.Available, tbl.Status())
		assert.Zero(t, tbl.ActiveOrders())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		_, err := table.NewTable(kernel.UUID{}, "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTable_Occupancy(t *testing.T) {
	tbl, err := table.NewTable(kernel.NewUUID(), "T1", 4)
	require.NoError(t, err)
	first, second := kernel.NewUUID(), kernel.NewUUID()

	require.NoError(t, tbl.AssignOrder(first))
	assert.Equal(t, table.Occupied, tbl.Status())

	require.NoError(t, tbl.AssignOrder(second), "occupied tables still accept orders")
	assert.Equal(t, 2, tbl.ActiveOrders())

	require.NoError(t, tbl.ReleaseOrder(first))
	assert.Equal(t, table.Occupied, tbl.Status())

	require.NoError(t, tbl.ReleaseOrder(second))
	assert.Equal(t, table.Available, tbl.Status())
	assert.Zero(t, tbl.ActiveOrders())
}

func TestTable_AssignOrder_NotAvailable(t *testing.T) {
	for _, status := range []table.Status{table.Reserved, table.Cleaning} {
		t.Run(status.String(), func(t *testing.T) {
			tbl, err := table.RestoreTable(kernel.NewUUID(), "T9", 2, status, 0)
			require.NoError(t, err)

			err = tbl.AssignOrder(kernel.NewUUID())

			assert.ErrorIs(t, err, table.ErrTableNotAvailable)
			assert.Contains(t, err.Error(), "status="+status.String())
			assert.Equal(t, status, tbl.Status())
		})
	}
}

func TestRestoreTable(t *testing.T) {
	_, err := table.RestoreTable(kernel.NewUUID(), "T1", 2, table.Unknown, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
