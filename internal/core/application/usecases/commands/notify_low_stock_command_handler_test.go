package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyLowStockCommandHandler_Handle(t *testing.T) {
	t.Run("sends one notification for all low ingredients", func(t *testing.T) {
		f := newFixture()
		levels := []inventory.StockLevel{
			{IngredientID: kernel.NewUUID(), Name: "Eggs", Unit: "pcs", Current: 3, Minimum: 12},
			{IngredientID: kernel.NewUUID(), Name: "Rice", Unit: "g", Current: 0, Minimum: 500},
		}
		f.ledger.On("LowStock", mock.Anything).Return(levels, nil).Once()
		f.sink.On("Notify", mock.Anything, mock.MatchedBy(func(e notification.Event) bool {
			return e.Kind == notification.LowStock && len(e.Stock) == 2 &&
				e.Stock[0].Name == "Eggs" && e.Stock[1].Minimum == 500 && e.OccurredAt.Equal(testNow)
		})).Return(nil).Once()

		handler := commands.NewNotifyLowStockCommandHandler(f.ledger, f.sink, f.clock)
		count, err := handler.Handle(t.Context(), commands.NewNotifyLowStockCommand())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		f.assertExpectations(t)
	})

	t.Run("nothing low, nothing sent", func(t *testing.T) {
		f := newFixture()
		f.ledger.On("LowStock", mock.Anything).Return([]inventory.StockLevel{}, nil).Once()

		handler := commands.NewNotifyLowStockCommandHandler(f.ledger, f.sink, f.clock)
		count, err := handler.Handle(t.Context(), commands.NewNotifyLowStockCommand())

		require.NoError(t, err)
		assert.Zero(t, count)
		f.sink.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("sink failure is returned", func(t *testing.T) {
		f := newFixture()
		f.ledger.On("LowStock", mock.Anything).
			Return([]inventory.StockLevel{{IngredientID: kernel.NewUUID(), Name: "Milk", Current: 1, Minimum: 2}}, nil).Once()
		sinkErr := errors.New("broker unreachable")
		f.sink.On("Notify", mock.Anything, mock.Anything).Return(sinkErr).Once()

		handler := commands.NewNotifyLowStockCommandHandler(f.ledger, f.sink, f.clock)
		_, err := handler.Handle(t.Context(), commands.NewNotifyLowStockCommand())

		require.ErrorIs(t, err, sinkErr)
	})

	t.Run("not constructed", func(t *testing.T) {
		f := newFixture()

		handler := commands.NewNotifyLowStockCommandHandler(f.ledger, f.sink, f.clock)
		_, err := handler.Handle(t.Context(), commands.NotifyLowStockCommand{})

		require.ErrorIs(t, err, commands.ErrNotifyLowStockCommandIsNotConstructed)
	})
}
