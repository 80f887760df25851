package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/domain/model/notification"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func TestNotificationSink_Notify(t *testing.T) {
	at := time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	event := notification.Event{
		Kind:        notification.ItemServed,
		OrderID:     "f0d7d8e4-5a3c-4c5b-9a55-6b8c0f1e2d3a",
		OrderNumber: "ORD-20261016-004",
		OrderType:   "DineIn",
		TableLabel:  "T3",
		Items:       []notification.ItemInfo{{ItemID: "i-1", Name: "Fried rice", Quantity: 2}},
		OccurredAt:  at,
	}

	t.Run("publishes JSON under the kind's routing key", func(t *testing.T) {
		ch := &MockChannel{}
		var published amqp091.Publishing
		ch.On("PublishWithContext", mock.Anything, rabbitmq.ExchangeName, "order.items.served", false, false, mock.Anything).
			Run(func(args mock.Arguments) {
				published = args.Get(5).(amqp091.Publishing)
			}).
			Return(nil).Once()

		err := rabbitmq.NewNotificationSink(ch).Notify(t.Context(), event)

		require.NoError(t, err)
		assert.Equal(t, "application/json", published.ContentType)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, "ItemServed", published.Type)
		assert.True(t, at.Equal(published.Timestamp))

		var decoded notification.Event
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, "T3", decoded.TableLabel)
		assert.Equal(t, "ORD-20261016-004", decoded.OrderNumber)
		require.Len(t, decoded.Items, 1)
		assert.Equal(t, 2, decoded.Items[0].Quantity)
		ch.AssertExpectations(t)
	})

	t.Run("low stock is routed to inventory", func(t *testing.T) {
		ch := &MockChannel{}
		ch.On("PublishWithContext", mock.Anything, rabbitmq.ExchangeName, "inventory.low_stock", false, false, mock.Anything).
			Return(nil).Once()

		err := rabbitmq.NewNotificationSink(ch).Notify(t.Context(), notification.Event{Kind: notification.LowStock, OccurredAt: at})

		require.NoError(t, err)
		ch.AssertExpectations(t)
	})

	t.Run("broker failure is returned", func(t *testing.T) {
		ch := &MockChannel{}
		brokerErr := errors.New("channel/connection is not open")
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Return(brokerErr).Once()

		err := rabbitmq.NewNotificationSink(ch).Notify(t.Context(), event)

		require.ErrorIs(t, err, brokerErr)
		assert.Contains(t, err.Error(), "ItemServed")
	})
}

func TestDeclareExchange(t *testing.T) {
	ch := &MockChannel{}
	ch.On("ExchangeDeclare", rabbitmq.ExchangeName, "topic", true, false, false, false, amqp091.Table(nil)).
		Return(nil).Once()

	require.NoError(t, rabbitmq.DeclareExchange(ch))
	ch.AssertExpectations(t)

	failing := &MockChannel{}
	failing.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access refused")).Once()

	err := rabbitmq.DeclareExchange(failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), rabbitmq.ExchangeName)
}
