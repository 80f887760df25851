package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/notification"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Channel is the part of *amqp091.Channel the sink needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// NotificationSink publishes every event as a persistent JSON message,
// routed by the event kind (order.created, order.items.served, inventory.low_stock, ...).
type NotificationSink struct {
	channel Channel
}

func NewNotificationSink(channel Channel) *NotificationSink {
	return &NotificationSink{channel: channel}
}

func (s *NotificationSink) Notify(ctx context.Context, event notification.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s notification: %w", event.Kind, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = s.channel.PublishWithContext(
		ctx,
		ExchangeName,
		event.Kind.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Kind),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", event.Kind, err)
	}
	return nil
}
