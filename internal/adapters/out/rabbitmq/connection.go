// Package rabbitmq publishes staff notifications to a RabbitMQ topic exchange.
package rabbitmq

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeName is the topic exchange every notification is published to.
	ExchangeName = "restaurant_notifications"

	maxDialAttempts = 5
)

// Connection owns the AMQP connection and the single channel used for publishing.
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// Dial connects to the broker and declares the notification exchange.
// Failed attempts are retried with a growing pause.
func Dial(url string, logger *slog.Logger) (*Connection, error) {
	var err error
	for attempt := 1; attempt <= maxDialAttempts; attempt++ {
		var c *Connection
		c, err = dialOnce(url)
		if err == nil {
			return c, nil
		}

		if attempt < maxDialAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			logger.Warn("RabbitMQ connection failed, retrying", "attempt", attempt, "wait", wait, "error", err)
			time.Sleep(wait)
		}
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", maxDialAttempts, err)
}

func dialOnce(url string) (*Connection, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := DeclareExchange(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Connection{conn: conn, channel: ch}, nil
}

// DeclareExchange declares the durable notification topic exchange.
func DeclareExchange(ch Channel) error {
	err := ch.ExchangeDeclare(
		ExchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s exchange: %w", ExchangeName, err)
	}
	return nil
}

// Channel returns the publishing channel.
func (c *Connection) Channel() *amqp091.Channel {
	return c.channel
}

func (c *Connection) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}
