// Package logsink writes staff notifications to the application log. It is used when
// no message broker is configured.
package logsink

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/notification"
)

type NotificationSink struct {
	logger *slog.Logger
}

func NewNotificationSink(logger *slog.Logger) *NotificationSink {
	return &NotificationSink{logger: logger.With("component", "notification_sink")}
}

func (s *NotificationSink) Notify(ctx context.Context, event notification.Event) error {
	attrs := []any{
		"kind", string(event.Kind),
		"routing_key", event.Kind.RoutingKey(),
	}
	if event.OrderID != "" {
		attrs = append(attrs,
			"order_id", event.OrderID,
			"order_number", event.OrderNumber,
			"table", event.TableLabel,
			"items", len(event.Items),
		)
	}
	if len(event.Stock) > 0 {
		attrs = append(attrs, "ingredients", len(event.Stock))
	}

	s.logger.InfoContext(ctx, "Staff notification", attrs...)
	return nil
}
