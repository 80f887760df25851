package ports

import (
	"context"

	"restaurant/internal/core/domain/model/notification"
)

// NotificationSink delivers staff notifications. Callers treat failures as warnings.
type NotificationSink interface {
	Notify(ctx context.Context, event notification.Event) error
}
