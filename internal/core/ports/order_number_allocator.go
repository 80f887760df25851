package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// OrderNumberAllocator hands out ORD-YYYYMMDD-NNN numbers. Concurrent callers never
// receive the same number for the same day.
type OrderNumberAllocator interface {
	Next(ctx context.Context, day time.Time) (order.Number, error)
}
