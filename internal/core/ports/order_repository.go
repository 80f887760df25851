// Package ports defines the contracts between the restaurant core and its infrastructure:
// repositories, the unit of work, the order number allocator, the inventory collaborators
// and the notification sink.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its items and, once paid, its payment.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, including added, removed and changed items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get that also locks the order row until the surrounding
	// transaction ends, serializing concurrent mutations of one order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActive retrieves every order in Serving status, oldest first.
	GetActive(ctx context.Context) ([]*order.Order, error)
}
