package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository is the read side of the menu used while taking orders
// and ranking the kitchen queue.
type MenuItemRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error

	// Get returns errs.ErrObjectNotFound for unknown menu items.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetByIDs loads several menu items at once; unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
}
