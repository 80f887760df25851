package ports

import (
	"context"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
)

// RecipeResolver maps menu items to the ingredients they consume.
type RecipeResolver interface {
	// Requirements lists the per-portion ingredient needs of a menu item.
	// A menu item without a recipe has no requirements.
	Requirements(ctx context.Context, menuItemID kernel.UUID) ([]inventory.Requirement, error)

	// CheckAvailability reports the ingredients that cannot cover quantity portions.
	CheckAvailability(ctx context.Context, menuItemID kernel.UUID, quantity int) ([]inventory.Shortage, error)
}

// StockLedger owns the ingredient counters and remembers what each order item took.
type StockLedger interface {
	// Consume takes quantity units of an ingredient for an order item. The counter never
	// goes negative; such a take is refused with inventory.ErrInsufficientStock and
	// nothing changes.
	Consume(ctx context.Context, itemID, ingredientID kernel.UUID, quantity int) error

	// Release gives back what the item consumed of the ingredient beyond keep units and
	// returns the restored amount. Stock that was never taken is never given back.
	Release(ctx context.Context, itemID, ingredientID kernel.UUID, keep int) (int, error)

	// LowStock lists ingredients at or below their minimum level.
	LowStock(ctx context.Context) ([]inventory.StockLevel, error)
}
