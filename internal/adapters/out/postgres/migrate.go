package postgres

import (
	"restaurant/internal/adapters/out/postgres/inventoryrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/sequencerepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&tablerepo.TableDTO{},
		&menurepo.MenuItemDTO{},
		&inventoryrepo.IngredientDTO{},
		&inventoryrepo.RecipeIngredientDTO{},
		&inventoryrepo.ConsumptionDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.PaymentDTO{},
		&sequencerepo.OrderSequenceDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
