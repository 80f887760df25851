// Package inventoryrepo keeps ingredient stock counters and recipes in PostgreSQL.
// It implements both the stock ledger and the recipe resolver.
package inventoryrepo

import (
	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type IngredientDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Unit            string    `gorm:"type:varchar(32)"`
	Quantity        int       `gorm:"type:int;not null;check:quantity >= 0"`
	MinimumQuantity int       `gorm:"type:int;not null;default:0"`
}

func (IngredientDTO) TableName() string {
	return "ingredients"
}

// RecipeIngredientDTO is the per-portion amount of an ingredient in a menu item.
type RecipeIngredientDTO struct {
	MenuItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity     int       `gorm:"type:int;not null"`
}

func (RecipeIngredientDTO) TableName() string {
	return "recipe_ingredients"
}

// ConsumptionDTO is how much of an ingredient an order item has taken from the counter.
// Restores never give back more than this.
type ConsumptionDTO struct {
	OrderItemID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity     int       `gorm:"type:int;not null;check:quantity >= 0"`
}

func (ConsumptionDTO) TableName() string {
	return "stock_consumptions"
}

type requirementRow struct {
	IngredientID uuid.UUID
	Name         string
	Quantity     int
	Stock        int
}

func (row requirementRow) toDomain() (inventory.Requirement, error) {
	id, err := kernel.UUIDFromBytes(row.IngredientID[:])
	if err != nil {
		return inventory.Requirement{}, err
	}
	return inventory.Requirement{IngredientID: id, IngredientName: row.Name, Quantity: row.Quantity}, nil
}

func levelToDomain(dto IngredientDTO) (inventory.StockLevel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inventory.StockLevel{}, err
	}
	return inventory.StockLevel{
		IngredientID: id,
		Name:         dto.Name,
		Unit:         dto.Unit,
		Current:      dto.Quantity,
		Minimum:      dto.MinimumQuantity,
	}, nil
}
