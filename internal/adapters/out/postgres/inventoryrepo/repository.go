package inventoryrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements ports.StockLedger and ports.RecipeResolver.
// Each adjustment is a single conditional UPDATE so the counter can never drop below zero,
// even when several orders consume the same ingredient concurrently. What an order item
// consumed is recorded in the same transaction as the decrement, and restores are capped by it.
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// AddIngredient stores a new ingredient with its opening stock.
func (r *GormInventoryRepository) AddIngredient(ctx context.Context, level inventory.StockLevel) error {
	if err := level.IngredientID.Validate(); err != nil {
		return err
	}
	dto := IngredientDTO{
		ID:              level.IngredientID.Bytes(),
		Name:            level.Name,
		Unit:            level.Unit,
		Quantity:        level.Current,
		MinimumQuantity: level.Minimum,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SetRecipe replaces the recipe of a menu item.
func (r *GormInventoryRepository) SetRecipe(ctx context.Context, menuItemID kernel.UUID, reqs []inventory.Requirement) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", menuItemID.Bytes()).Delete(&RecipeIngredientDTO{}).Error; err != nil {
			return err
		}
		if len(reqs) == 0 {
			return nil
		}

		rows := make([]RecipeIngredientDTO, 0, len(reqs))
		for _, req := range reqs {
			rows = append(rows, RecipeIngredientDTO{
				MenuItemID:   menuItemID.Bytes(),
				IngredientID: req.IngredientID.Bytes(),
				Quantity:     req.Quantity,
			})
		}
		return tx.Create(&rows).Error
	})
}

// Consume takes quantity units of an ingredient for an order item and records them against
// the item. A take that would drop the counter below zero is refused with
// inventory.ErrInsufficientStock and nothing is recorded.
func (r *GormInventoryRepository) Consume(ctx context.Context, itemID, ingredientID kernel.UUID, quantity int) error {
	if err := errors.Join(itemID.Validate(), ingredientID.Validate()); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := adjust(tx, ingredientID, -quantity); err != nil {
			return err
		}

		consumption := ConsumptionDTO{
			OrderItemID:  itemID.Bytes(),
			IngredientID: ingredientID.Bytes(),
			Quantity:     quantity,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_item_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("stock_consumptions.quantity + excluded.quantity"),
			}),
		}).Create(&consumption).Error
	})
}

// Release gives back what an order item consumed of an ingredient beyond keep units and
// returns the amount restored. An item that never consumed the ingredient restores nothing.
func (r *GormInventoryRepository) Release(ctx context.Context, itemID, ingredientID kernel.UUID, keep int) (int, error) {
	if err := errors.Join(itemID.Validate(), ingredientID.Validate()); err != nil {
		return 0, err
	}
	if keep < 0 {
		return 0, errs.NewValueIsOutOfRangeError("keep", keep, 0, "unbounded")
	}

	restored := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var consumption ConsumptionDTO
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&consumption, "order_item_id = ? AND ingredient_id = ?", itemID.Bytes(), ingredientID.Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		excess := consumption.Quantity - keep
		if excess <= 0 {
			return nil
		}
		if err := adjust(tx, ingredientID, excess); err != nil {
			return err
		}

		rows := tx.Where("order_item_id = ? AND ingredient_id = ?", itemID.Bytes(), ingredientID.Bytes())
		if keep == 0 {
			err = rows.Delete(&ConsumptionDTO{}).Error
		} else {
			err = rows.Model(&ConsumptionDTO{}).Update("quantity", keep).Error
		}
		if err != nil {
			return err
		}
		restored = excess
		return nil
	})
	if err != nil {
		return 0, err
	}
	return restored, nil
}

// adjust applies delta to the ingredient counter or refuses it with inventory.ErrInsufficientStock.
func adjust(db *gorm.DB, ingredientID kernel.UUID, delta int) error {
	result := db.Model(&IngredientDTO{}).
		Where("id = ? AND quantity + ? >= 0", ingredientID.Bytes(), delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var current IngredientDTO
	err := db.Select("id", "name", "quantity").Take(&current, "id = ?", ingredientID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("ingredient", ingredientID.String())
		}
		return err
	}
	return inventory.ErrInsufficientStock.
		With("ingredient", current.Name).
		With("current", current.Quantity).
		With("delta", delta)
}

// LowStock lists ingredients at or below their minimum, by name.
func (r *GormInventoryRepository) LowStock(ctx context.Context) ([]inventory.StockLevel, error) {
	var dtos []IngredientDTO
	if err := r.db.WithContext(ctx).
		Where("quantity <= minimum_quantity").
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	levels := make([]inventory.StockLevel, 0, len(dtos))
	for _, dto := range dtos {
		level, err := levelToDomain(dto)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// Requirements lists the per-portion ingredients of a menu item. A menu item without
// a recipe yields an empty list.
func (r *GormInventoryRepository) Requirements(ctx context.Context, menuItemID kernel.UUID) ([]inventory.Requirement, error) {
	rows, err := r.recipe(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	reqs := make([]inventory.Requirement, 0, len(rows))
	for _, row := range rows {
		req, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// CheckAvailability compares the recipe for quantity portions with the current counters.
func (r *GormInventoryRepository) CheckAvailability(
	ctx context.Context,
	menuItemID kernel.UUID,
	quantity int,
) ([]inventory.Shortage, error) {
	rows, err := r.recipe(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	reqs := make([]inventory.Requirement, 0, len(rows))
	current := make(map[kernel.UUID]int, len(rows))
	for _, row := range rows {
		req, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
		current[req.IngredientID] = row.Stock
	}
	return inventory.Shortages(reqs, quantity, current), nil
}

func (r *GormInventoryRepository) recipe(ctx context.Context, menuItemID kernel.UUID) ([]requirementRow, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}

	var rows []requirementRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			r.ingredient_id,
			i.name,
			r.quantity,
			i.quantity AS stock
		FROM recipe_ingredients r
		JOIN ingredients i ON i.id = r.ingredient_id
		WHERE r.menu_item_id = ?
		ORDER BY i.name
	`, menuItemID.Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
