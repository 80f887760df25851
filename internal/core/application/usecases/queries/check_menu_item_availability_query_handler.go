package queries

import (
	"context"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/ports"
)

// CheckMenuItemAvailabilityQueryHandler combines the menu flag with a recipe stock check.
type CheckMenuItemAvailabilityQueryHandler struct {
	menu    ports.MenuItemRepository
	recipes ports.RecipeResolver
}

func NewCheckMenuItemAvailabilityQueryHandler(
	menu ports.MenuItemRepository,
	recipes ports.RecipeResolver,
) CheckMenuItemAvailabilityQueryHandler {
	return CheckMenuItemAvailabilityQueryHandler{menu: menu, recipes: recipes}
}

func (h CheckMenuItemAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckMenuItemAvailabilityQuery,
) (CheckMenuItemAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckMenuItemAvailabilityQueryResponse{}, err
	}

	m, err := h.menu.Get(ctx, query.MenuItemID())
	if err != nil {
		return CheckMenuItemAvailabilityQueryResponse{}, err
	}

	shortages, err := h.recipes.CheckAvailability(ctx, query.MenuItemID(), query.Quantity())
	if err != nil {
		return CheckMenuItemAvailabilityQueryResponse{}, err
	}
	if shortages == nil {
		shortages = make([]inventory.Shortage, 0)
	}

	return CheckMenuItemAvailabilityQueryResponse{
		MenuItemID: m.ID(),
		Name:       m.Name(),
		Quantity:   query.Quantity(),
		OnMenu:     m.IsAvailable(),
		InStock:    len(shortages) == 0,
		Shortages:  shortages,
	}, nil
}
