package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AddItemsToOrderResult carries the new item ids and the recalculated total.
type AddItemsToOrderResult struct {
	ItemIDs  []kernel.UUID
	Total    decimal.Decimal
	Warnings []errs.DependencyWarning
}

// AddItemsToOrderCommandHandler appends items to an order, consumes their ingredients
// and sends an ItemsAdded notification.
type AddItemsToOrderCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
	clock      kernel.Clock
}

func NewAddItemsToOrderCommandHandler(uowFactory UoWFactory, effects SideEffects, clock kernel.Clock) AddItemsToOrderCommandHandler {
	return AddItemsToOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		clock:      clock,
	}
}

func (h AddItemsToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemsToOrderCommand) (AddItemsToOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemsToOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddItemsToOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	menuRepo := uow.MenuItemRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return AddItemsToOrderResult{}, err
	}
	if err = o.Status().ValidateActive(); err != nil {
		return AddItemsToOrderResult{}, err
	}

	lines := make([]order.ItemLine, 0, len(cmd.Items()))
	for _, in := range cmd.Items() {
		m, err := menuRepo.Get(ctx, in.MenuItemID)
		if err != nil {
			return AddItemsToOrderResult{}, err
		}
		line, err := in.toLine(m)
		if err != nil {
			return AddItemsToOrderResult{}, err
		}
		lines = append(lines, line)
	}

	added, err := o.AddItems(lines...)
	if err != nil {
		return AddItemsToOrderResult{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return AddItemsToOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddItemsToOrderResult{}, err
	}

	label, labelWarnings := h.effects.TableLabel(ctx, uow.TableRepository(), o)

	result := AddItemsToOrderResult{Total: o.Total(), Warnings: labelWarnings}
	for _, item := range added {
		result.ItemIDs = append(result.ItemIDs, item.ID())
	}
	result.Warnings = append(result.Warnings, h.effects.ConsumeItems(ctx, added)...)
	result.Warnings = append(result.Warnings,
		h.effects.Notify(ctx, notification.ItemsAddedEvent(o, label, added, h.clock.Now()))...)

	return result, nil
}
