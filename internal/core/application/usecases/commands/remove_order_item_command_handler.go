package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemChangeResult is returned by commands that change a single item.
type ItemChangeResult struct {
	Total    decimal.Decimal
	Warnings []errs.DependencyWarning
}

// RemoveOrderItemCommandHandler removes an item, gives its ingredients back to stock
// and sends an ItemRemoved notification.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
	clock      kernel.Clock
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory, effects SideEffects, clock kernel.Clock) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		clock:      clock,
	}
}

func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (ItemChangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return ItemChangeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ItemChangeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ItemChangeResult{}, err
	}

	removed, err := o.RemoveItem(cmd.ItemID())
	if err != nil {
		return ItemChangeResult{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return ItemChangeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ItemChangeResult{}, err
	}

	label, labelWarnings := h.effects.TableLabel(ctx, uow.TableRepository(), o)

	result := ItemChangeResult{Total: o.Total(), Warnings: labelWarnings}
	result.Warnings = append(result.Warnings, h.effects.ReleaseItem(ctx, removed, 0)...)
	result.Warnings = append(result.Warnings,
		h.effects.Notify(ctx, notification.ItemRemovedEvent(o, label, removed, h.clock.Now()))...)

	return result, nil
}
