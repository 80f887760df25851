package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
)

// UpdateOrderItemQuantityCommandHandler changes an item quantity and adjusts stock by the
// difference: raising the quantity consumes, lowering it restores.
type UpdateOrderItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
	clock      kernel.Clock
}

func NewUpdateOrderItemQuantityCommandHandler(
	uowFactory OrderUoWFactory,
	effects SideEffects,
	clock kernel.Clock,
) UpdateOrderItemQuantityCommandHandler {
	return UpdateOrderItemQuantityCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		clock:      clock,
	}
}

func (h UpdateOrderItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemQuantityCommand,
) (ItemChangeResult, error) {
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

	previous, err := o.UpdateItemQuantity(cmd.ItemID(), cmd.Quantity())
	if err != nil {
		return ItemChangeResult{}, err
	}
	item, err := o.Item(cmd.ItemID())
	if err != nil {
		return ItemChangeResult{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return ItemChangeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ItemChangeResult{}, err
	}

	result := ItemChangeResult{Total: o.Total()}
	if previous == cmd.Quantity() {
		return result, nil
	}

	label, labelWarnings := h.effects.TableLabel(ctx, uow.TableRepository(), o)
	result.Warnings = labelWarnings
	if cmd.Quantity() > previous {
		result.Warnings = append(result.Warnings, h.effects.ConsumeItem(ctx, item, cmd.Quantity()-previous)...)
	} else {
		result.Warnings = append(result.Warnings, h.effects.ReleaseItem(ctx, item, cmd.Quantity())...)
	}
	result.Warnings = append(result.Warnings,
		h.effects.Notify(ctx, notification.QuantityUpdatedEvent(o, label, item, previous, h.clock.Now()))...)

	return result, nil
}
