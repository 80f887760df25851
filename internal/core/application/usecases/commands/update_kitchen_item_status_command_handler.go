package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// UpdateKitchenItemStatusCommandHandler applies a kitchen status change. A canceled dish
// gives its ingredients back to stock.
type UpdateKitchenItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
	clock      kernel.Clock
}

func NewUpdateKitchenItemStatusCommandHandler(
	uowFactory OrderUoWFactory,
	effects SideEffects,
	clock kernel.Clock,
) UpdateKitchenItemStatusCommandHandler {
	return UpdateKitchenItemStatusCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		clock:      clock,
	}
}

func (h UpdateKitchenItemStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateKitchenItemStatusCommand,
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

	item, err := o.ApplyKitchenStatus(cmd.ItemID(), cmd.Target(), h.clock.Now())
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
	if item.Status() == order.Canceled {
		result.Warnings = h.effects.ReleaseItem(ctx, item, 0)
	}
	return result, nil
}
