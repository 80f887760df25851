package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
)

// MarkItemServedCommandHandler moves a Ready item to Served and notifies staff.
type MarkItemServedCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
	clock      kernel.Clock
}

func NewMarkItemServedCommandHandler(uowFactory OrderUoWFactory, effects SideEffects, clock kernel.Clock) MarkItemServedCommandHandler {
	return MarkItemServedCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		clock:      clock,
	}
}

func (h MarkItemServedCommandHandler) Handle(ctx context.Context, cmd MarkItemServedCommand) (ItemChangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return ItemChangeResult{}, err
	}

	now := h.clock.Now()

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

	item, err := o.MarkItemServed(cmd.ItemID(), now)
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

	return ItemChangeResult{
		Total:    o.Total(),
		Warnings: append(labelWarnings, h.effects.Notify(ctx, notification.ItemServedEvent(o, label, item, now))...),
	}, nil
}
