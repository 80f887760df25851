package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderResult is the outcome of a successful order creation.
// Warnings list stock and notification problems that did not stop the order.
type CreateOrderResult struct {
	OrderID  kernel.UUID
	Number   order.Number
	Total    decimal.Decimal
	ItemIDs  []kernel.UUID
	Warnings []errs.DependencyWarning
}

// CreateOrderCommandHandler opens orders.
//
// Inside one transaction it checks the table (dine-in only) and every menu item, takes the next
// order number of the day, persists the order and seats it at the table. After commit it deducts
// ingredient stock and notifies staff; failures there become warnings.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, effects, kernel.SystemClock{})
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, table.ErrTableNotAvailable) {
//	    // pick another table
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, effects SideEffects, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		clock:      clock,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	menuRepo := uow.MenuItemRepository()
	orderRepo := uow.OrderRepository()

	var tbl *table.Table
	if cmd.TableID() != nil {
		var err error
		tbl, err = tableRepo.GetForUpdate(ctx, *cmd.TableID())
		if err != nil {
			return CreateOrderResult{}, err
		}
		if !tbl.Status().AcceptsOrders() {
			return CreateOrderResult{}, table.ErrTableNotAvailable.
				With("table", tbl.Label()).
				With("status", tbl.Status().String())
		}
	}

	lines := make([]order.ItemLine, 0, len(cmd.Items()))
	for _, in := range cmd.Items() {
		m, err := menuRepo.Get(ctx, in.MenuItemID)
		if err != nil {
			return CreateOrderResult{}, err
		}
		line, err := in.toLine(m)
		if err != nil {
			return CreateOrderResult{}, err
		}
		lines = append(lines, line)
	}

	number, err := uow.OrderNumberAllocator().Next(ctx, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), number, cmd.Type(), cmd.TableID(), cmd.Customer(), cmd.Notes(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}
	items, err := o.AddItems(lines...)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = o.ValidateForConfirmation(); err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	label := notification.Label(o, "")
	if tbl != nil {
		if err = tbl.AssignOrder(o.ID()); err != nil {
			return CreateOrderResult{}, err
		}
		if err = tableRepo.Update(ctx, tbl); err != nil {
			return CreateOrderResult{}, err
		}
		label = notification.Label(o, tbl.Label())
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	result := CreateOrderResult{
		OrderID: o.ID(),
		Number:  o.Number(),
		Total:   o.Total(),
	}
	for _, item := range items {
		result.ItemIDs = append(result.ItemIDs, item.ID())
	}

	result.Warnings = append(result.Warnings, h.effects.ConsumeItems(ctx, items)...)
	result.Warnings = append(result.Warnings, h.effects.Notify(ctx, notification.NewOrderEvent(o, label, now))...)

	return result, nil
}
