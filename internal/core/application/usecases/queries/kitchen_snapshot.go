// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// KitchenReader groups the read-only lookups the kitchen views need.
type KitchenReader struct {
	Orders ports.OrderRepository
	Menu   ports.MenuItemRepository
	Tables ports.TableRepository
}

type kitchenSnapshot struct {
	orders        []services.KitchenOrder
	menuItems     map[kernel.UUID]*menu.MenuItem
	servedByTable map[kernel.UUID]int
}

// load reads every active order together with the menu items and tables it references.
// Lookups are batched: one query per repository regardless of the number of orders.
func (r KitchenReader) load(ctx context.Context) (kitchenSnapshot, error) {
	active, err := r.Orders.GetActive(ctx)
	if err != nil {
		return kitchenSnapshot{}, err
	}

	var (
		menuIDs  []kernel.UUID
		tableIDs []kernel.UUID
		seenMenu = make(map[kernel.UUID]struct{})
		seenTbl  = make(map[kernel.UUID]struct{})
	)
	for _, o := range active {
		if id := o.TableID(); id != nil {
			if _, ok := seenTbl[*id]; !ok {
				seenTbl[*id] = struct{}{}
				tableIDs = append(tableIDs, *id)
			}
		}
		for _, item := range o.Items() {
			if _, ok := seenMenu[item.MenuItemID()]; !ok {
				seenMenu[item.MenuItemID()] = struct{}{}
				menuIDs = append(menuIDs, item.MenuItemID())
			}
		}
	}

	snapshot := kitchenSnapshot{
		menuItems:     make(map[kernel.UUID]*menu.MenuItem, len(menuIDs)),
		servedByTable: services.CountServedDishesByTable(active, tableIDs),
	}

	if len(menuIDs) > 0 {
		items, err := r.Menu.GetByIDs(ctx, menuIDs)
		if err != nil {
			return kitchenSnapshot{}, err
		}
		for _, m := range items {
			snapshot.menuItems[m.ID()] = m
		}
	}

	labels := make(map[kernel.UUID]string, len(tableIDs))
	if len(tableIDs) > 0 {
		tables, err := r.Tables.GetByIDs(ctx, tableIDs)
		if err != nil {
			return kitchenSnapshot{}, err
		}
		for _, t := range tables {
			labels[t.ID()] = t.Label()
		}
	}

	snapshot.orders = make([]services.KitchenOrder, 0, len(active))
	for _, o := range active {
		ko := services.KitchenOrder{Order: o}
		if id := o.TableID(); id != nil {
			ko.TableLabel = labels[*id]
		}
		snapshot.orders = append(snapshot.orders, ko)
	}
	return snapshot, nil
}
