// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, persistence,
// then best-effort side effects (stock, notifications) reported as warnings.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// MenuItemRepoFactory provides access to the menu within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderNumberAllocatorFactory provides the per-day order number sequence within a transaction.
	OrderNumberAllocatorFactory interface {
		OrderNumberAllocator() ports.OrderNumberAllocator
	}

	// OrderUoW manages transactions for operations on an existing order and its table.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW additionally reads the menu and allocates order numbers.
	// Used by commands that create orders or add items.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   number, err := uow.OrderNumberAllocator().Next(ctx, now)
	//   // ... build and persist the order
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		OrderUoW
		MenuItemRepoFactory
		OrderNumberAllocatorFactory
	}

	// UoWFactory creates new unit of work instances for order creation.
	UoWFactory interface {
		Create() UoW
	}
)
