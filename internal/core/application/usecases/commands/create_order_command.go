package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order with its first items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.DineIn, &tableID, items, "", order.Customer{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type
	tableID   *kernel.UUID
	items     []ItemInput
	notes     string
	customer  order.Customer

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Table, menu and customer rules
// are checked by the handler. A table is only kept for dine-in orders.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	tableID *kernel.UUID,
	items []ItemInput,
	notes string,
	customer order.Customer,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:    notes,
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setType(orderType),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := cmd.setTable(tableID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Type() order.Type {
	return c.orderType
}

// TableID is nil for takeaway and delivery orders.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setType(t order.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.orderType = t
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}
	c.items = append([]ItemInput(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setTable(tableID *kernel.UUID) error {
	if tableID == nil || !c.orderType.RequiresTable() {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	id := *tableID
	c.tableID = &id
	return nil
}
