package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAddItemsToOrderCommandIsNotConstructed = errors.New(
	"AddItemsToOrderCommand must be created via NewAddItemsToOrderCommand constructor",
)

// AddItemsToOrderCommand appends items to a Serving order.
type AddItemsToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []ItemInput

	guard guard.ConstructorGuard
}

func NewAddItemsToOrderCommand(orderID kernel.UUID, items []ItemInput) (AddItemsToOrderCommand, error) {
	cmd := AddItemsToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		validateItemInputs(items),
	); err != nil {
		return AddItemsToOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.items = append([]ItemInput(nil), items...)
	return cmd, nil
}

func (c AddItemsToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsToOrderCommandIsNotConstructed)
}

func (c AddItemsToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddItemsToOrderCommand) Items() []ItemInput {
	return c.items
}
