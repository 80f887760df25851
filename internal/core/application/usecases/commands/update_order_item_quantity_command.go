package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateOrderItemQuantityCommand must be created via NewUpdateOrderItemQuantityCommand constructor",
)

// UpdateOrderItemQuantityCommand changes the quantity of a Pending item.
type UpdateOrderItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemQuantityCommand(orderID, itemID kernel.UUID, quantity int) (UpdateOrderItemQuantityCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(orderID.Validate(), itemID.Validate(), quantityErr); err != nil {
		return UpdateOrderItemQuantityCommand{}, err
	}

	return UpdateOrderItemQuantityCommand{
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemQuantityCommandIsNotConstructed)
}

func (c UpdateOrderItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateOrderItemQuantityCommand) Quantity() int {
	return c.quantity
}
