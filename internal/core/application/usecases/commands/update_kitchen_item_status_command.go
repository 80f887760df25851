package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateKitchenItemStatusCommandIsNotConstructed = errors.New(
	"UpdateKitchenItemStatusCommand must be created via NewUpdateKitchenItemStatusCommand constructor",
)

// UpdateKitchenItemStatusCommand is issued by the kitchen. Only Preparing, Ready and
// Canceled are accepted as targets; serving is left to the floor staff.
type UpdateKitchenItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	target  order.ItemStatus

	guard guard.ConstructorGuard
}

func NewUpdateKitchenItemStatusCommand(
	orderID, itemID kernel.UUID,
	target order.ItemStatus,
) (UpdateKitchenItemStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return UpdateKitchenItemStatusCommand{}, err
	}
	if err := order.ValidateKitchenTarget(target); err != nil {
		return UpdateKitchenItemStatusCommand{}, err
	}

	return UpdateKitchenItemStatusCommand{
		orderID: orderID,
		itemID:  itemID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateKitchenItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateKitchenItemStatusCommandIsNotConstructed)
}

func (c UpdateKitchenItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateKitchenItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateKitchenItemStatusCommand) Target() order.ItemStatus {
	return c.target
}
