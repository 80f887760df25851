package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkItemServedCommandIsNotConstructed = errors.New(
	"MarkItemServedCommand must be created via NewMarkItemServedCommand constructor",
)

// MarkItemServedCommand is issued by serving staff when a Ready dish reaches the guest.
type MarkItemServedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkItemServedCommand(orderID, itemID kernel.UUID) (MarkItemServedCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return MarkItemServedCommand{}, err
	}
	return MarkItemServedCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkItemServedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemServedCommandIsNotConstructed)
}

func (c MarkItemServedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkItemServedCommand) ItemID() kernel.UUID {
	return c.itemID
}
