package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrNotifyLowStockCommandIsNotConstructed = errors.New(
	"NotifyLowStockCommand must be created via NewNotifyLowStockCommand constructor",
)

// NotifyLowStockCommand asks for one LowStock notification listing every ingredient
// at or below its minimum level. It carries no parameters.
type NotifyLowStockCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewNotifyLowStockCommand() NotifyLowStockCommand {
	return NotifyLowStockCommand{guard: guard.NewConstructorGuard()}
}

func (c NotifyLowStockCommand) Validate() error {
	return c.guard.Validate(ErrNotifyLowStockCommandIsNotConstructed)
}
