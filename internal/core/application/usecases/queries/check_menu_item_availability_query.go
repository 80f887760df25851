package queries

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCheckMenuItemAvailabilityQueryIsNotConstructed = errors.New(
	"CheckMenuItemAvailabilityQuery must be created via NewCheckMenuItemAvailabilityQuery constructor",
)

// CheckMenuItemAvailabilityQuery asks whether the pantry can cover quantity portions of a dish.
// The answer is informational; orders are never blocked on it.
type CheckMenuItemAvailabilityQuery struct {
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewCheckMenuItemAvailabilityQuery(menuItemID kernel.UUID, quantity int) (CheckMenuItemAvailabilityQuery, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(menuItemID.Validate(), quantityErr); err != nil {
		return CheckMenuItemAvailabilityQuery{}, err
	}
	return CheckMenuItemAvailabilityQuery{
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q CheckMenuItemAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckMenuItemAvailabilityQueryIsNotConstructed)
}

func (q CheckMenuItemAvailabilityQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}

func (q CheckMenuItemAvailabilityQuery) Quantity() int {
	return q.quantity
}

type CheckMenuItemAvailabilityQueryResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	OnMenu     bool
	InStock    bool
	Shortages  []inventory.Shortage
}
