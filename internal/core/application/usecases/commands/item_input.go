package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

// ItemInput is an item as requested by staff. UnitPrice and Name fall back to the
// menu values when left empty.
type ItemInput struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  *decimal.Decimal
	Name       string
	Notes      string
}

func validateItemInputs(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var errList []error
	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
		}
		if item.Quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("item %d quantity", i), fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("item %d unit price", i), fmt.Errorf("%s is negative", item.UnitPrice)))
		}
	}
	return errors.Join(errList...)
}

// toLine checks the menu item can be ordered and fills in defaults.
func (in ItemInput) toLine(m *menu.MenuItem) (order.ItemLine, error) {
	if err := m.EnsureAvailable(); err != nil {
		return order.ItemLine{}, err
	}

	price := m.Price()
	if in.UnitPrice != nil {
		price = *in.UnitPrice
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = m.Name()
	}

	return order.ItemLine{
		MenuItemID: m.ID(),
		Name:       name,
		Quantity:   in.Quantity,
		UnitPrice:  price,
		Notes:      in.Notes,
	}, nil
}
