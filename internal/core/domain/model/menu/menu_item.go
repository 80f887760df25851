package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const CodeMenuItemNotAvailable = "MenuItemNotAvailable"

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	ErrMenuItemNotAvailable = errs.NewRuleViolation(CodeMenuItemNotAvailable,
		"menu item is not available")
)

// Flags are the kitchen relevant properties of a menu item.
type Flags struct {
	Available       bool
	RequiresCooking bool
	QuickCook       bool
}

// MenuItem is a dish or drink as offered on the menu.
type MenuItem struct {
	id       kernel.UUID
	name     string
	category string
	price    decimal.Decimal
	flags    Flags

	isConstructed bool
}

func NewMenuItem(id kernel.UUID, name, category string, price decimal.Decimal, flags Flags) (*MenuItem, error) {
	m := &MenuItem{
		category:      strings.TrimSpace(category),
		flags:         flags,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

func (m *MenuItem) Flags() Flags {
	return m.flags
}

func (m *MenuItem) IsAvailable() bool {
	return m.flags.Available
}

func (m *MenuItem) RequiresCooking() bool {
	return m.flags.RequiresCooking
}

func (m *MenuItem) IsQuickCook() bool {
	return m.flags.QuickCook
}

// EnsureAvailable fails with ErrMenuItemNotAvailable for items taken off the menu.
func (m *MenuItem) EnsureAvailable() error {
	if !m.flags.Available {
		return ErrMenuItemNotAvailable.
			With("menu_item_id", m.id.String()).
			With("name", m.name)
	}
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}
