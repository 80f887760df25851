package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemLine describes an item to be appended to an order.
type ItemLine struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	Notes      string
}

// Item is a single line of an order. It is owned by the Order aggregate and
// only mutated through it.
type Item struct {
	id         kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  decimal.Decimal
	notes      string
	status     ItemStatus
	position   int

	startedAt  *time.Time
	readyAt    *time.Time
	servedAt   *time.Time
	canceledAt *time.Time

	isConstructed bool
}

// NewItem creates a Pending item.
func NewItem(id, orderID kernel.UUID, position int, line ItemLine) (*Item, error) {
	item := &Item{
		status:        Pending,
		notes:         strings.TrimSpace(line.Notes),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setMenuItemID(line.MenuItemID),
		item.setName(line.Name),
		item.setQuantity(line.Quantity),
		item.setUnitPrice(line.UnitPrice),
		item.setPosition(position),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// ItemState carries persisted item values for RestoreItem.
type ItemState struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Position   int
	Line       ItemLine
	Status     ItemStatus
	StartedAt  *time.Time
	ReadyAt    *time.Time
	ServedAt   *time.Time
	CanceledAt *time.Time
}

// RestoreItem rebuilds an item from storage.
func RestoreItem(state ItemState) (*Item, error) {
	item, err := NewItem(state.ID, state.OrderID, state.Position, state.Line)
	if err != nil {
		return nil, err
	}
	if err := state.Status.Validate(); err != nil {
		return nil, err
	}

	item.status = state.Status
	item.startedAt = state.StartedAt
	item.readyAt = state.ReadyAt
	item.servedAt = state.ServedAt
	item.canceledAt = state.CanceledAt
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) Status() ItemStatus {
	return i.status
}

func (i *Item) Position() int {
	return i.position
}

func (i *Item) StartedAt() *time.Time {
	return i.startedAt
}

func (i *Item) ReadyAt() *time.Time {
	return i.readyAt
}

func (i *Item) ServedAt() *time.Time {
	return i.servedAt
}

func (i *Item) CanceledAt() *time.Time {
	return i.canceledAt
}

// Subtotal is unit price times quantity, or zero for a canceled item.
func (i *Item) Subtotal() decimal.Decimal {
	if i.status == Canceled {
		return decimal.Zero
	}
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// CanTransitionTo reports whether the item may move to target.
func (i *Item) CanTransitionTo(target ItemStatus) bool {
	return i.status.CanTransitionTo(target)
}

func (i *Item) transition(target ItemStatus, now time.Time) error {
	next, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}

	at := now
	switch next {
	case Preparing:
		i.startedAt = &at
	case Ready:
		i.readyAt = &at
	case Served:
		i.servedAt = &at
	case Canceled:
		i.canceledAt = &at
	}
	i.status = next
	return nil
}

func (i *Item) changeQuantity(quantity int) error {
	if i.status != Pending {
		return ErrItemNotPending.With("item_id", i.id.String()).With("status", i.status.String())
	}
	return i.setQuantity(quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.orderID = id
	return nil
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setPosition(position int) error {
	if position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("position is invalid", fmt.Errorf("%d is not greater than 0", position))
	}
	i.position = position
	return nil
}
