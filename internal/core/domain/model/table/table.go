package table

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const CodeTableNotAvailable = "TableNotAvailable"

var (
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

	ErrTableNotAvailable = errs.NewRuleViolation(CodeTableNotAvailable,
		"table is neither available nor occupied")
)

// Table is a physical table in the dining room. It tracks how many unpaid orders
// are seated at it; the table is Occupied while that count is positive.
type Table struct {
	id           kernel.UUID
	number       string
	capacity     int
	status       Status
	activeOrders int

	isConstructed bool
}

func NewTable(id kernel.UUID, number string, capacity int) (*Table, error) {
	t := &Table{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}
	return t, nil
}

func RestoreTable(id kernel.UUID, number string, capacity int, status Status, activeOrders int) (*Table, error) {
	t, err := NewTable(id, number, capacity)
	if err != nil {
		return nil, err
	}

	var countErr error
	if activeOrders < 0 {
		countErr = errs.NewValueIsOutOfRangeError("active orders", activeOrders, 0, "unbounded")
	}
	if err := errors.Join(status.Validate(), countErr); err != nil {
		return nil, err
	}

	t.status = status
	t.activeOrders = activeOrders
	return t, nil
}

func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID {
	return t.id
}

func (t *Table) Number() string {
	return t.number
}

// Label is how the table is named towards staff.
func (t *Table) Label() string {
	return t.number
}

func (t *Table) Capacity() int {
	return t.capacity
}

func (t *Table) Status() Status {
	return t.status
}

func (t *Table) ActiveOrders() int {
	return t.activeOrders
}

// AssignOrder seats an order at the table. Only Available or Occupied tables accept orders.
func (t *Table) AssignOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !t.status.AcceptsOrders() {
		return ErrTableNotAvailable.
			With("table", t.number).
			With("status", t.status.String())
	}

	t.activeOrders++
	t.status = Occupied
	return nil
}

// ReleaseOrder is called when a seated order is paid. The table returns to
// Available once no unpaid order is left.
func (t *Table) ReleaseOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if t.activeOrders > 0 {
		t.activeOrders--
	}
	if t.activeOrders == 0 && t.status == Occupied {
		t.status = Available
	}
	return nil
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("table number")
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}
