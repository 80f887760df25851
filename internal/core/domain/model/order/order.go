package order

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// TableReleaser frees the table an order was occupying once the order is paid.
type TableReleaser interface {
	ReleaseOrder(orderID kernel.UUID) error
}

// Customer holds contact details required for orders that leave the restaurant.
type Customer struct {
	Name  string
	Phone string
}

// Order is the aggregate root of a restaurant order and its items.
//
// Order follows these invariants:
//   - total always equals the sum of unit price times quantity over non-canceled items
//   - items are only added, removed or changed while the order is Serving
//   - a Serving order with items never loses its last item
//   - the order becomes Paid once, after every item is Served or Canceled and a payment is recorded
//
// A Paid order is read-only.
type Order struct {
	id        kernel.UUID
	number    Number
	orderType Type
	status    Status
	tableID   *kernel.UUID
	customer  Customer
	notes     string
	total     decimal.Decimal
	createdAt time.Time
	paidAt    *time.Time
	items     []*Item
	payment   *Payment

	isConstructed bool
}

// NewOrder creates an empty Serving order. Items are appended with AddItems and the
// result checked with ValidateForConfirmation before it is persisted.
func NewOrder(
	id kernel.UUID,
	number Number,
	orderType Type,
	tableID *kernel.UUID,
	customer Customer,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Serving,
		customer: Customer{
			Name:  strings.TrimSpace(customer.Name),
			Phone: strings.TrimSpace(customer.Phone),
		},
		notes:         strings.TrimSpace(notes),
		total:         decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setType(orderType),
		o.setTable(tableID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// OrderState carries persisted order values for RestoreOrder.
type OrderState struct {
	ID        kernel.UUID
	Number    Number
	Type      Type
	Status    Status
	TableID   *kernel.UUID
	Customer  Customer
	Notes     string
	CreatedAt time.Time
	PaidAt    *time.Time
	Items     []*Item
	Payment   *Payment
}

// RestoreOrder rebuilds an order from storage. The total is recomputed from the items.
func RestoreOrder(state OrderState) (*Order, error) {
	o, err := NewOrder(state.ID, state.Number, state.Type, state.TableID, state.Customer, state.Notes, state.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := state.Status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range state.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if state.Payment != nil {
		if err := state.Payment.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = state.Status
	o.paidAt = state.PaidAt
	o.items = append(o.items, state.Items...)
	o.payment = state.Payment
	o.RecalculateTotal()
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

// TableID returns the referenced table, nil for orders without one.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) Payment() *Payment {
	return o.payment
}

// Items returns the items in insertion order. The slice is a copy; the items are not.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item looks an item up by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, newItemNotFoundError(itemID.String())
}

// AddItems appends one Pending item per line with a fresh identifier.
func (o *Order) AddItems(lines ...ItemLine) ([]*Item, error) {
	if err := o.status.ValidateActive(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	next := o.nextPosition()
	added := make([]*Item, 0, len(lines))
	var errList []error
	for idx, line := range lines {
		item, err := NewItem(kernel.NewUUID(), o.id, next+idx, line)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		added = append(added, item)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o.items = append(o.items, added...)
	o.RecalculateTotal()
	return added, nil
}

// RemoveItem drops a Pending item. The last item of an order cannot be removed.
func (o *Order) RemoveItem(itemID kernel.UUID) (*Item, error) {
	if err := o.status.ValidateActive(); err != nil {
		return nil, err
	}
	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}
	if item.status != Pending {
		return nil, ErrItemNotPending.With("item_id", itemID.String()).With("status", item.status.String())
	}
	if len(o.items) <= 1 {
		return nil, ErrCannotRemoveLastItem.With("order_id", o.id.String())
	}

	kept := o.items[:0]
	for _, it := range o.items {
		if !it.id.IsEqual(itemID) {
			kept = append(kept, it)
		}
	}
	o.items = kept
	o.RecalculateTotal()
	return item, nil
}

// CancelItem marks a Pending item Canceled; it stops counting towards the total.
func (o *Order) CancelItem(itemID kernel.UUID, now time.Time) (*Item, error) {
	return o.transitionItem(itemID, Canceled, now)
}

// UpdateItemQuantity changes the quantity of a Pending item and returns the previous quantity.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity int) (int, error) {
	if err := o.status.ValidateActive(); err != nil {
		return 0, err
	}
	item, err := o.Item(itemID)
	if err != nil {
		return 0, err
	}

	previous := item.quantity
	if err := item.changeQuantity(quantity); err != nil {
		return 0, err
	}
	o.RecalculateTotal()
	return previous, nil
}

// StartItemPreparation moves a Pending item to Preparing and stamps its start time.
func (o *Order) StartItemPreparation(itemID kernel.UUID, now time.Time) (*Item, error) {
	return o.transitionItem(itemID, Preparing, now)
}

// MarkItemReady moves a Preparing item to Ready and stamps its completion time.
func (o *Order) MarkItemReady(itemID kernel.UUID, now time.Time) (*Item, error) {
	return o.transitionItem(itemID, Ready, now)
}

// MarkItemServed is the serving staff path: Ready -> Served.
func (o *Order) MarkItemServed(itemID kernel.UUID, now time.Time) (*Item, error) {
	return o.transitionItem(itemID, Served, now)
}

// ApplyKitchenStatus moves an item to a status the kitchen is allowed to set.
// Targets other than Preparing, Ready and Canceled fail with ErrUnsupportedStatusTransition
// before the item guard runs.
func (o *Order) ApplyKitchenStatus(itemID kernel.UUID, target ItemStatus, now time.Time) (*Item, error) {
	if err := ValidateKitchenTarget(target); err != nil {
		return nil, err
	}
	return o.transitionItem(itemID, target, now)
}

// ValidateKitchenTarget accepts Preparing, Ready and Canceled only.
func ValidateKitchenTarget(target ItemStatus) error {
	switch target {
	case Preparing, Ready, Canceled:
		return nil
	default:
		return ErrUnsupportedStatusTransition.With("target", target.String())
	}
}

// RecalculateTotal recomputes and returns the total from the items.
func (o *Order) RecalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
	return total
}

// ValidateForConfirmation checks the order can be accepted. The failing rule is
// reported under the "rule" context key.
func (o *Order) ValidateForConfirmation() error {
	if len(o.items) == 0 {
		return newConfirmationError(RuleItemsRequired)
	}
	if o.orderType.RequiresTable() && o.tableID == nil {
		return newConfirmationError(RuleTableRequired)
	}
	if o.orderType.RequiresCustomerContact() && (o.customer.Name == "" || o.customer.Phone == "") {
		return newConfirmationError(RuleCustomerInfoRequired)
	}
	if !o.RecalculateTotal().IsPositive() {
		return newConfirmationError(RulePositiveTotal)
	}
	return nil
}

// UnservedItemsCount counts items that are neither Served nor Canceled.
func (o *Order) UnservedItemsCount() int {
	count := 0
	for _, item := range o.items {
		if !item.status.IsSettled() {
			count++
		}
	}
	return count
}

// AttachPayment records the settlement of a Serving order.
func (o *Order) AttachPayment(p *Payment) error {
	if err := o.status.ValidateActive(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if o.payment != nil {
		return ErrPaymentAlreadyRecorded.With("order_id", o.id.String())
	}
	if !p.orderID.IsEqual(o.id) {
		return errs.NewValueIsInvalidError("payment order id")
	}
	o.payment = p
	return nil
}

// CompletePayment moves the order to Paid and releases its table through releaser,
// which may be nil for orders without a table.
func (o *Order) CompletePayment(now time.Time, releaser TableReleaser) error {
	if o.status == Paid {
		return ErrOrderAlreadyPaid
	}
	if err := o.status.ValidateActive(); err != nil {
		return err
	}
	if count := o.UnservedItemsCount(); count > 0 {
		return newUnservedItemsRemainError(count)
	}
	if o.payment == nil {
		return ErrPaymentNotRecorded.With("order_id", o.id.String())
	}

	next, err := o.status.Pay()
	if err != nil {
		return err
	}

	if o.tableID != nil && releaser != nil {
		if err := releaser.ReleaseOrder(o.id); err != nil {
			return err
		}
	}

	paidAt := now
	o.status = next
	o.paidAt = &paidAt
	return nil
}

func (o *Order) transitionItem(itemID kernel.UUID, target ItemStatus, now time.Time) (*Item, error) {
	if err := o.status.ValidateActive(); err != nil {
		return nil, err
	}
	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}
	if err := item.transition(target, now); err != nil {
		return nil, err
	}
	o.RecalculateTotal()
	return item, nil
}

func (o *Order) nextPosition() int {
	last := 0
	for _, item := range o.items {
		if item.position > last {
			last = item.position
		}
	}
	return last + 1
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setTable(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	id := *tableID
	o.tableID = &id
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = at
	return nil
}
