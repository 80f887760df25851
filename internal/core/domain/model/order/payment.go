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

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Method is the way a customer settles an order.
type Method int

const (
	UnknownMethod Method = iota
	Cash
	BankTransfer
	Credit
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod: "Unknown",
		Cash:          "Cash",
		BankTransfer:  "BankTransfer",
		Credit:        "Credit",
	}
}

func ParseMethod(s string) (Method, error) {
	for m, name := range getMethodStrings() {
		if m != UnknownMethod && name == s {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a valid payment method", s))
}

func (m Method) Validate() error {
	if m < Cash || m > Credit {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Payment is the single settlement record of an order.
type Payment struct {
	id       kernel.UUID
	orderID  kernel.UUID
	paidAt   time.Time
	total    decimal.Decimal
	tendered decimal.Decimal
	method   Method
	notes    string

	isConstructed bool
}

func NewPayment(
	id, orderID kernel.UUID,
	paidAt time.Time,
	total, tendered decimal.Decimal,
	method Method,
	notes string,
) (*Payment, error) {
	p := &Payment{
		paidAt:        paidAt,
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	var timeErr error
	if paidAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("paid at")
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		timeErr,
		p.setAmounts(total, tendered),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) Total() decimal.Decimal {
	return p.total
}

func (p *Payment) Tendered() decimal.Decimal {
	return p.tendered
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) Notes() string {
	return p.notes
}

// Change is the amount handed back to the customer, never negative.
func (p *Payment) Change() decimal.Decimal {
	change := p.tendered.Sub(p.total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *Payment) setAmounts(total, tendered decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("payment total is invalid", fmt.Errorf("%s is negative", total))
	}
	if tendered.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tendered amount is invalid", fmt.Errorf("%s is negative", tendered))
	}
	p.total = total
	p.tendered = tendered
	return nil
}

func (p *Payment) setMethod(m Method) error {
	if err := m.Validate(); err != nil {
		return err
	}
	p.method = m
	return nil
}
