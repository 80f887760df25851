package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand settles an order. A nil customerMoney means the customer paid
// the exact total.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	method        order.Method
	customerMoney *decimal.Decimal
	notes         string

	guard guard.ConstructorGuard
}

func NewProcessPaymentCommand(
	orderID kernel.UUID,
	method order.Method,
	customerMoney *decimal.Decimal,
	notes string,
) (ProcessPaymentCommand, error) {
	var moneyErr error
	if customerMoney != nil && customerMoney.IsNegative() {
		moneyErr = errs.NewValueIsInvalidErrorWithCause("customer money", fmt.Errorf("%s is negative", customerMoney))
	}
	if err := errors.Join(orderID.Validate(), method.Validate(), moneyErr); err != nil {
		return ProcessPaymentCommand{}, err
	}

	cmd := ProcessPaymentCommand{
		orderID: orderID,
		method:  method,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}
	if customerMoney != nil {
		money := *customerMoney
		cmd.customerMoney = &money
	}
	return cmd, nil
}

func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ProcessPaymentCommand) Method() order.Method {
	return c.method
}

func (c ProcessPaymentCommand) CustomerMoney() *decimal.Decimal {
	return c.customerMoney
}

func (c ProcessPaymentCommand) Notes() string {
	return c.notes
}
