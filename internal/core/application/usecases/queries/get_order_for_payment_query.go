package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderForPaymentQueryIsNotConstructed = errors.New(
	"GetOrderForPaymentQuery must be created via NewGetOrderForPaymentQuery constructor",
)

// GetOrderForPaymentQuery loads what the cashier needs to settle an order.
//
// Example:
//
//	query, err := NewGetOrderForPaymentQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if !view.CanPay {
//	    fmt.Printf("%d dishes still on their way\n", view.UnservedCount)
//	}
type GetOrderForPaymentQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderForPaymentQuery(orderID kernel.UUID) (GetOrderForPaymentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderForPaymentQuery{}, err
	}
	return GetOrderForPaymentQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderForPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderForPaymentQueryIsNotConstructed)
}

func (q GetOrderForPaymentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PaymentItemView is a billed line.
type PaymentItemView struct {
	ItemID    kernel.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Status    order.ItemStatus
}

// PaymentView is the recorded payment of a paid order.
type PaymentView struct {
	PaymentID kernel.UUID
	Method    order.Method
	Tendered  decimal.Decimal
	Change    decimal.Decimal
	PaidAt    time.Time
}

// GetOrderForPaymentQueryResponse summarizes an order at the till.
// CanPay is false while dishes are unserved or once the order is paid.
type GetOrderForPaymentQueryResponse struct {
	OrderID         kernel.UUID
	Number          order.Number
	Type            order.Type
	Status          order.Status
	TableLabel      string
	Customer        order.Customer
	Items           []PaymentItemView
	Total           decimal.Decimal
	MinimumTendered decimal.Decimal
	UnservedCount   int
	CanPay          bool
	Payment         *PaymentView
}
