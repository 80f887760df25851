package services

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const CodePaymentTooLow = "PaymentTooLow"

// ErrPaymentTooLow rejects tendered amounts below half of the order total.
var ErrPaymentTooLow = errs.NewRuleViolation(CodePaymentTooLow,
	"tendered amount is below the accepted minimum")

var minimumTenderedShare = decimal.NewFromFloat(0.5)

// PaymentRequest is what the cashier entered. Tendered defaults to the order total when nil.
type PaymentRequest struct {
	Method   order.Method
	Tendered *decimal.Decimal
	Notes    string
}

// PaymentFinalizer settles an order: it checks that everything was served or canceled,
// validates the tendered amount, records the payment and closes the order.
type PaymentFinalizer struct{}

func NewPaymentFinalizer() PaymentFinalizer {
	return PaymentFinalizer{}
}

// Finalize records a payment for o and moves it to Paid, releasing its table through releaser.
//
// Errors:
//   - order.ErrOrderNotActive / order.ErrOrderAlreadyPaid for settled orders
//   - order.ErrUnservedItemsRemain when an item is neither Served nor Canceled
//   - ErrPaymentTooLow when the tendered amount is below 50% of the total
func (f PaymentFinalizer) Finalize(
	o *order.Order,
	req PaymentRequest,
	paymentID kernel.UUID,
	now time.Time,
	releaser order.TableReleaser,
) (*order.Payment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() == order.Paid {
		return nil, order.ErrOrderAlreadyPaid
	}
	if err := o.Status().ValidateActive(); err != nil {
		return nil, err
	}
	if count := o.UnservedItemsCount(); count > 0 {
		return nil, order.ErrUnservedItemsRemain.With("count", count)
	}

	total := o.RecalculateTotal()
	tendered := total
	if req.Tendered != nil {
		tendered = *req.Tendered
	}

	minimum := MinimumTendered(total)
	if tendered.LessThan(minimum) {
		return nil, ErrPaymentTooLow.
			With("total", total.String()).
			With("tendered", tendered.String()).
			With("minimum", minimum.String())
	}

	payment, err := order.NewPayment(paymentID, o.ID(), now, total, tendered, req.Method, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := o.AttachPayment(payment); err != nil {
		return nil, err
	}
	if err := o.CompletePayment(now, releaser); err != nil {
		return nil, err
	}
	return payment, nil
}

// MinimumTendered is the smallest amount accepted for an order of the given total.
func MinimumTendered(total decimal.Decimal) decimal.Decimal {
	return total.Mul(minimumTenderedShare)
}
