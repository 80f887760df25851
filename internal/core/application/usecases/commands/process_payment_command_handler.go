package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// ProcessPaymentResult describes the recorded payment.
type ProcessPaymentResult struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	Total     decimal.Decimal
	Tendered  decimal.Decimal
	Change    decimal.Decimal
	Method    order.Method
	PaidAt    time.Time
}

// ProcessPaymentCommandHandler settles an order with the PaymentFinalizer and frees its table,
// both in one transaction.
//
// Example:
//
//	cmd, _ := NewProcessPaymentCommand(orderID, order.Cash, &cash, "")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrUnservedItemsRemain):
//	    // serve or cancel the remaining dishes first
//	case errors.Is(err, services.ErrPaymentTooLow):
//	    // ask the cashier to check the amount
//	}
type ProcessPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	finalizer  services.PaymentFinalizer
	clock      kernel.Clock
}

func NewProcessPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	finalizer services.PaymentFinalizer,
	clock kernel.Clock,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		finalizer:  finalizer,
		clock:      clock,
	}
}

func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (ProcessPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	tableRepo := uow.TableRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	var (
		tbl      *table.Table
		releaser order.TableReleaser
	)
	if o.TableID() != nil {
		tbl, err = tableRepo.GetForUpdate(ctx, *o.TableID())
		if err != nil {
			return ProcessPaymentResult{}, err
		}
		releaser = tbl
	}

	payment, err := h.finalizer.Finalize(o, services.PaymentRequest{
		Method:   cmd.Method(),
		Tendered: cmd.CustomerMoney(),
		Notes:    cmd.Notes(),
	}, kernel.NewUUID(), h.clock.Now(), releaser)
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ProcessPaymentResult{}, err
	}
	if tbl != nil {
		if err = tableRepo.Update(ctx, tbl); err != nil {
			return ProcessPaymentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessPaymentResult{}, err
	}

	return ProcessPaymentResult{
		PaymentID: payment.ID(),
		OrderID:   o.ID(),
		Total:     payment.Total(),
		Tendered:  payment.Tendered(),
		Change:    payment.Change(),
		Method:    payment.Method(),
		PaidAt:    payment.PaidAt(),
	}, nil
}
