package queries

import (
	"context"

	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// GetOrderForPaymentQueryHandler reads an order and its table label for the cashier.
type GetOrderForPaymentQueryHandler struct {
	orders ports.OrderRepository
	tables ports.TableRepository
}

func NewGetOrderForPaymentQueryHandler(
	orders ports.OrderRepository,
	tables ports.TableRepository,
) GetOrderForPaymentQueryHandler {
	return GetOrderForPaymentQueryHandler{orders: orders, tables: tables}
}

func (h GetOrderForPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderForPaymentQuery,
) (GetOrderForPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderForPaymentQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderForPaymentQueryResponse{}, err
	}

	tableNumber := ""
	if o.Type() == order.DineIn && o.TableID() != nil {
		tbl, err := h.tables.Get(ctx, *o.TableID())
		if err != nil {
			return GetOrderForPaymentQueryResponse{}, err
		}
		tableNumber = tbl.Label()
	}

	total := o.Total()
	response := GetOrderForPaymentQueryResponse{
		OrderID:         o.ID(),
		Number:          o.Number(),
		Type:            o.Type(),
		Status:          o.Status(),
		TableLabel:      notification.Label(o, tableNumber),
		Customer:        o.Customer(),
		Items:           make([]PaymentItemView, 0, len(o.Items())),
		Total:           total,
		MinimumTendered: services.MinimumTendered(total),
		UnservedCount:   o.UnservedItemsCount(),
	}
	response.CanPay = o.Status() == order.Serving && response.UnservedCount == 0

	for _, item := range o.Items() {
		response.Items = append(response.Items, PaymentItemView{
			ItemID:    item.ID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
			Status:    item.Status(),
		})
	}

	if p := o.Payment(); p != nil {
		response.Payment = &PaymentView{
			PaymentID: p.ID(),
			Method:    p.Method(),
			Tendered:  p.Tendered(),
			Change:    p.Change(),
			PaidAt:    p.PaidAt(),
		}
	}

	return response, nil
}
