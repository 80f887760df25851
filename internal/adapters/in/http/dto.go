package http

import (
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type NewItem struct {
	MenuItemID openapi_types.UUID `json:"menu_item_id"`
	Quantity   int                `json:"quantity"`
	UnitPrice  *decimal.Decimal   `json:"unit_price,omitempty"`
	Name       string             `json:"name,omitempty"`
	Notes      string             `json:"notes,omitempty"`
}

type NewOrder struct {
	Type          string              `json:"type"`
	TableID       *openapi_types.UUID `json:"table_id,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	Items         []NewItem           `json:"items"`
}

type NewItems struct {
	Items []NewItem `json:"items"`
}

type QuantityChange struct {
	Quantity int `json:"quantity"`
}

type KitchenStatusChange struct {
	Status string `json:"status"`
}

type NewPayment struct {
	Method        string           `json:"method"`
	CustomerMoney *decimal.Decimal `json:"customer_money,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

type Warning struct {
	Source  string         `json:"source"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

type CreatedOrder struct {
	OrderID  string          `json:"order_id"`
	Number   string          `json:"number"`
	Total    decimal.Decimal `json:"total"`
	ItemIDs  []string        `json:"item_ids"`
	Warnings []Warning       `json:"warnings"`
}

type ItemsAdded struct {
	ItemIDs  []string        `json:"item_ids"`
	Total    decimal.Decimal `json:"total"`
	Warnings []Warning       `json:"warnings"`
}

type ItemChange struct {
	Total    decimal.Decimal `json:"total"`
	Warnings []Warning       `json:"warnings"`
}

type ActiveOrder struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Type          string          `json:"type"`
	TableNumber   string          `json:"table_number,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Total         decimal.Decimal `json:"total"`
	ItemCount     int             `json:"item_count"`
	UnservedCount int             `json:"unserved_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ScoreBreakdown struct {
	QuickCook int `json:"quick_cook"`
	Context   int `json:"context"`
	Wait      int `json:"wait"`
}

type RankedItem struct {
	OrderID     string         `json:"order_id"`
	OrderNumber string         `json:"order_number"`
	OrderType   string         `json:"order_type"`
	TableLabel  string         `json:"table_label"`
	ItemID      string         `json:"item_id"`
	MenuItemID  string         `json:"menu_item_id"`
	Name        string         `json:"name"`
	Quantity    int            `json:"quantity"`
	Notes       string         `json:"notes,omitempty"`
	Status      string         `json:"status"`
	QuickCook   bool           `json:"quick_cook"`
	WaitMinutes int            `json:"wait_minutes"`
	Score       int            `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	OrderedAt   time.Time      `json:"ordered_at"`
}

type TableGroup struct {
	Label           string       `json:"label"`
	OrderType       string       `json:"order_type"`
	ItemCount       int          `json:"item_count"`
	MaxScore        int          `json:"max_score"`
	EarliestOrderAt time.Time    `json:"earliest_order_at"`
	Items           []RankedItem `json:"items"`
}

type BillItem struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Status    string          `json:"status"`
}

type Payment struct {
	PaymentID string          `json:"payment_id"`
	OrderID   string          `json:"order_id"`
	Method    string          `json:"method"`
	Total     decimal.Decimal `json:"total"`
	Tendered  decimal.Decimal `json:"tendered"`
	Change    decimal.Decimal `json:"change"`
	PaidAt    time.Time       `json:"paid_at"`
}

type Bill struct {
	OrderID         string          `json:"order_id"`
	Number          string          `json:"number"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	TableLabel      string          `json:"table_label"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	Items           []BillItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	MinimumTendered decimal.Decimal `json:"minimum_tendered"`
	UnservedCount   int             `json:"unserved_count"`
	CanPay          bool            `json:"can_pay"`
	Payment         *Payment        `json:"payment,omitempty"`
}

type Shortage struct {
	IngredientID   string `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
	Required       int    `json:"required"`
	Current        int    `json:"current"`
	Missing        int    `json:"missing"`
}

type Availability struct {
	MenuItemID string     `json:"menu_item_id"`
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	OnMenu     bool       `json:"on_menu"`
	InStock    bool       `json:"in_stock"`
	Shortages  []Shortage `json:"shortages"`
}

func toItemInputs(items []NewItem) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		menuItemID, err := kernel.UUIDFromBytes(item.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.ItemInput{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Name:       item.Name,
			Notes:      item.Notes,
		})
	}
	return inputs, nil
}

func toWarnings(warnings []errs.DependencyWarning) []Warning {
	out := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		message := w.Message
		if w.Cause != nil {
			message += ": " + w.Cause.Error()
		}
		out = append(out, Warning{Source: w.Source, Message: message, Context: w.Context})
	}
	return out
}

func toIDs(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func toRankedItems(items []services.RankedItem) []RankedItem {
	out := make([]RankedItem, 0, len(items))
	for _, item := range items {
		out = append(out, RankedItem{
			OrderID:     item.OrderID.String(),
			OrderNumber: item.OrderNumber.String(),
			OrderType:   item.OrderType.String(),
			TableLabel:  item.Label,
			ItemID:      item.ItemID.String(),
			MenuItemID:  item.MenuItemID.String(),
			Name:        item.Name,
			Quantity:    item.Quantity,
			Notes:       item.Notes,
			Status:      item.Status.String(),
			QuickCook:   item.QuickCook,
			WaitMinutes: item.WaitMinutes,
			Score:       item.Score,
			Breakdown: ScoreBreakdown{
				QuickCook: item.Breakdown.QuickCook,
				Context:   item.Breakdown.Context,
				Wait:      item.Breakdown.Wait,
			},
			OrderedAt: item.OrderedAt,
		})
	}
	return out
}

func toTableGroups(groups []services.TableGroup) []TableGroup {
	out := make([]TableGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, TableGroup{
			Label:           g.Label,
			OrderType:       g.OrderType.String(),
			ItemCount:       g.ItemCount,
			MaxScore:        g.MaxScore,
			EarliestOrderAt: g.EarliestOrderAt,
			Items:           toRankedItems(g.Items),
		})
	}
	return out
}

func toActiveOrders(orders []queries.GetActiveOrdersQueryResponse) []ActiveOrder {
	out := make([]ActiveOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, ActiveOrder{
			ID:            o.ID.String(),
			Number:        o.Number.String(),
			Type:          o.Type.String(),
			TableNumber:   o.TableNumber,
			CustomerName:  o.CustomerName,
			Total:         o.Total,
			ItemCount:     o.ItemCount,
			UnservedCount: o.UnservedCount,
			CreatedAt:     o.CreatedAt,
		})
	}
	return out
}

func toBill(view queries.GetOrderForPaymentQueryResponse) Bill {
	items := make([]BillItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, BillItem{
			ItemID:    item.ItemID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
			Status:    item.Status.String(),
		})
	}

	bill := Bill{
		OrderID:         view.OrderID.String(),
		Number:          view.Number.String(),
		Type:            view.Type.String(),
		Status:          view.Status.String(),
		TableLabel:      view.TableLabel,
		CustomerName:    view.Customer.Name,
		CustomerPhone:   view.Customer.Phone,
		Items:           items,
		Total:           view.Total,
		MinimumTendered: view.MinimumTendered,
		UnservedCount:   view.UnservedCount,
		CanPay:          view.CanPay,
	}
	if p := view.Payment; p != nil {
		bill.Payment = &Payment{
			PaymentID: p.PaymentID.String(),
			OrderID:   view.OrderID.String(),
			Method:    p.Method.String(),
			Total:     view.Total,
			Tendered:  p.Tendered,
			Change:    p.Change,
			PaidAt:    p.PaidAt,
		}
	}
	return bill
}

func toPayment(result commands.ProcessPaymentResult) Payment {
	return Payment{
		PaymentID: result.PaymentID.String(),
		OrderID:   result.OrderID.String(),
		Method:    result.Method.String(),
		Total:     result.Total,
		Tendered:  result.Tendered,
		Change:    result.Change,
		PaidAt:    result.PaidAt,
	}
}

func toAvailability(r queries.CheckMenuItemAvailabilityQueryResponse) Availability {
	shortages := make([]Shortage, 0, len(r.Shortages))
	for _, s := range r.Shortages {
		shortages = append(shortages, Shortage{
			IngredientID:   s.IngredientID.String(),
			IngredientName: s.IngredientName,
			Required:       s.Required,
			Current:        s.Current,
			Missing:        s.Missing,
		})
	}
	return Availability{
		MenuItemID: r.MenuItemID.String(),
		Name:       r.Name,
		Quantity:   r.Quantity,
		OnMenu:     r.OnMenu,
		InStock:    r.InStock,
		Shortages:  shortages,
	}
}
