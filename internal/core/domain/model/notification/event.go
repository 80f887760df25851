package notification

import (
	"time"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/order"
)

// TakeawayLabel names orders that are not seated at a table.
const TakeawayLabel = "Takeaway"

// Kind identifies what happened.
type Kind string

const (
	NewOrder        Kind = "NewOrder"
	ItemsAdded      Kind = "ItemsAdded"
	ItemRemoved     Kind = "ItemRemoved"
	QuantityUpdated Kind = "QuantityUpdated"
	ItemServed      Kind = "ItemServed"
	LowStock        Kind = "LowStock"
)

// RoutingKey is the topic under which the kind is published.
func (k Kind) RoutingKey() string {
	switch k {
	case NewOrder:
		return "order.created"
	case ItemsAdded:
		return "order.items.added"
	case ItemRemoved:
		return "order.items.removed"
	case QuantityUpdated:
		return "order.items.quantity_updated"
	case ItemServed:
		return "order.items.served"
	case LowStock:
		return "inventory.low_stock"
	default:
		return "unknown"
	}
}

// ItemInfo is the part of an order item that staff need to see.
type ItemInfo struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// StockInfo describes an ingredient that ran low.
type StockInfo struct {
	IngredientID string `json:"ingredient_id"`
	Name         string `json:"name"`
	Unit         string `json:"unit,omitempty"`
	Current      int    `json:"current"`
	Minimum      int    `json:"minimum"`
}

// Event is a fire-and-forget message for staff screens and devices.
type Event struct {
	Kind             Kind        `json:"kind"`
	OrderID          string      `json:"order_id,omitempty"`
	OrderNumber      string      `json:"order_number,omitempty"`
	OrderType        string      `json:"order_type,omitempty"`
	TableLabel       string      `json:"table_label,omitempty"`
	Items            []ItemInfo  `json:"items,omitempty"`
	PreviousQuantity int         `json:"previous_quantity,omitempty"`
	Stock            []StockInfo `json:"stock,omitempty"`
	OccurredAt       time.Time   `json:"occurred_at"`
}

// Label returns the table number for dine-in orders and TakeawayLabel otherwise.
func Label(o *order.Order, tableNumber string) string {
	if o.Type() == order.DineIn && tableNumber != "" {
		return tableNumber
	}
	return TakeawayLabel
}

func forOrder(kind Kind, o *order.Order, label string, at time.Time, items ...*order.Item) Event {
	infos := make([]ItemInfo, 0, len(items))
	for _, it := range items {
		infos = append(infos, ItemInfo{
			ItemID:   it.ID().String(),
			Name:     it.Name(),
			Quantity: it.Quantity(),
		})
	}
	return Event{
		Kind:        kind,
		OrderID:     o.ID().String(),
		OrderNumber: o.Number().String(),
		OrderType:   o.Type().String(),
		TableLabel:  label,
		Items:       infos,
		OccurredAt:  at,
	}
}

func NewOrderEvent(o *order.Order, label string, at time.Time) Event {
	return forOrder(NewOrder, o, label, at, o.Items()...)
}

func ItemsAddedEvent(o *order.Order, label string, items []*order.Item, at time.Time) Event {
	return forOrder(ItemsAdded, o, label, at, items...)
}

func ItemRemovedEvent(o *order.Order, label string, item *order.Item, at time.Time) Event {
	return forOrder(ItemRemoved, o, label, at, item)
}

func QuantityUpdatedEvent(o *order.Order, label string, item *order.Item, previous int, at time.Time) Event {
	e := forOrder(QuantityUpdated, o, label, at, item)
	e.PreviousQuantity = previous
	return e
}

func ItemServedEvent(o *order.Order, label string, item *order.Item, at time.Time) Event {
	return forOrder(ItemServed, o, label, at, item)
}

func LowStockEvent(levels []inventory.StockLevel, at time.Time) Event {
	stock := make([]StockInfo, 0, len(levels))
	for _, l := range levels {
		stock = append(stock, StockInfo{
			IngredientID: l.IngredientID.String(),
			Name:         l.Name,
			Unit:         l.Unit,
			Current:      l.Current,
			Minimum:      l.Minimum,
		})
	}
	return Event{Kind: LowStock, Stock: stock, OccurredAt: at}
}
