// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and the payment live in their own tables and are saved together with the order.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number        string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Type          int             `gorm:"type:smallint;not null"`
	Status        int             `gorm:"type:smallint;not null;index"`
	TableID       *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName  string          `gorm:"type:varchar(255)"`
	CustomerPhone string          `gorm:"type:varchar(64)"`
	Notes         string          `gorm:"type:text"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	PaidAt        *time.Time
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment       *PaymentDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one dish line of an order.
type OrderItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"type:int;not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Notes      string          `gorm:"type:text"`
	Status     int             `gorm:"type:smallint;not null;index"`
	StartedAt  *time.Time
	ReadyAt    *time.Time
	ServedAt   *time.Time
	CanceledAt *time.Time
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO stores the settlement of a paid order.
type PaymentDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	PaidAt   time.Time       `gorm:"not null"`
	Total    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Tendered decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Method   int             `gorm:"type:smallint;not null"`
	Notes    string          `gorm:"type:text"`
}

func (PaymentDTO) TableName() string {
	return "order_payments"
}

// fromDomain converts an order aggregate with its items and payment to the database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var tableID *uuid.UUID
	if id := o.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			Position:   item.Position(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Notes:      item.Notes(),
			Status:     int(item.Status()),
			StartedAt:  item.StartedAt(),
			ReadyAt:    item.ReadyAt(),
			ServedAt:   item.ServedAt(),
			CanceledAt: item.CanceledAt(),
		})
	}

	var payment *PaymentDTO
	if p := o.Payment(); p != nil {
		payment = &PaymentDTO{
			ID:       p.ID().Bytes(),
			OrderID:  orderID,
			PaidAt:   p.PaidAt(),
			Total:    p.Total(),
			Tendered: p.Tendered(),
			Method:   int(p.Method()),
			Notes:    p.Notes(),
		}
	}

	return OrderDTO{
		ID:            orderID,
		Number:        o.Number().String(),
		Type:          int(o.Type()),
		Status:        int(o.Status()),
		TableID:       tableID,
		CustomerName:  o.Customer().Name,
		CustomerPhone: o.Customer().Phone,
		Notes:         o.Notes(),
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
		PaidAt:        o.PaidAt(),
		Items:         items,
		Payment:       payment,
	}
}

// toDomain rebuilds the aggregate using RestoreOrder. Items must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var payment *order.Payment
	if dto.Payment != nil {
		payment, err = paymentToDomain(*dto.Payment)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.OrderState{
		ID:        id,
		Number:    order.Number(dto.Number),
		Type:      order.Type(dto.Type),
		Status:    order.Status(dto.Status),
		TableID:   tableID,
		Customer:  order.Customer{Name: dto.CustomerName, Phone: dto.CustomerPhone},
		Notes:     dto.Notes,
		CreatedAt: dto.CreatedAt,
		PaidAt:    dto.PaidAt,
		Items:     items,
		Payment:   payment,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(order.ItemState{
		ID:       id,
		OrderID:  orderID,
		Position: dto.Position,
		Line: order.ItemLine{
			MenuItemID: menuItemID,
			Name:       dto.Name,
			Quantity:   dto.Quantity,
			UnitPrice:  dto.UnitPrice,
			Notes:      dto.Notes,
		},
		Status:     order.ItemStatus(dto.Status),
		StartedAt:  dto.StartedAt,
		ReadyAt:    dto.ReadyAt,
		ServedAt:   dto.ServedAt,
		CanceledAt: dto.CanceledAt,
	})
}

func paymentToDomain(dto PaymentDTO) (*order.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	return order.NewPayment(id, orderID, dto.PaidAt, dto.Total, dto.Tendered, order.Method(dto.Method), dto.Notes)
}
