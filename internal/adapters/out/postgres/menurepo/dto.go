// Package menurepo persists menu items.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(64);index"`
	Price           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Available       bool            `gorm:"not null;default:true"`
	RequiresCooking bool            `gorm:"not null;default:true"`
	QuickCook       bool            `gorm:"not null;default:false"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(m *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              m.ID().Bytes(),
		Name:            m.Name(),
		Category:        m.Category(),
		Price:           m.Price(),
		Available:       m.IsAvailable(),
		RequiresCooking: m.RequiresCooking(),
		QuickCook:       m.IsQuickCook(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.NewMenuItem(id, dto.Name, dto.Category, dto.Price, menu.Flags{
		Available:       dto.Available,
		RequiresCooking: dto.RequiresCooking,
		QuickCook:       dto.QuickCook,
	})
}
