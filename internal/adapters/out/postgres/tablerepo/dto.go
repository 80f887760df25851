// Package tablerepo persists dining tables.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type TableDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Capacity     int       `gorm:"type:int;not null"`
	Status       int       `gorm:"type:smallint;not null"`
	ActiveOrders int       `gorm:"type:int;not null;default:0"`
}

func (TableDTO) TableName() string {
	return "dining_tables"
}

func fromDomain(t *table.Table) TableDTO {
	return TableDTO{
		ID:           t.ID().Bytes(),
		Number:       t.Number(),
		Capacity:     t.Capacity(),
		Status:       int(t.Status()),
		ActiveOrders: t.ActiveOrders(),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return table.RestoreTable(id, dto.Number, dto.Capacity, table.Status(dto.Status), dto.ActiveOrders)
}
