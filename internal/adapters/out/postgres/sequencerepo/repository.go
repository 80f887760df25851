// Package sequencerepo allocates per-day order numbers.
package sequencerepo

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const dayLayout = "20060102"

// OrderSequenceDTO holds the last number handed out for a day.
type OrderSequenceDTO struct {
	Day  string `gorm:"type:char(8);primaryKey"`
	Last int    `gorm:"type:int;not null"`
}

func (OrderSequenceDTO) TableName() string {
	return "order_sequences"
}

// GormOrderNumberAllocator increments the day counter with a single upsert. Run inside the
// order transaction, the row stays locked until commit, so two orders never share a number
// and a rolled back order gives its number back.
type GormOrderNumberAllocator struct {
	db *gorm.DB
}

func NewGormOrderNumberAllocator(db *gorm.DB) *GormOrderNumberAllocator {
	return &GormOrderNumberAllocator{db: db}
}

func (a *GormOrderNumberAllocator) Next(ctx context.Context, day time.Time) (order.Number, error) {
	var seq int
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (day, last)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET last = order_sequences.last + 1
		RETURNING last
	`, day.Format(dayLayout)).Scan(&seq).Error
	if err != nil {
		return "", err
	}

	return order.NewNumber(day, seq)
}
