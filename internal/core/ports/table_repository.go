package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for dining tables.
type TableRepository interface {
	Add(ctx context.Context, aggregate *table.Table) error
	Update(ctx context.Context, aggregate *table.Table) error

	// Get returns errs.ErrObjectNotFound for unknown tables.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetForUpdate locks the table row for the rest of the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetByIDs loads several tables at once; unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.Table, error)
}
