package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads open orders directly from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the floor overview.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns Serving orders sorted by creation time and number.
// Canceled items are not counted.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.type,
			t.number,
			o.customer_name,
			o.total,
			o.created_at,
			COUNT(i.id) FILTER (WHERE i.status <> ?) AS item_count,
			COUNT(i.id) FILTER (WHERE i.status IN (?, ?, ?)) AS unserved_count
		FROM orders o
		LEFT JOIN dining_tables t ON t.id = o.table_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, t.number
		ORDER BY o.created_at, o.number
	`,
		int(order.Canceled),
		int(order.Pending), int(order.Preparing), int(order.Ready),
		int(order.Serving),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row         GetActiveOrdersQueryResponse
			id          uuid.UUID
			number      string
			orderType   int
			tableNumber sql.NullString
		)

		err = rows.Scan(
			&id,
			&number,
			&orderType,
			&tableNumber,
			&row.CustomerName,
			&row.Total,
			&row.CreatedAt,
			&row.ItemCount,
			&row.UnservedCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		row.Number = order.Number(number)
		row.Type = order.Type(orderType)
		row.TableNumber = tableNumber.String

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
