package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenDashboardGroupedQueryIsNotConstructed = errors.New(
	"GetKitchenDashboardGroupedQuery must be created via NewGetKitchenDashboardGroupedQuery constructor",
)

// GetKitchenDashboardGroupedQuery asks for the cooking queue grouped by table
// (or by order number for takeaway and delivery).
type GetKitchenDashboardGroupedQuery struct {
	guard guard.ConstructorGuard
}

func NewGetKitchenDashboardGroupedQuery() GetKitchenDashboardGroupedQuery {
	return GetKitchenDashboardGroupedQuery{guard: guard.NewConstructorGuard()}
}

func (q GetKitchenDashboardGroupedQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenDashboardGroupedQueryIsNotConstructed)
}
