package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
)

// GetKitchenDashboardGroupedQueryHandler builds the grouped kitchen dashboard.
// Groups are sorted by their most urgent dish.
type GetKitchenDashboardGroupedQueryHandler struct {
	reader    KitchenReader
	scheduler services.KitchenPriorityScheduler
	clock     kernel.Clock
}

func NewGetKitchenDashboardGroupedQueryHandler(
	reader KitchenReader,
	scheduler services.KitchenPriorityScheduler,
	clock kernel.Clock,
) GetKitchenDashboardGroupedQueryHandler {
	return GetKitchenDashboardGroupedQueryHandler{
		reader:    reader,
		scheduler: scheduler,
		clock:     clock,
	}
}

func (h GetKitchenDashboardGroupedQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenDashboardGroupedQuery,
) ([]services.TableGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.reader.load(ctx)
	if err != nil {
		return nil, err
	}

	ranked := h.scheduler.Rank(snapshot.orders, snapshot.menuItems, snapshot.servedByTable, h.clock.Now())
	groups := h.scheduler.Group(ranked)
	if groups == nil {
		groups = make([]services.TableGroup, 0)
	}
	return groups, nil
}
