package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
)

// GetPrioritizedCookingQueueQueryHandler ranks open kitchen work with the KitchenPriorityScheduler.
// The ranking is recomputed from a fresh snapshot on every call.
type GetPrioritizedCookingQueueQueryHandler struct {
	reader    KitchenReader
	scheduler services.KitchenPriorityScheduler
	clock     kernel.Clock
}

func NewGetPrioritizedCookingQueueQueryHandler(
	reader KitchenReader,
	scheduler services.KitchenPriorityScheduler,
	clock kernel.Clock,
) GetPrioritizedCookingQueueQueryHandler {
	return GetPrioritizedCookingQueueQueryHandler{
		reader:    reader,
		scheduler: scheduler,
		clock:     clock,
	}
}

// Handle returns Pending and Preparing dishes that need cooking, ordered by score
// descending and then by order time.
func (h GetPrioritizedCookingQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPrioritizedCookingQueueQuery,
) ([]services.RankedItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.reader.load(ctx)
	if err != nil {
		return nil, err
	}

	ranked := h.scheduler.Rank(snapshot.orders, snapshot.menuItems, snapshot.servedByTable, h.clock.Now())
	if ranked == nil {
		ranked = make([]services.RankedItem, 0)
	}
	return ranked, nil
}
