package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetPrioritizedCookingQueueQueryIsNotConstructed = errors.New(
	"GetPrioritizedCookingQueueQuery must be created via NewGetPrioritizedCookingQueueQuery constructor",
)

// GetPrioritizedCookingQueueQuery asks for every dish the kitchen still has to cook,
// most urgent first.
//
// Example:
//
//	query := NewGetPrioritizedCookingQueueQuery()
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build cooking queue: %w", err)
//	}
//	for _, item := range items {
//	    fmt.Printf("%3d %s x%d (%s)\n", item.Score, item.Name, item.Quantity, item.Label)
//	}
type GetPrioritizedCookingQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPrioritizedCookingQueueQuery() GetPrioritizedCookingQueueQuery {
	return GetPrioritizedCookingQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPrioritizedCookingQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPrioritizedCookingQueueQueryIsNotConstructed)
}
