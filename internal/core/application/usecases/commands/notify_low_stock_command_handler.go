package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/ports"
)

// NotifyLowStockCommandHandler reads the stock ledger and, when ingredients run low,
// sends a single LowStock notification. It returns how many ingredients were reported.
type NotifyLowStockCommandHandler struct {
	ledger ports.StockLedger
	sink   ports.NotificationSink
	clock  kernel.Clock
}

func NewNotifyLowStockCommandHandler(
	ledger ports.StockLedger,
	sink ports.NotificationSink,
	clock kernel.Clock,
) NotifyLowStockCommandHandler {
	return NotifyLowStockCommandHandler{
		ledger: ledger,
		sink:   sink,
		clock:  clock,
	}
}

func (h NotifyLowStockCommandHandler) Handle(ctx context.Context, cmd NotifyLowStockCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	levels, err := h.ledger.LowStock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read low stock levels: %w", err)
	}
	if len(levels) == 0 {
		return 0, nil
	}

	if err := h.sink.Notify(ctx, notification.LowStockEvent(levels, h.clock.Now())); err != nil {
		return 0, fmt.Errorf("failed to send low stock notification: %w", err)
	}
	return len(levels), nil
}
