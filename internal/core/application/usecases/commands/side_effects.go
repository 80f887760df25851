package commands

import (
	"context"
	"errors"
	"log/slog"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// Warning sources.
const (
	SourceStockLedger  = "stock_ledger"
	SourceNotification = "notification"
	SourceTableLookup  = "table_lookup"
)

// SideEffects runs the best-effort work that follows a committed order mutation:
// ingredient stock adjustments and staff notifications. Failures never abort the
// mutation; they are logged and returned as warnings.
type SideEffects struct {
	recipes ports.RecipeResolver
	ledger  ports.StockLedger
	sink    ports.NotificationSink
	logger  *slog.Logger
}

func NewSideEffects(
	recipes ports.RecipeResolver,
	ledger ports.StockLedger,
	sink ports.NotificationSink,
	logger *slog.Logger,
) SideEffects {
	return SideEffects{
		recipes: recipes,
		ledger:  ledger,
		sink:    sink,
		logger:  logger.With("component", "order_side_effects"),
	}
}

// ConsumeItem takes the ingredients of portions more of item from stock. Every ingredient is
// taken independently, so one refused take does not stop the others.
func (s SideEffects) ConsumeItem(ctx context.Context, item *order.Item, portions int) []errs.DependencyWarning {
	if portions <= 0 {
		return nil
	}

	requirements, warnings := s.requirements(ctx, item)
	for _, need := range inventory.Scale(requirements, portions) {
		err := s.ledger.Consume(ctx, item.ID(), need.IngredientID, need.Quantity)
		if err == nil {
			continue
		}

		message := "stock adjustment failed"
		if errors.Is(err, inventory.ErrInsufficientStock) {
			message = "insufficient stock, adjustment skipped"
		}
		warnings = append(warnings, s.warn(ctx, stockWarning(message, err, item, need.IngredientName).
			WithContext("ingredient_id", need.IngredientID.String()).
			WithContext("quantity", need.Quantity)))
	}
	return warnings
}

// ReleaseItem gives back what item took from stock beyond keepPortions portions. Only
// stock the item actually consumed is restored.
func (s SideEffects) ReleaseItem(ctx context.Context, item *order.Item, keepPortions int) []errs.DependencyWarning {
	if keepPortions < 0 {
		keepPortions = 0
	}

	requirements, warnings := s.requirements(ctx, item)
	for _, r := range requirements {
		if _, err := s.ledger.Release(ctx, item.ID(), r.IngredientID, r.Quantity*keepPortions); err != nil {
			warnings = append(warnings, s.warn(ctx, stockWarning("stock restore failed", err, item, r.IngredientName).
				WithContext("ingredient_id", r.IngredientID.String())))
		}
	}
	return warnings
}

// ConsumeItems takes stock for every given item at its current quantity.
func (s SideEffects) ConsumeItems(ctx context.Context, items []*order.Item) []errs.DependencyWarning {
	var warnings []errs.DependencyWarning
	for _, item := range items {
		warnings = append(warnings, s.ConsumeItem(ctx, item, item.Quantity())...)
	}
	return warnings
}

// Notify sends event to the sink.
func (s SideEffects) Notify(ctx context.Context, event notification.Event) []errs.DependencyWarning {
	if err := s.sink.Notify(ctx, event); err != nil {
		return []errs.DependencyWarning{s.warn(ctx,
			errs.NewDependencyWarning(SourceNotification, "notification not delivered", err).
				WithContext("kind", string(event.Kind)).
				WithContext("order_id", event.OrderID))}
	}
	return nil
}

// TableLabel names the table of a dine-in order for staff. A failed lookup falls back to
// notification.TakeawayLabel and is reported as a warning.
func (s SideEffects) TableLabel(
	ctx context.Context,
	tables ports.TableRepository,
	o *order.Order,
) (string, []errs.DependencyWarning) {
	if o.Type() != order.DineIn || o.TableID() == nil {
		return notification.Label(o, ""), nil
	}
	tbl, err := tables.Get(ctx, *o.TableID())
	if err != nil {
		return notification.TakeawayLabel, []errs.DependencyWarning{s.warn(ctx,
			errs.NewDependencyWarning(SourceTableLookup, "table lookup failed, label defaulted", err).
				WithContext("order_id", o.ID().String()).
				WithContext("table_id", o.TableID().String()))}
	}
	return notification.Label(o, tbl.Label()), nil
}

func (s SideEffects) requirements(ctx context.Context, item *order.Item) ([]inventory.Requirement, []errs.DependencyWarning) {
	requirements, err := s.recipes.Requirements(ctx, item.MenuItemID())
	if err != nil {
		return nil, []errs.DependencyWarning{s.warn(ctx,
			errs.NewDependencyWarning(SourceStockLedger, "recipe lookup failed", err).
				WithContext("menu_item_id", item.MenuItemID().String()))}
	}
	return requirements, nil
}

func stockWarning(message string, err error, item *order.Item, ingredient string) errs.DependencyWarning {
	return errs.NewDependencyWarning(SourceStockLedger, message, err).
		WithContext("menu_item_id", item.MenuItemID().String()).
		WithContext("item_id", item.ID().String()).
		WithContext("ingredient", ingredient)
}

func (s SideEffects) warn(ctx context.Context, w errs.DependencyWarning) errs.DependencyWarning {
	attrs := make([]any, 0, 2*len(w.Context)+4)
	attrs = append(attrs, "source", w.Source, "error", w.Cause)
	for k, v := range w.Context {
		attrs = append(attrs, k, v)
	}
	s.logger.WarnContext(ctx, w.Message, attrs...)
	return w
}
