package services

import (
	"sort"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// Score components.
const (
	QuickCookBonus  = 100
	OffPremiseBonus = 30
	FirstDishBonus  = 50
	SecondDishBonus = 25
)

// KitchenOrder is an active order together with the label staff use for its table.
// TableLabel may be empty for orders without a table.
type KitchenOrder struct {
	Order      *order.Order
	TableLabel string
}

// ScoreBreakdown shows how a priority score was put together.
type ScoreBreakdown struct {
	QuickCook int
	Context   int
	Wait      int
}

// Total is the priority score.
func (b ScoreBreakdown) Total() int {
	return b.QuickCook + b.Context + b.Wait
}

// RankedItem is a cooking item with its priority score.
type RankedItem struct {
	OrderID     kernel.UUID
	OrderNumber order.Number
	OrderType   order.Type
	TableID     *kernel.UUID
	Label       string
	OrderedAt   time.Time

	ItemID     kernel.UUID
	Position   int
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	Notes      string
	Status     order.ItemStatus
	QuickCook  bool

	WaitMinutes int
	Breakdown   ScoreBreakdown
	Score       int
}

// TableGroup is the dashboard view of every ranked item sharing a label and an order type.
type TableGroup struct {
	Label           string
	OrderType       order.Type
	Items           []RankedItem
	ItemCount       int
	MaxScore        int
	EarliestOrderAt time.Time
}

// KitchenPriorityScheduler ranks the dishes waiting in the kitchen.
//
// Only items of menu items that require cooking and are still Pending or Preparing
// take part. Each gets
//
//	score = quick cook bonus + context bonus + wait bonus
//
// where the quick cook bonus is 100 for quick-to-prepare dishes, the context bonus is 30
// for takeaway and delivery orders and 50, 25 or 0 for dine-in tables with zero, one or
// more dishes already served, and the wait bonus is the number of whole minutes since
// the order was created.
//
// The scheduler is stateless and never mutates the orders it reads.
type KitchenPriorityScheduler struct{}

func NewKitchenPriorityScheduler() KitchenPriorityScheduler {
	return KitchenPriorityScheduler{}
}

// Rank scores every cooking item of orders and returns them sorted by score descending,
// then order time ascending. Order number, item position and item id break any remaining
// tie so the ordering is total.
//
// Menu items missing from menuItems are treated as cooking dishes without the quick cook bonus.
// servedByTable holds served dish counts per table; absent tables count as zero.
func (s KitchenPriorityScheduler) Rank(
	orders []KitchenOrder,
	menuItems map[kernel.UUID]*menu.MenuItem,
	servedByTable map[kernel.UUID]int,
	now time.Time,
) []RankedItem {
	var ranked []RankedItem

	for _, ko := range orders {
		o := ko.Order
		if o == nil || o.Validate() != nil || o.Status() != order.Serving {
			continue
		}

		served := 0
		if o.TableID() != nil {
			served = servedByTable[*o.TableID()]
		}
		wait := WaitMinutes(o.CreatedAt(), now)
		label := groupLabel(o, ko.TableLabel)

		for _, item := range o.Items() {
			if item.Status() != order.Pending && item.Status() != order.Preparing {
				continue
			}

			quick := false
			if m, ok := menuItems[item.MenuItemID()]; ok {
				if !m.RequiresCooking() {
					continue
				}
				quick = m.IsQuickCook()
			}

			breakdown := s.Score(quick, o.Type(), served, wait)
			ranked = append(ranked, RankedItem{
				OrderID:     o.ID(),
				OrderNumber: o.Number(),
				OrderType:   o.Type(),
				TableID:     o.TableID(),
				Label:       label,
				OrderedAt:   o.CreatedAt(),
				ItemID:      item.ID(),
				Position:    item.Position(),
				MenuItemID:  item.MenuItemID(),
				Name:        item.Name(),
				Quantity:    item.Quantity(),
				Notes:       item.Notes(),
				Status:      item.Status(),
				QuickCook:   quick,
				WaitMinutes: wait,
				Breakdown:   breakdown,
				Score:       breakdown.Total(),
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankedBefore(ranked[i], ranked[j])
	})
	return ranked
}

// Score computes the priority of one cooking item.
func (s KitchenPriorityScheduler) Score(quickCook bool, orderType order.Type, servedAtTable, waitMinutes int) ScoreBreakdown {
	b := ScoreBreakdown{}
	if quickCook {
		b.QuickCook = QuickCookBonus
	}
	b.Context = contextBonus(orderType, servedAtTable)
	if waitMinutes > 0 {
		b.Wait = waitMinutes
	}
	return b
}

// Group builds the dashboard from an already ranked list. Groups are sorted by their
// highest score descending, then earliest order time ascending, then label.
func (s KitchenPriorityScheduler) Group(ranked []RankedItem) []TableGroup {
	type key struct {
		label     string
		orderType order.Type
	}

	index := make(map[key]int)
	var groups []TableGroup
	for _, item := range ranked {
		k := key{label: item.Label, orderType: item.OrderType}
		idx, ok := index[k]
		if !ok {
			idx = len(groups)
			index[k] = idx
			groups = append(groups, TableGroup{
				Label:           item.Label,
				OrderType:       item.OrderType,
				MaxScore:        item.Score,
				EarliestOrderAt: item.OrderedAt,
			})
		}

		g := &groups[idx]
		g.Items = append(g.Items, item)
		g.ItemCount++
		if item.Score > g.MaxScore {
			g.MaxScore = item.Score
		}
		if item.OrderedAt.Before(g.EarliestOrderAt) {
			g.EarliestOrderAt = item.OrderedAt
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.MaxScore != b.MaxScore {
			return a.MaxScore > b.MaxScore
		}
		if !a.EarliestOrderAt.Equal(b.EarliestOrderAt) {
			return a.EarliestOrderAt.Before(b.EarliestOrderAt)
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.OrderType < b.OrderType
	})
	return groups
}

// CountServedDishesByTable counts served items of the given orders per table in one pass.
// Every requested table is present in the result, with zero when nothing was served there.
func CountServedDishesByTable(orders []*order.Order, tableIDs []kernel.UUID) map[kernel.UUID]int {
	counts := make(map[kernel.UUID]int, len(tableIDs))
	for _, id := range tableIDs {
		counts[id] = 0
	}

	for _, o := range orders {
		if o == nil || o.TableID() == nil {
			continue
		}
		tableID := *o.TableID()
		if _, wanted := counts[tableID]; !wanted {
			continue
		}
		for _, item := range o.Items() {
			if item.Status() == order.Served {
				counts[tableID]++
			}
		}
	}
	return counts
}

// WaitMinutes is the number of whole minutes between since and now, never negative.
func WaitMinutes(since, now time.Time) int {
	elapsed := now.Sub(since)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}

func contextBonus(orderType order.Type, servedAtTable int) int {
	if orderType != order.DineIn {
		return OffPremiseBonus
	}
	switch {
	case servedAtTable <= 0:
		return FirstDishBonus
	case servedAtTable == 1:
		return SecondDishBonus
	default:
		return 0
	}
}

func groupLabel(o *order.Order, tableLabel string) string {
	if o.Type() == order.DineIn && tableLabel != "" {
		return tableLabel
	}
	return o.Number().String()
}

func rankedBefore(a, b RankedItem) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.OrderedAt.Equal(b.OrderedAt) {
		return a.OrderedAt.Before(b.OrderedAt)
	}
	if a.OrderNumber != b.OrderNumber {
		return a.OrderNumber < b.OrderNumber
	}
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.ItemID.String() < b.ItemID.String()
}
