package inventory

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const CodeInsufficientStock = "InsufficientStock"

var ErrInsufficientStock = errs.NewRuleViolation(CodeInsufficientStock,
	"ingredient stock would go negative")

// Requirement is the amount of one ingredient needed for a single portion of a menu item.
type Requirement struct {
	IngredientID   kernel.UUID
	IngredientName string
	Quantity       int
}

// Shortage describes an ingredient that cannot cover a requested number of portions.
type Shortage struct {
	IngredientID   kernel.UUID
	IngredientName string
	Required       int
	Current        int
	Missing        int
}

// StockLevel is a snapshot of one ingredient counter.
type StockLevel struct {
	IngredientID kernel.UUID
	Name         string
	Unit         string
	Current      int
	Minimum      int
}

// IsLow reports whether the counter reached its minimum.
func (s StockLevel) IsLow() bool {
	return s.Current <= s.Minimum
}

// Scale turns per-portion requirements into the amounts needed for portions.
// Ingredients with a zero amount are left out; no portions need nothing.
func Scale(requirements []Requirement, portions int) []Requirement {
	if portions <= 0 {
		return nil
	}
	scaled := make([]Requirement, 0, len(requirements))
	for _, r := range requirements {
		if r.Quantity <= 0 {
			continue
		}
		scaled = append(scaled, Requirement{
			IngredientID:   r.IngredientID,
			IngredientName: r.IngredientName,
			Quantity:       r.Quantity * portions,
		})
	}
	return scaled
}

// Shortages compares the requirements for portions against current stock.
// Ingredients missing from current are treated as empty.
func Shortages(requirements []Requirement, portions int, current map[kernel.UUID]int) []Shortage {
	var shortages []Shortage
	for _, r := range requirements {
		required := r.Quantity * portions
		have := current[r.IngredientID]
		if have >= required {
			continue
		}
		shortages = append(shortages, Shortage{
			IngredientID:   r.IngredientID,
			IngredientName: r.IngredientName,
			Required:       required,
			Current:        have,
			Missing:        required - have,
		})
	}
	return shortages
}
