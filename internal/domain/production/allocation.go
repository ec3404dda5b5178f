package production

import (
	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Deduction records how much was taken from one batch during a production
// run. The ordered deduction list is the authoritative record for reversal.
type Deduction struct {
	BatchID string          `json:"itemId"`
	Amount  decimal.Decimal `json:"amount"`
}

// ValidateAvailability checks every recipe line against the combined stock
// of batches sharing its normalized name. The error names the first
// insufficient line in recipe order, independent of batch iteration order.
// Tool batches never contribute stock.
func ValidateAvailability(recipe *Recipe, batches []*inventory.Batch) error {
	for _, line := range recipe.Lines {
		key := inventory.NormalizeName(line.Name)
		available := decimal.Zero
		for _, b := range batches {
			if b.Type == inventory.ItemTypeTool {
				continue
			}
			if inventory.NormalizeName(b.Name) == key {
				available = available.Add(b.CurrentStock)
			}
		}
		if available.LessThan(line.Quantity) {
			return shared.NewInsufficientStockError(line.Name)
		}
	}
	return nil
}

// AllocateDeductions deducts every recipe line from the batch collection:
// batches sharing the line's normalized name are consumed in collection
// order, each yielding min(its stock, remaining requirement), stopping once
// the line is satisfied. The returned list preserves application order.
//
// Callers must run ValidateAvailability first; allocation performs no
// feasibility check of its own and would otherwise deduct partially.
func AllocateDeductions(recipe *Recipe, batches []*inventory.Batch) []Deduction {
	deductions := make([]Deduction, 0, len(recipe.Lines))
	for _, line := range recipe.Lines {
		key := inventory.NormalizeName(line.Name)
		remaining := line.Quantity
		for _, b := range batches {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			if b.Type == inventory.ItemTypeTool || !b.HasStock() {
				continue
			}
			if inventory.NormalizeName(b.Name) != key {
				continue
			}
			taken := b.Deduct(remaining)
			deductions = append(deductions, Deduction{BatchID: b.ID, Amount: taken})
			remaining = remaining.Sub(taken)
		}
	}
	return deductions
}
