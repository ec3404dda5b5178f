package production

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Units of sale for a finished good
const (
	UnitWhole = "个" // sold as whole cakes
	UnitSlice = "块" // sold as slices
)

// FinishedGood is a produced, sellable lot keyed by composite name and unit
// of sale. Its unit cost is the weighted average across the production runs
// that fed it. A good whose quantity reaches zero is pruned, not retained.
type FinishedGood struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// CompositeName builds the product key name: product plus size and, for
// sliced runs, the cut descriptor, e.g. "原味巴斯克 (6寸/5切)".
func CompositeName(product, size string, cutCount int) string {
	if cutCount == 0 {
		return fmt.Sprintf("%s (%s)", product, size)
	}
	return fmt.Sprintf("%s (%s/%d切)", product, size, cutCount)
}

// NewFinishedGood creates a finished good from one production run's yield
// and total cost.
func NewFinishedGood(name, unit string, quantity, totalCost decimal.Decimal) *FinishedGood {
	return &FinishedGood{
		ID:       "fg_" + uuid.NewString(),
		Name:     name,
		Unit:     unit,
		Quantity: quantity,
		UnitCost: totalCost.Div(quantity),
	}
}

// Matches reports whether the good carries the given composite key
func (g *FinishedGood) Matches(name, unit string) bool {
	return g.Name == name && g.Unit == unit
}

// MergeRun folds another production run into the good: quantity accumulates
// and unit cost becomes the weighted average of existing stock and the run.
func (g *FinishedGood) MergeRun(quantity, totalCost decimal.Decimal) {
	newQty := g.Quantity.Add(quantity)
	g.UnitCost = g.Quantity.Mul(g.UnitCost).Add(totalCost).Div(newQty)
	g.Quantity = newQty
}

// Decrement reduces the quantity on hand, flooring at zero. The unit cost is
// left as-is: reversing a run does not reconstruct the pre-merge average.
func (g *FinishedGood) Decrement(quantity decimal.Decimal) {
	g.Quantity = decimal.Max(decimal.Zero, g.Quantity.Sub(quantity))
}

// IsDepleted reports whether the good should be pruned
func (g *FinishedGood) IsDepleted() bool {
	return !g.Quantity.GreaterThan(decimal.Zero)
}

// Clone returns a deep copy of the finished good
func (g *FinishedGood) Clone() *FinishedGood {
	c := *g
	return &c
}
