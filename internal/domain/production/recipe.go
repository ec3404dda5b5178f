package production

import (
	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeLine is one bill-of-materials entry: a material, the quantity to
// consume, and a snapshot of its weighted-average unit price taken when the
// line was added.
type RecipeLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"usedQuantity"`
}

// Cost returns the line's contribution to the recipe cost
func (l RecipeLine) Cost() decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity)
}

// Recipe is the transient bill-of-materials for one production run. It is
// never persisted: it exists only while a run is being authored and is
// cleared on successful production.
type Recipe struct {
	Lines []RecipeLine `json:"lines"`
}

// AddLine appends a line for the given aggregated material. Adding a
// material that is already on the recipe is a no-op.
func (r *Recipe) AddLine(m inventory.Material) {
	for _, l := range r.Lines {
		if l.Name == m.Name {
			return
		}
	}
	r.Lines = append(r.Lines, RecipeLine{
		ID:        "r_" + uuid.NewString(),
		Name:      m.Name,
		Unit:      m.Unit,
		UnitPrice: m.AvgUnitPrice,
	})
}

// SetQuantity updates the consumed quantity of a line, reporting whether the
// line exists.
func (r *Recipe) SetQuantity(lineID string, quantity decimal.Decimal) bool {
	for i := range r.Lines {
		if r.Lines[i].ID == lineID {
			r.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveLine deletes a line, reporting whether the line existed
func (r *Recipe) RemoveLine(lineID string) bool {
	for i := range r.Lines {
		if r.Lines[i].ID == lineID {
			r.Lines = append(r.Lines[:i], r.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all lines
func (r *Recipe) Clear() {
	r.Lines = nil
}

// IsEmpty reports whether the recipe has no lines
func (r *Recipe) IsEmpty() bool {
	return len(r.Lines) == 0
}

// TotalCost returns the summed cost of all lines
func (r *Recipe) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, l := range r.Lines {
		total = total.Add(l.Cost())
	}
	return total
}

// Clone returns a deep copy of the recipe
func (r *Recipe) Clone() *Recipe {
	c := &Recipe{}
	if r.Lines != nil {
		c.Lines = make([]RecipeLine, len(r.Lines))
		copy(c.Lines, r.Lines)
	}
	return c
}
