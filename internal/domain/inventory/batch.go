package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType classifies what a batch holds. Tools are capital assets: their
// stock counts units owned and is never consumed by production.
type ItemType string

const (
	ItemTypeIngredient ItemType = "ingredient"
	ItemTypePackaging  ItemType = "packaging"
	ItemTypeTool       ItemType = "tool"
	ItemTypeConsumable ItemType = "consumable"
)

// IsValid checks if the item type is one of the closed set
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeIngredient, ItemTypePackaging, ItemTypeTool, ItemTypeConsumable:
		return true
	}
	return false
}

// String returns the string representation
func (t ItemType) String() string {
	return string(t)
}

// RuntimeBatchIDPrefix marks batches received after initialization. Batches
// carrying it always belong to the depreciation base of the current
// inventory value, regardless of their batch label.
const RuntimeBatchIDPrefix = "n_"

// Batch is a single purchased lot: one receipt of a material, tool,
// packaging, or consumable item with its own price and remaining stock.
type Batch struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       ItemType        `json:"type"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"` // per-pack quantity in Unit
	Price      decimal.Decimal `json:"price"`    // price of one pack
	Count      decimal.Decimal `json:"count"`    // number of packs purchased
	BatchLabel string          `json:"batch"`    // acquisition date or historical tag
	// CurrentStock is the remaining quantity for perishable types, or the
	// number of units owned for tools.
	CurrentStock decimal.Decimal `json:"currentStock"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

// NewBatch creates a batch received at runtime. Initial stock follows the
// receiving rule: tools start at their pack count (units owned), everything
// else at quantity*count (full content of all packs).
func NewBatch(name string, itemType ItemType, unit string, quantity, price, count decimal.Decimal, batchLabel string) *Batch {
	b := &Batch{
		ID:         RuntimeBatchIDPrefix + uuid.NewString(),
		Name:       name,
		Type:       itemType,
		Unit:       unit,
		Quantity:   quantity,
		Price:      price,
		Count:      count,
		BatchLabel: batchLabel,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	b.CurrentStock = initialStock(itemType, quantity, count)
	return b
}

func initialStock(itemType ItemType, quantity, count decimal.Decimal) decimal.Decimal {
	if itemType == ItemTypeTool {
		return count
	}
	return quantity.Mul(count)
}

// FullQuantity returns the total content of all packs as purchased
func (b *Batch) FullQuantity() decimal.Decimal {
	return b.Quantity.Mul(b.Count)
}

// TotalValue returns the purchase value of the batch (all packs)
func (b *Batch) TotalValue() decimal.Decimal {
	return b.Price.Mul(b.Count)
}

// UnitPrice returns the price per unit of measure of one pack, or zero when
// the pack quantity is zero.
func (b *Batch) UnitPrice() decimal.Decimal {
	if b.Quantity.IsZero() {
		return decimal.Zero
	}
	return b.Price.Div(b.Quantity)
}

// HasStock returns true if the batch has remaining stock
func (b *Batch) HasStock() bool {
	return b.CurrentStock.GreaterThan(decimal.Zero)
}

// Deduct reduces the batch stock by up to amount and returns the quantity
// actually deducted (the lesser of amount and remaining stock).
func (b *Batch) Deduct(amount decimal.Decimal) decimal.Decimal {
	deducted := decimal.Min(amount, b.CurrentStock)
	if deducted.IsNegative() {
		return decimal.Zero
	}
	b.CurrentStock = b.CurrentStock.Sub(deducted)
	b.UpdatedAt = time.Now()
	return deducted
}

// Restore adds a previously deducted amount back to the batch stock
func (b *Batch) Restore(amount decimal.Decimal) {
	b.CurrentStock = b.CurrentStock.Add(amount)
	b.UpdatedAt = time.Now()
}

// SetStock overwrites the remaining stock (manual correction). Negative
// values clamp to zero.
func (b *Batch) SetStock(stock decimal.Decimal) {
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	b.CurrentStock = stock
	b.UpdatedAt = time.Now()
}

// InDepreciationBase reports whether the batch counts toward the current
// raw-material inventory value: non-tool batches of the active acquisition
// cycle, and any batch received at runtime.
func (b *Batch) InDepreciationBase(activeCycle string) bool {
	if b.Type == ItemTypeTool {
		return false
	}
	return b.BatchLabel == activeCycle || hasRuntimePrefix(b.ID)
}

func hasRuntimePrefix(id string) bool {
	return len(id) >= len(RuntimeBatchIDPrefix) && id[:len(RuntimeBatchIDPrefix)] == RuntimeBatchIDPrefix
}

// Clone returns a deep copy of the batch
func (b *Batch) Clone() *Batch {
	c := *b
	return &c
}
