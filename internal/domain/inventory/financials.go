package inventory

import "github.com/shopspring/decimal"

// Financials is the derived capital summary over the batch collection.
type Financials struct {
	// Invested is total capital: every batch's purchase value plus the fixed
	// miscellaneous-expense amount.
	Invested decimal.Decimal `json:"invested"`
	// Assets is the purchase value of tool-type batches.
	Assets decimal.Decimal `json:"assets"`
	// InventoryValue is the purchase value of depreciation-base batches
	// scaled by the fraction of stock remaining.
	InventoryValue decimal.Decimal `json:"inventoryValue"`
}

// ComputeFinancials derives the capital summary. activeCycle names the batch
// label of the current purchasing cycle. Pure function.
func ComputeFinancials(batches []*Batch, miscExpenses decimal.Decimal, activeCycle string) Financials {
	f := Financials{Invested: miscExpenses}
	for _, b := range batches {
		total := b.TotalValue()
		f.Invested = f.Invested.Add(total)
		if b.Type == ItemTypeTool {
			f.Assets = f.Assets.Add(total)
			continue
		}
		if !b.InDepreciationBase(activeCycle) {
			continue
		}
		fullQty := b.FullQuantity()
		if !fullQty.GreaterThan(decimal.Zero) {
			continue
		}
		remaining := decimal.Max(decimal.Zero, b.CurrentStock)
		f.InventoryValue = f.InventoryValue.Add(total.Mul(remaining).Div(fullQty))
	}
	return f
}
